// Package workspace resolves and validates the on-disk layout of an
// invoicing workspace: the root directory and its four canonical children
// (invoice directory, customer document, settings document, build scratch
// directory), each individually overridable.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Default child paths inside the workspace root.
const (
	DefaultInvoiceDir   = "invoices"
	DefaultCustomerFile = "customer.yaml"
	DefaultSettingsFile = "settings.yaml"
	DefaultBuildDir     = "build"
)

// Options overrides any of the four canonical paths. Empty fields keep the
// default under the root.
type Options struct {
	InvoiceDir   string
	CustomerFile string
	SettingsFile string
	BuildDir     string
}

// Layout holds the resolved paths of a workspace.
type Layout struct {
	Root         string
	InvoiceDir   string
	CustomerFile string
	SettingsFile string
	BuildDir     string
}

// Resolve applies defaults and overrides under root. It fails with a
// MissingError when neither the root nor its parent directory exists, since
// nothing could ever be created there. No other check is performed.
func Resolve(root string, opts Options) (*Layout, error) {
	if !exists(root) && !exists(filepath.Dir(root)) {
		slog.Error("Workspace parent directory not found", "root", root)
		return nil, &MissingError{Kind: KindWorkspace, Path: root}
	}

	l := &Layout{
		Root:         root,
		InvoiceDir:   filepath.Join(root, DefaultInvoiceDir),
		CustomerFile: filepath.Join(root, DefaultCustomerFile),
		SettingsFile: filepath.Join(root, DefaultSettingsFile),
		BuildDir:     filepath.Join(root, DefaultBuildDir),
	}
	if opts.InvoiceDir != "" {
		l.InvoiceDir = opts.InvoiceDir
	}
	if opts.CustomerFile != "" {
		l.CustomerFile = opts.CustomerFile
	}
	if opts.SettingsFile != "" {
		l.SettingsFile = opts.SettingsFile
	}
	if opts.BuildDir != "" {
		l.BuildDir = opts.BuildDir
	}
	return l, nil
}

// Open resolves the layout and validates it read-only: the root must exist,
// the invoice directory must be a directory and the customer document must
// exist. Every other command goes through Open so a half-built workspace
// fails loudly instead of being silently recreated.
func Open(root string, opts Options) (*Layout, error) {
	l, err := Resolve(root, opts)
	if err != nil {
		return nil, err
	}

	if !exists(root) {
		slog.Error("Workspace root not found, run init first", "root", root)
		return nil, &MissingError{Kind: KindWorkspace, Path: root}
	}
	if !isDir(l.InvoiceDir) {
		slog.Error("Invoice directory not found, run init first", "path", l.InvoiceDir)
		return nil, &MissingError{Kind: KindInvoiceStore, Path: l.InvoiceDir}
	}
	if !exists(l.CustomerFile) {
		slog.Error("Customer document not found, run init first", "path", l.CustomerFile)
		return nil, &MissingError{Kind: KindCustomerStore, Path: l.CustomerFile}
	}
	return l, nil
}

// Init resolves the layout and creates whatever is missing, in order: the
// root, the invoice directory, an empty customer document, an empty
// settings document. Pre-existing targets are left untouched, so running
// init twice is harmless.
func Init(root string, opts Options) (*Layout, error) {
	l, err := Resolve(root, opts)
	if err != nil {
		return nil, err
	}

	if !exists(root) {
		slog.Info("Creating workspace root", "root", root)
		if err := os.Mkdir(root, 0o755); err != nil {
			return nil, &CreateError{Target: "directory", Path: root, Err: err}
		}
	}
	if !isDir(l.InvoiceDir) {
		slog.Info("Creating invoice directory", "path", l.InvoiceDir)
		if err := os.Mkdir(l.InvoiceDir, 0o755); err != nil {
			return nil, &CreateError{Target: "directory", Path: l.InvoiceDir, Err: err}
		}
	}
	if !exists(l.CustomerFile) {
		slog.Info("Creating customer document", "path", l.CustomerFile)
		if err := os.WriteFile(l.CustomerFile, nil, 0o644); err != nil {
			return nil, &CreateError{Target: "file", Path: l.CustomerFile, Err: err}
		}
	}
	if !exists(l.SettingsFile) {
		slog.Info("Creating settings document", "path", l.SettingsFile)
		if err := os.WriteFile(l.SettingsFile, nil, 0o644); err != nil {
			return nil, &CreateError{Target: "file", Path: l.SettingsFile, Err: err}
		}
	}
	return l, nil
}

// EnsureDir creates dir when it is missing and its parent exists. Creation
// stays shallow on purpose: a missing parent means a mistyped path, not a
// tree to build.
func EnsureDir(dir string) error {
	if isDir(dir) {
		return nil
	}
	if !exists(filepath.Dir(dir)) {
		return &CreateError{Target: "directory", Path: dir, Err: fmt.Errorf("parent directory does not exist")}
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return &CreateError{Target: "directory", Path: dir, Err: err}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
