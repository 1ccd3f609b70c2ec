// Package render turns a stored invoice into a PDF through the typst
// compiler. The typst sources are compiled in; rendering writes them into
// the build directory with concrete file paths substituted, then hands the
// main document to typst without waiting for it.
package render

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/plouvier/facture/pkg/workspace"
)

//go:embed assets/invoice_template.typ
var invoiceTemplate string

//go:embed assets/main_template.typ
var mainTemplate string

// typstCommand is a variable so tests can swap the real compiler out.
var typstCommand = "typst"

const defaultTemplateName = "default_invoice_template.typ"

// Generate renders one invoice document to outputPath. The build directory
// and the output directory are created when missing, as long as their
// parents exist. The typst process is spawned and left to finish on its
// own; only a failure to start it is reported.
func Generate(buildDir, settingsPath, customerPath, invoicePath, outputPath string) error {
	if err := workspace.EnsureDir(buildDir); err != nil {
		return err
	}
	if err := workspace.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return err
	}

	templatePath := filepath.Join(buildDir, defaultTemplateName)

	mainName := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath)) + ".typ"
	mainPath := filepath.Join(buildDir, mainName)

	if err := writeFile(templatePath, invoiceTemplate); err != nil {
		return err
	}

	main := strings.NewReplacer(
		"{{ TEMPLATE_PATH }}", templatePath,
		"{{ SETTINGS_PATH }}", settingsPath,
		"{{ CUSTOMERS_PATH }}", customerPath,
		"{{ INVOICE_PATH }}", invoicePath,
	).Replace(mainTemplate)
	if err := writeFile(mainPath, main); err != nil {
		return err
	}

	slog.Info("Rendering invoice", "main", mainPath, "output", outputPath)

	cmd := exec.Command(typstCommand, "compile", "--root", "/", mainPath, outputPath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start typst: %w", err)
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &workspace.CreateError{Target: "file", Path: path, Err: err}
	}
	return nil
}
