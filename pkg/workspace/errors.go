package workspace

import "fmt"

// Kind names the workspace piece an error is about.
type Kind string

const (
	KindWorkspace     Kind = "workspace"
	KindInvoiceStore  Kind = "invoice store"
	KindCustomerStore Kind = "customer store"
)

// MissingError reports a workspace piece that does not exist on disk.
type MissingError struct {
	Kind Kind
	Path string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("unable to find the %s in %s, maybe init before use", e.Kind, e.Path)
}

// CreateError reports a directory or file that init could not create.
type CreateError struct {
	Target string // "directory" or "file"
	Path   string
	Err    error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("unable to create %s %s: %v", e.Target, e.Path, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}
