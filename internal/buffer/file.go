// internal/buffer/file.go
package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoPath is returned when saving a document that was never given a path.
var ErrNoPath = errors.New("no file path specified for saving")

// IOError reports a failed document read or write.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s file '%s': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// File is a Document stored on disk.
type File struct {
	path     string
	modified bool
}

// NewFile returns a document that is not bound to a path yet.
func NewFile() *File {
	return &File{}
}

// Load reads the file at path. A file that does not exist yet is an empty
// new document. Line endings are normalised to "\n".
func (f *File) Load(path string) (string, error) {
	f.modified = false

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.path = path
			return "", nil
		}
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	f.path = path
	return normalize(string(data)), nil
}

// Save writes content to the document's path.
func (f *File) Save(content string) error {
	if f.path == "" {
		return ErrNoPath
	}
	return f.SaveAs(f.path, content)
}

// SaveAs writes content to path and binds the document to it.
func (f *File) SaveAs(path string, content string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	f.path = path
	f.modified = false
	return nil
}

func (f *File) Path() string { return f.path }

func (f *File) SetPath(path string) { f.path = path }

// IsModified returns true if the document has unsaved changes.
func (f *File) IsModified() bool { return f.modified }

// MarkModified records an unsaved change.
func (f *File) MarkModified() { f.modified = true }

// ReadAll reads a whole document from r, as for "-" on the command line.
func ReadAll(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &IOError{Op: "read", Path: name, Err: err}
	}
	return normalize(string(data)), nil
}

func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Ensure File satisfies the Document interface
var _ Document = (*File)(nil)
