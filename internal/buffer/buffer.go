// internal/buffer/buffer.go
package buffer

// Document is the file behind the editing buffer. The text itself lives in
// the editor; a Document only knows where it came from and whether it has
// changed since it was last written.
type Document interface {
	Load(path string) (string, error)
	Save(content string) error
	SaveAs(path, content string) error
	Path() string
	SetPath(path string)
	IsModified() bool
	MarkModified()
}
