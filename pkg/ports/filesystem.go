// Package ports defines interfaces for the compositor's collaborators.
package ports

// FileSystem abstracts the file operations used by the CLI and debug sink.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces path with data. Readers never observe a partial file.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error
}
