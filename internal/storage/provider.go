// Package storage defines the notes directory file-system abstraction.
package storage

// Provider is the interface for note file operations. Paths are file names
// relative to the notes directory root.
type Provider interface {
	// List returns the names of all .json files directly under the root.
	List() ([]string, error)
	// Read returns the raw bytes of the file at name.
	Read(name string) ([]byte, error)
	// Write atomically writes content to name.
	Write(name string, content []byte) error
	// Delete removes the file at name.
	Delete(name string) error
}
