// Package storage defines the vault file-system abstraction.
package storage

import "time"

// FileInfo is lightweight metadata for one Markdown file in the vault.
type FileInfo struct {
	Path      string    // relative to the vault root
	Checksum  string    // sha256 of the content
	UpdatedAt time.Time // file mtime
}

// Provider is the interface for vault file operations. Paths are always
// relative to the vault root.
type Provider interface {
	// List returns metadata for every .md file under dir.
	List(dir string) ([]FileInfo, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path.
	Write(path string, content []byte) error
	// Delete removes the file at path.
	Delete(path string) error
}
