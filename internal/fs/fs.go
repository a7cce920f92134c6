// Package fs provides the filesystem seam used by speccheck commands.
// Commands take an FS so tests can substitute an in-memory stub.
package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// FS abstracts the filesystem operations speccheck performs.
type FS interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (iofs.FileInfo, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
	Chmod(path string, perm os.FileMode) error
	CreateTemp(dir, pattern string) (string, io.WriteCloser, error)
}

// RealFS implements FS with direct os calls.
type RealFS struct{}

// NewRealFS returns an FS backed by the real filesystem.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (*RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (*RealFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

func (*RealFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (*RealFS) Remove(path string) error {
	return os.Remove(path)
}

func (*RealFS) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}

func (*RealFS) CreateTemp(dir, pattern string) (string, io.WriteCloser, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, err
	}
	return f.Name(), f, nil
}

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so readers never observe a partial file.
// The temp file is removed on any failure.
func WriteFileAtomic(fsys FS, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpPath, w, err := fsys.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		_ = fsys.Remove(tmpPath)
		return err
	}
	if err := w.Close(); err != nil {
		_ = fsys.Remove(tmpPath)
		return err
	}

	// CreateTemp uses 0600; widen to the requested mode before publishing.
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		_ = fsys.Remove(tmpPath)
		return err
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return err
	}

	return nil
}
