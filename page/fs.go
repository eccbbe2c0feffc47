package page

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed tmpl/*
var embedded embed.FS

// LaunchFS holds the framework's own launch page.
var LaunchFS fs.FS = mustSub(embedded, "tmpl")

// overlayFS implements fs.FS
type overlayFS struct {
	// On-disk framework directory; may be nil.
	osDir fs.FS

	// Package-level directory embedding tmpl/
	pkgDir fs.FS
}

// NewOverlayFS constructs an fs.FS opening files from dir first
// and falling back to [LaunchFS].
//
// An empty dir returns LaunchFS itself.
func NewOverlayFS(dir string) fs.FS {
	if dir == "" {
		return LaunchFS
	}

	return &overlayFS{osDir: os.DirFS(dir), pkgDir: LaunchFS}
}

// Open opens the file matching the name using the following strategy:
//   - check the OS filesystem
//   - check the package-level embedded filesystem
//
// Nothing is cached: a file added to or removed from the OS directory
// is noticed on the next call.
func (ofs *overlayFS) Open(name string) (fs.File, error) {
	file, err := ofs.osDir.Open(name)
	if err == nil {
		return file, nil
	}

	var pe *fs.PathError
	if errors.As(err, &pe) && (errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid)) {
		file, err = ofs.pkgDir.Open(name)
		if err != nil {
			return nil, fmt.Errorf("could not open template %s: %w", name, err)
		}

		return file, nil
	}

	return nil, fmt.Errorf("unable to open template: %w", err)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return sub
}
