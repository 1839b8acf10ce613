// Package insurabook provides embedded runtime resources (sample contacts)
// and an overlay filesystem that checks local disk first, falling back to embedded.
package insurabook

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed samples/contacts.json
var rawSamples embed.FS

// SampleFile is the name of the sample contact list inside Samples.
const SampleFile = "contacts.json"

// Samples is the embedded samples filesystem with the "samples/" prefix stripped.
var Samples = mustSub(rawSamples, "samples")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, err := os.Open(filepath.Join(o.localDir, filepath.FromSlash(name)))
	if err == nil {
		return f, nil
	}
	return o.embedded.Open(name)
}
