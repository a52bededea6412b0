// Package osfs implements the webfolder host-platform interfaces over an
// afero filesystem.
//
// It emulates the browser's directory-entries surface: entries carry
// browser-style full paths rooted at "/<root name>", directory readers hand
// children out in pages and terminate with an empty page, and file
// resolution goes through the same callback pair the DOM uses. That lets the
// traversal engine run unchanged against a real directory or an in-memory
// afero.MemMapFs, for tests and non-browser hosts.
package osfs

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	webfolder "github.com/junovhs/web-folder"
)

// DefaultPageSize matches the browser's documented per-read entry cap.
const DefaultPageSize = 100

// Options configures the adapter.
type Options struct {
	// PageSize is the maximum number of entries per reader page.
	// Default is DefaultPageSize.
	PageSize int
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	return o
}

// NewDirectory wraps the directory at dir as a webfolder.DirectoryEntry. The
// returned entry's name is the directory's base name and its full path is
// "/<name>", mirroring how a dropped folder appears to the browser engine.
func NewDirectory(fsys afero.Fs, dir string, opts Options) (webfolder.DirectoryEntry, error) {
	opts = opts.withDefaults()

	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("osfs: stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("osfs: %q is not a directory", dir)
	}

	name := filepath.Base(filepath.Clean(dir))
	return &dirEntry{
		entry: entry{
			fsys:     fsys,
			osPath:   dir,
			fullPath: "/" + name,
			name:     name,
		},
		pageSize: opts.PageSize,
	}, nil
}

// NewFile wraps the file at file as a webfolder.FileEntry, the shape of a
// single file dropped outside any folder.
func NewFile(fsys afero.Fs, file string) (webfolder.FileEntry, error) {
	info, err := fsys.Stat(file)
	if err != nil {
		return nil, fmt.Errorf("osfs: stat %q: %w", file, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("osfs: %q is a directory", file)
	}

	name := filepath.Base(filepath.Clean(file))
	return &fileEntry{entry: entry{
		fsys:     fsys,
		osPath:   file,
		fullPath: "/" + name,
		name:     name,
	}}, nil
}

// entry carries what both kinds share. fullPath is the browser-style path
// ("/root/sub/file.txt"); osPath is the location on fsys.
type entry struct {
	fsys     afero.Fs
	osPath   string
	fullPath string
	name     string
}

func (e *entry) Name() string     { return e.name }
func (e *entry) FullPath() string { return e.fullPath }

type fileEntry struct {
	entry
}

func (e *fileEntry) IsFile() bool { return true }
func (e *fileEntry) IsDir() bool  { return false }

// File resolves to a *File handle. The callback pair mirrors the DOM's
// FileSystemFileEntry.file(success, error); here resolution is a stat.
func (e *fileEntry) File(succeed func(webfolder.FileRef), fail func(error)) {
	info, err := e.fsys.Stat(e.osPath)
	if err != nil {
		fail(&webfolder.PlatformError{Payload: err})
		return
	}
	succeed(&File{fsys: e.fsys, path: e.osPath, name: e.name, size: info.Size()})
}

type dirEntry struct {
	entry
	pageSize int
}

func (e *dirEntry) IsFile() bool { return false }
func (e *dirEntry) IsDir() bool  { return true }

// CreateReader returns a fresh paginating reader; each reader has its own
// cursor, like the DOM's createReader.
func (e *dirEntry) CreateReader() webfolder.DirectoryReader {
	return &dirReader{dir: e}
}

// dirReader pages through one directory's children. The listing is taken
// once on the first read and then served in pageSize slices; after the last
// slice every read yields the empty page that signals completion.
type dirReader struct {
	dir    *dirEntry
	listed bool
	rest   []webfolder.Entry
}

func (r *dirReader) ReadEntries(succeed func([]webfolder.Entry), fail func(error)) {
	if !r.listed {
		children, err := r.list()
		if err != nil {
			fail(&webfolder.PlatformError{Payload: err})
			return
		}
		r.listed = true
		r.rest = children
	}

	n := min(r.dir.pageSize, len(r.rest))
	page := r.rest[:n]
	r.rest = r.rest[n:]
	succeed(page)
}

func (r *dirReader) list() ([]webfolder.Entry, error) {
	infos, err := afero.ReadDir(r.dir.fsys, r.dir.osPath)
	if err != nil {
		return nil, err
	}

	children := make([]webfolder.Entry, 0, len(infos))
	for _, info := range infos {
		child := entry{
			fsys:     r.dir.fsys,
			osPath:   filepath.Join(r.dir.osPath, info.Name()),
			fullPath: path.Join(r.dir.fullPath, info.Name()),
			name:     info.Name(),
		}
		if info.IsDir() {
			children = append(children, &dirEntry{entry: child, pageSize: r.dir.pageSize})
		} else {
			children = append(children, &fileEntry{entry: child})
		}
	}
	return children, nil
}

// File is the FileRef this adapter produces: a lazily openable handle.
type File struct {
	fsys afero.Fs
	path string
	name string
	size int64
}

func (f *File) Name() string { return f.name }
func (f *File) Size() int64  { return f.size }

// Open opens the underlying file for reading.
func (f *File) Open() (afero.File, error) {
	return f.fsys.Open(f.path)
}
