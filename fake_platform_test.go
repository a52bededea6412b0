package webfolder

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Fake host platform used across the engine tests. Entries carry explicit
// browser-style full paths ("/root/sub/file.txt"); readers paginate and
// terminate with an empty page like the real API.

type fakeFile struct {
	name     string
	full     string
	failWith error
	// fireTwice makes the success callback fire twice, simulating a racy
	// platform implementation.
	fireTwice bool
}

func newFakeFile(full string) *fakeFile {
	return &fakeFile{name: baseName(full), full: full}
}

func (f *fakeFile) Name() string     { return f.name }
func (f *fakeFile) FullPath() string { return f.full }
func (f *fakeFile) IsFile() bool     { return true }
func (f *fakeFile) IsDir() bool      { return false }

func (f *fakeFile) File(succeed func(FileRef), fail func(error)) {
	if f.failWith != nil {
		fail(f.failWith)
		return
	}
	succeed(f)
	if f.fireTwice {
		succeed(f)
	}
}

type fakeDir struct {
	name     string
	full     string
	children []Entry
	pageSize int

	// failPage makes the reader fail when asked for that page index.
	// Negative means never.
	failPage int

	// delay settles reads asynchronously after the given duration, to
	// exercise concurrent sibling traversal.
	delay time.Duration

	mu          sync.Mutex
	liveReads   int
	maxOverlaps int
}

func newFakeDir(full string, children ...Entry) *fakeDir {
	return &fakeDir{
		name:     baseName(full),
		full:     full,
		children: children,
		pageSize: maxPageEntries,
		failPage: -1,
	}
}

func (d *fakeDir) Name() string     { return d.name }
func (d *fakeDir) FullPath() string { return d.full }
func (d *fakeDir) IsFile() bool     { return false }
func (d *fakeDir) IsDir() bool      { return true }

func (d *fakeDir) CreateReader() DirectoryReader {
	return &fakeReader{dir: d}
}

// recordRead tracks overlapping reads so tests can assert the engine never
// issues two in-flight reads against one directory.
func (d *fakeDir) recordRead() func() {
	d.mu.Lock()
	d.liveReads++
	if d.liveReads > d.maxOverlaps {
		d.maxOverlaps = d.liveReads
	}
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		d.liveReads--
		d.mu.Unlock()
	}
}

type fakeReader struct {
	dir    *fakeDir
	cursor int
	page   int
}

func (r *fakeReader) ReadEntries(succeed func([]Entry), fail func(error)) {
	settle := func() {
		done := r.dir.recordRead()
		defer done()

		if r.dir.failPage == r.page {
			fail(&PlatformError{Payload: fmt.Sprintf("injected failure at page %d", r.page)})
			return
		}
		n := r.dir.pageSize
		if rest := len(r.dir.children) - r.cursor; n > rest {
			n = rest
		}
		batch := r.dir.children[r.cursor : r.cursor+n]
		r.cursor += n
		r.page++
		succeed(batch)
	}

	if r.dir.delay > 0 {
		go func() {
			time.Sleep(r.dir.delay)
			settle()
		}()
		return
	}
	settle()
}

// fakeOpaque is an entry of no known kind.
type fakeOpaque struct {
	full string
}

func (o *fakeOpaque) Name() string     { return baseName(o.full) }
func (o *fakeOpaque) FullPath() string { return o.full }
func (o *fakeOpaque) IsFile() bool     { return false }
func (o *fakeOpaque) IsDir() bool      { return false }

// fakePayload models a drop payload whose entry accessors die once the drop
// turn ends, like webkitGetAsEntry.
type fakePayload struct {
	items []DropItem
}

func (p *fakePayload) Items() []DropItem { return p.items }

// expire invalidates every item's accessor, simulating the first suspension
// of the processing routine.
func (p *fakePayload) expire() {
	for _, it := range p.items {
		it.(*fakeItem).expired = true
	}
}

type fakeItem struct {
	entry   Entry // nil for non-file drag data
	expired bool
}

func (it *fakeItem) Entry() (Entry, bool) {
	if it.expired || it.entry == nil {
		return nil, false
	}
	return it.entry, true
}

// fakeSelector scripts a folder-selection control.
type fakeSelector struct {
	picks   chan []PickedFile
	refocus chan struct{}
	openErr error
	opened  bool
}

func newFakeSelector() *fakeSelector {
	return &fakeSelector{
		picks:   make(chan []PickedFile, 1),
		refocus: make(chan struct{}, 4),
	}
}

func (s *fakeSelector) Open() error {
	if s.openErr != nil {
		return s.openErr
	}
	s.opened = true
	return nil
}

func (s *fakeSelector) Picks() <-chan []PickedFile { return s.picks }
func (s *fakeSelector) Refocused() <-chan struct{} { return s.refocus }

var errInjected = errors.New("injected")

// paths flattens the result's file paths for comparison.
func paths(c *FolderContents) []string {
	out := make([]string, 0, len(c.Files))
	for _, f := range c.Files {
		out = append(out, f.Path)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
