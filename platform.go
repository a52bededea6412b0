package webfolder

// FileRef is an opaque platform file object. In the browser it is the
// JavaScript File resolved from a file entry; the osfs adapter returns a
// lazily openable handle. The traversal engine never inspects it.
type FileRef interface{}

// Entry is a single item yielded by directory enumeration or a drop payload,
// not yet resolved to file content. Exactly one of IsFile/IsDir is true for
// well-formed entries; an entry reporting neither is skipped by the engine.
type Entry interface {
	// Name returns the entry's own name (final path segment).
	Name() string

	// FullPath returns the platform-reported path of the entry, rooted at
	// the traversal origin and delimited with forward slashes. A leading
	// separator is permitted and stripped by the engine.
	FullPath() string

	IsFile() bool
	IsDir() bool
}

// FileEntry is a file-kind Entry that can resolve its backing file object.
type FileEntry interface {
	Entry

	// File resolves the entry to its platform file object. Exactly one of
	// the two callbacks is expected to fire, once; the engine tolerates
	// duplicate firings by discarding all but the first.
	File(succeed func(FileRef), fail func(error))
}

// DirectoryEntry is a directory-kind Entry whose children can be enumerated.
type DirectoryEntry interface {
	Entry

	// CreateReader returns a fresh reader over this directory's children.
	// Each reader maintains its own pagination cursor.
	CreateReader() DirectoryReader
}

// DirectoryReader enumerates one directory's children in pages.
//
// Each ReadEntries call yields the next page: up to a platform-defined
// maximum number of entries (100 in browsers), and an empty slice once the
// directory is exhausted. An empty page is the only completion signal.
// Callers must not issue a second ReadEntries on the same reader before the
// previous call has settled.
type DirectoryReader interface {
	ReadEntries(succeed func([]Entry), fail func(error))
}

// DropPayload is the file-bearing part of a drop event.
type DropPayload interface {
	Items() []DropItem
}

// DropItem is one item of a drop payload.
type DropItem interface {
	// Entry resolves the item to a directory or file entry. The second
	// return is false for items that carry no filesystem entry (plain
	// drag data such as text or links).
	//
	// On the real platform this accessor is only usable before the
	// routine handling the drop event suspends; see CaptureDropEntries.
	Entry() (Entry, bool)
}

// PickedFile is one file reported by a folder-selection control. The
// platform precomputes RelativePath; its first segment is the name of the
// folder the user selected.
type PickedFile struct {
	RelativePath string
	File         FileRef
}

// FolderSelector is the surface of an externally constructed and attached
// folder-selection control. Building the control (and its DOM node, styling,
// placement) is the caller's job; this package only drives it.
type FolderSelector interface {
	// Open triggers the selection dialog.
	Open() error

	// Picks delivers the chosen files when the user completes selection.
	Picks() <-chan []PickedFile

	// Refocused signals that the page or control regained input focus.
	// The platform fires no event on dialog dismissal, so focus regain is
	// the raw material for cancellation detection (see PickFolder).
	Refocused() <-chan struct{}
}
