package webfolder

// FolderFile is one file of a flattened folder.
type FolderFile struct {
	// Path is the file's location relative to the folder root, forward
	// slash delimited, never starting with a separator. The root folder's
	// own name is not part of it.
	Path string

	// Name is the final segment of Path.
	Name string

	// File is the resolved platform file object.
	File FileRef
}

// FolderContents is the flattened result of ingesting one folder. Files are
// in traversal order: depth-first, children before the next sibling, as
// yielded per directory page. Sibling order within a directory follows
// pagination order and is not sorted.
type FolderContents struct {
	// RootName is the selected or dropped folder's own name. For a single
	// dropped file it is that file's name.
	RootName string

	Files []FolderFile
}
