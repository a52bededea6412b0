// Package webfolder turns a user-supplied folder — selected through a picker
// control or dropped onto the page — into a flat list of files with
// root-relative paths.
//
// The browser exposes two incompatible callback-based APIs for folder input:
// the picker reports an already-flattened file list where each file carries a
// precomputed relative path, while a drop hands over a recursive tree of
// directory entries whose children must be read page by page. This package
// reconciles both into the same output shape, [FolderContents].
//
// Two platform rules shape the implementation and are easy to get wrong:
//
//   - A directory reader returns children in pages (at most 100 per call).
//     Only an empty page means the directory is exhausted; a short non-empty
//     page does not.
//   - A drop item's "resolve to entry" accessor only works before the
//     processing routine suspends. [CaptureDropEntries] therefore snapshots
//     every entry synchronously before any awaiting happens, and
//     [FromDropEvent] calls it first.
//
// The package consumes the host surface through small interfaces ([Entry],
// [DirectoryReader], [DropPayload], [FolderSelector]). The jsdom subpackage
// binds them to the real DOM for js/wasm builds; the osfs subpackage binds
// them to an afero filesystem for tests and non-browser hosts.
package webfolder
