//go:build js && wasm

package jsdom

import (
	"github.com/hack-pad/safejs"

	webfolder "github.com/junovhs/web-folder"
)

// WrapEntry wraps a FileSystemEntry value. Directory entries gain a reader,
// file entries gain file resolution; a value reporting neither kind is
// wrapped as a bare entry, which the engine logs and skips.
func WrapEntry(v safejs.Value) webfolder.Entry {
	base := entryHandle{v: v}
	switch {
	case base.IsDir():
		return &dirEntry{entryHandle: base}
	case base.IsFile():
		return &fileEntry{entryHandle: base}
	default:
		return &base
	}
}

// entryHandle wraps the FileSystemEntry surface shared by both kinds.
type entryHandle struct {
	v safejs.Value
}

func (e *entryHandle) Name() string     { return stringProp(e.v, "name") }
func (e *entryHandle) FullPath() string { return stringProp(e.v, "fullPath") }
func (e *entryHandle) IsFile() bool     { return boolProp(e.v, "isFile") }
func (e *entryHandle) IsDir() bool      { return boolProp(e.v, "isDirectory") }

type fileEntry struct {
	entryHandle
}

// File bridges FileSystemFileEntry.file(successCallback, errorCallback).
// Both callbacks are released on first settlement.
func (e *fileEntry) File(succeed func(webfolder.FileRef), fail func(error)) {
	var onOK, onErr safejs.Func
	release := func() {
		onOK.Release()
		onErr.Release()
	}

	onOK, err := safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		defer release()
		if len(args) == 0 {
			fail(&webfolder.PlatformError{Payload: "file callback fired without a file"})
			return nil
		}
		succeed(args[0])
		return nil
	})
	if err != nil {
		fail(&webfolder.PlatformError{Payload: err})
		return
	}
	onErr, err = safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		defer release()
		fail(&webfolder.PlatformError{Payload: firstArg(args)})
		return nil
	})
	if err != nil {
		onOK.Release()
		fail(&webfolder.PlatformError{Payload: err})
		return
	}

	if _, err := e.v.Call("file", onOK, onErr); err != nil {
		release()
		fail(&webfolder.PlatformError{Payload: err})
	}
}

type dirEntry struct {
	entryHandle
}

func (e *dirEntry) CreateReader() webfolder.DirectoryReader {
	rv, err := e.v.Call("createReader")
	return &dirReader{v: rv, err: err}
}

// dirReader wraps a FileSystemDirectoryReader. The DOM serializes reads per
// reader; the engine never overlaps calls on one reader, so no extra
// synchronization is needed here.
type dirReader struct {
	v   safejs.Value
	err error // createReader failure, surfaced on first read
}

func (r *dirReader) ReadEntries(succeed func([]webfolder.Entry), fail func(error)) {
	if r.err != nil {
		fail(&webfolder.PlatformError{Payload: r.err})
		return
	}

	var onOK, onErr safejs.Func
	release := func() {
		onOK.Release()
		onErr.Release()
	}

	onOK, err := safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		defer release()
		if len(args) == 0 {
			fail(&webfolder.PlatformError{Payload: "readEntries callback fired without entries"})
			return nil
		}
		entries, cerr := collectEntries(args[0])
		if cerr != nil {
			fail(&webfolder.PlatformError{Payload: cerr})
			return nil
		}
		succeed(entries)
		return nil
	})
	if err != nil {
		fail(&webfolder.PlatformError{Payload: err})
		return
	}
	onErr, err = safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		defer release()
		fail(&webfolder.PlatformError{Payload: firstArg(args)})
		return nil
	})
	if err != nil {
		onOK.Release()
		fail(&webfolder.PlatformError{Payload: err})
		return
	}

	if _, err := r.v.Call("readEntries", onOK, onErr); err != nil {
		release()
		fail(&webfolder.PlatformError{Payload: err})
	}
}

func collectEntries(arr safejs.Value) ([]webfolder.Entry, error) {
	n, err := arr.Length()
	if err != nil {
		return nil, err
	}
	entries := make([]webfolder.Entry, 0, n)
	for i := 0; i < n; i++ {
		v, err := arr.Index(i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, WrapEntry(v))
	}
	return entries, nil
}

func firstArg(args []safejs.Value) any {
	if len(args) > 0 {
		return args[0]
	}
	return nil
}
