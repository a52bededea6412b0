package osfs

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"

	webfolder "github.com/junovhs/web-folder"
)

func memTree(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %q: %v", path, err)
		}
	}
	return fsys
}

func TestNewDirectoryTraversal(t *testing.T) {
	fsys := memTree(t, map[string]string{
		"proj/a/b/c.txt": "c",
		"proj/d.txt":     "d",
	})

	root, err := NewDirectory(fsys, "proj", Options{})
	if err != nil {
		t.Fatalf("NewDirectory: %v", err)
	}
	if root.Name() != "proj" || root.FullPath() != "/proj" {
		t.Fatalf("root = %q %q", root.Name(), root.FullPath())
	}

	contents, err := webfolder.ReadDirectoryEntry(context.Background(), root, webfolder.Options{})
	if err != nil {
		t.Fatalf("ReadDirectoryEntry: %v", err)
	}
	if contents.RootName != "proj" {
		t.Errorf("RootName = %q", contents.RootName)
	}

	got := map[string]bool{}
	for _, f := range contents.Files {
		if strings.HasPrefix(f.Path, "/") {
			t.Errorf("path %q starts with separator", f.Path)
		}
		got[f.Path] = true
	}
	for _, want := range []string{"a/b/c.txt", "d.txt"} {
		if !got[want] {
			t.Errorf("missing path %q in %v", want, got)
		}
	}
}

func TestReaderPaginates(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < 10; i++ {
		files[fmt.Sprintf("d/f%02d.txt", i)] = "x"
	}
	fsys := memTree(t, files)

	root, err := NewDirectory(fsys, "d", Options{PageSize: 3})
	if err != nil {
		t.Fatalf("NewDirectory: %v", err)
	}

	reader := root.CreateReader()
	var total, pages int
	for {
		var batch []webfolder.Entry
		var rerr error
		reader.ReadEntries(func(e []webfolder.Entry) { batch = e }, func(e error) { rerr = e })
		if rerr != nil {
			t.Fatalf("ReadEntries: %v", rerr)
		}
		if len(batch) == 0 {
			break
		}
		if len(batch) > 3 {
			t.Fatalf("page of %d exceeds page size", len(batch))
		}
		total += len(batch)
		pages++
	}
	if total != 10 || pages != 4 {
		t.Errorf("got %d entries over %d pages, want 10 over 4", total, pages)
	}

	// A fresh reader has its own cursor.
	var again int
	second := root.CreateReader()
	second.ReadEntries(func(e []webfolder.Entry) { again = len(e) }, func(error) {})
	if again != 3 {
		t.Errorf("fresh reader first page = %d, want 3", again)
	}
}

func TestFileRefOpens(t *testing.T) {
	fsys := memTree(t, map[string]string{"d/hello.txt": "hello"})

	root, err := NewDirectory(fsys, "d", Options{})
	if err != nil {
		t.Fatalf("NewDirectory: %v", err)
	}
	contents, err := webfolder.ReadDirectoryEntry(context.Background(), root, webfolder.Options{})
	if err != nil {
		t.Fatalf("ReadDirectoryEntry: %v", err)
	}
	if len(contents.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(contents.Files))
	}

	ref, ok := contents.Files[0].File.(*File)
	if !ok {
		t.Fatalf("FileRef is %T, want *File", contents.Files[0].File)
	}
	if ref.Name() != "hello.txt" || ref.Size() != 5 {
		t.Errorf("ref = %q size %d", ref.Name(), ref.Size())
	}
	f, err := ref.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil || string(data) != "hello" {
		t.Errorf("content = %q, err %v", data, err)
	}
}

func TestNewDirectoryRejectsFile(t *testing.T) {
	fsys := memTree(t, map[string]string{"plain.txt": "x"})
	if _, err := NewDirectory(fsys, "plain.txt", Options{}); err == nil {
		t.Error("expected error for non-directory")
	}
}

func TestNewFile(t *testing.T) {
	fsys := memTree(t, map[string]string{"drop.bin": "abc"})

	fe, err := NewFile(fsys, "drop.bin")
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if !fe.IsFile() || fe.IsDir() || fe.Name() != "drop.bin" {
		t.Fatalf("unexpected entry: %v %v %q", fe.IsFile(), fe.IsDir(), fe.Name())
	}

	var ref webfolder.FileRef
	var ferr error
	fe.File(func(r webfolder.FileRef) { ref = r }, func(e error) { ferr = e })
	if ferr != nil {
		t.Fatalf("File: %v", ferr)
	}
	if ref.(*File).Size() != 3 {
		t.Errorf("size = %d, want 3", ref.(*File).Size())
	}
}
