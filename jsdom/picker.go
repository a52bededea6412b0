//go:build js && wasm

package jsdom

import (
	"fmt"

	"github.com/hack-pad/safejs"

	webfolder "github.com/junovhs/web-folder"
)

// Selector drives a caller-owned <input type="file" webkitdirectory> element
// as a webfolder.FolderSelector. The caller creates and attaches the element
// (typically hidden) and passes it in together with the window object, which
// supplies the focus-regain signal used for cancellation detection.
//
// Close releases the registered listeners; the Selector must not be used
// afterwards.
type Selector struct {
	input  safejs.Value
	window safejs.Value

	picks   chan []webfolder.PickedFile
	refocus chan struct{}

	onChange safejs.Func
	onFocus  safejs.Func
}

// NewSelector wires change and focus listeners onto the given elements.
func NewSelector(input, window safejs.Value) (*Selector, error) {
	s := &Selector{
		input:   input,
		window:  window,
		picks:   make(chan []webfolder.PickedFile, 1),
		refocus: make(chan struct{}, 1),
	}

	var err error
	s.onChange, err = safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		picked, perr := s.collectPicked()
		if perr != nil {
			// A broken FileList is indistinguishable from an empty pick;
			// deliver nothing and let the grace window resolve the wait.
			return nil
		}
		select {
		case s.picks <- picked:
		default:
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("jsdom: create change handler: %w", err)
	}

	s.onFocus, err = safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		select {
		case s.refocus <- struct{}{}:
		default:
		}
		return nil
	})
	if err != nil {
		s.onChange.Release()
		return nil, fmt.Errorf("jsdom: create focus handler: %w", err)
	}

	if _, err := input.Call("addEventListener", "change", s.onChange); err != nil {
		s.release()
		return nil, fmt.Errorf("jsdom: attach change listener: %w", err)
	}
	if _, err := window.Call("addEventListener", "focus", s.onFocus); err != nil {
		_, _ = input.Call("removeEventListener", "change", s.onChange)
		s.release()
		return nil, fmt.Errorf("jsdom: attach focus listener: %w", err)
	}

	return s, nil
}

// Open clicks the input, which opens the native folder dialog.
func (s *Selector) Open() error {
	if _, err := s.input.Call("click"); err != nil {
		return fmt.Errorf("jsdom: click folder input: %w", err)
	}
	return nil
}

func (s *Selector) Picks() <-chan []webfolder.PickedFile { return s.picks }

func (s *Selector) Refocused() <-chan struct{} { return s.refocus }

// Close detaches the listeners and releases their funcs.
func (s *Selector) Close() error {
	_, cerr := s.input.Call("removeEventListener", "change", s.onChange)
	_, ferr := s.window.Call("removeEventListener", "focus", s.onFocus)
	s.release()
	if cerr != nil {
		return fmt.Errorf("jsdom: detach change listener: %w", cerr)
	}
	if ferr != nil {
		return fmt.Errorf("jsdom: detach focus listener: %w", ferr)
	}
	return nil
}

func (s *Selector) release() {
	s.onChange.Release()
	s.onFocus.Release()
}

// collectPicked reads the input's FileList. Each file carries the
// platform-computed webkitRelativePath whose first segment is the chosen
// folder's name; reshaping is the engine's job.
func (s *Selector) collectPicked() ([]webfolder.PickedFile, error) {
	files, err := s.input.Get("files")
	if err != nil {
		return nil, err
	}
	n, err := files.Length()
	if err != nil {
		return nil, err
	}

	picked := make([]webfolder.PickedFile, 0, n)
	for i := 0; i < n; i++ {
		f, err := files.Index(i)
		if err != nil {
			return nil, err
		}
		picked = append(picked, webfolder.PickedFile{
			RelativePath: stringProp(f, "webkitRelativePath"),
			File:         f,
		})
	}
	return picked, nil
}
