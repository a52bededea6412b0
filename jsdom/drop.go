//go:build js && wasm

package jsdom

import (
	"fmt"

	"github.com/hack-pad/safejs"

	webfolder "github.com/junovhs/web-folder"
)

// Payload wraps a drop event's DataTransfer as a webfolder.DropPayload.
type Payload struct {
	items []webfolder.DropItem
}

// FromEvent builds a Payload from a drop event value. It must be called from
// the drop event handler itself: the items' entry accessors die when that
// handler's turn ends, which is why webfolder.CaptureDropEntries has to run
// before anything awaits.
func FromEvent(event safejs.Value) (*Payload, error) {
	dt, err := event.Get("dataTransfer")
	if err != nil {
		return nil, fmt.Errorf("jsdom: drop event has no dataTransfer: %w", err)
	}
	return FromDataTransfer(dt)
}

// FromDataTransfer builds a Payload directly from a DataTransfer value.
func FromDataTransfer(dt safejs.Value) (*Payload, error) {
	list, err := dt.Get("items")
	if err != nil {
		return nil, fmt.Errorf("jsdom: dataTransfer has no items: %w", err)
	}
	n, err := list.Length()
	if err != nil {
		return nil, fmt.Errorf("jsdom: read item list length: %w", err)
	}

	items := make([]webfolder.DropItem, 0, n)
	for i := 0; i < n; i++ {
		v, err := list.Index(i)
		if err != nil {
			return nil, fmt.Errorf("jsdom: read item %d: %w", i, err)
		}
		items = append(items, &item{v: v})
	}
	return &Payload{items: items}, nil
}

func (p *Payload) Items() []webfolder.DropItem { return p.items }

// item wraps one DataTransferItem.
type item struct {
	v safejs.Value
}

// Entry resolves via webkitGetAsEntry. Null results (non-file drag data, or
// an accessor invoked after the drop turn ended) report ok=false.
func (it *item) Entry() (webfolder.Entry, bool) {
	ent, err := it.v.Call("webkitGetAsEntry")
	if err != nil {
		return nil, false
	}
	usable, err := ent.Truthy()
	if err != nil || !usable {
		return nil, false
	}
	return WrapEntry(ent), true
}
