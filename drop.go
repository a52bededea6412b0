package webfolder

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// CaptureDropEntries resolves every item of a drop payload to an entry
// handle, synchronously.
//
// On the real platform the per-item accessor stops working the moment the
// routine handling the drop event suspends, so this must run to completion —
// over the whole item list — before anything is awaited. FromDropEvent does
// that; callers driving traversal themselves must do the same: capture
// first, await after. Items carrying no filesystem entry (plain drag data)
// are dropped silently.
func CaptureDropEntries(payload DropPayload) []Entry {
	items := payload.Items()
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if ent, ok := item.Entry(); ok {
			entries = append(entries, ent)
		}
	}
	return entries
}

// FromDropEvent ingests a drop payload: one FolderContents per dropped
// directory (flattened via ReadDirectoryEntry) and one single-file
// FolderContents per dropped file.
//
// Top-level entries succeed and fail independently: a failed entry produces
// no result and does not abort its siblings. The returned error joins the
// per-entry failures; results and error can both be non-nil.
func FromDropEvent(ctx context.Context, payload DropPayload, opts Options) ([]*FolderContents, error) {
	opts = opts.withDefaults()

	// Must happen before the first await, while the accessors are alive.
	entries := CaptureDropEntries(payload)

	log := opts.Logger.With().
		Str("drop_id", uuid.NewString()).
		Logger()
	log.Debug().Int("entries", len(entries)).Msg("drop captured")

	var (
		results []*FolderContents
		errs    []error
	)
	for _, ent := range entries {
		switch {
		case ent.IsDir():
			de, ok := ent.(DirectoryEntry)
			if !ok {
				log.Warn().Str("path", ent.FullPath()).Msg("skipping malformed drop entry")
				continue
			}
			contents, err := ReadDirectoryEntry(ctx, de, opts)
			if err != nil {
				log.Warn().Err(err).Str("root", ent.Name()).Msg("dropped directory failed")
				errs = append(errs, err)
				continue
			}
			results = append(results, contents)
		case ent.IsFile():
			fe, ok := ent.(FileEntry)
			if !ok {
				log.Warn().Str("path", ent.FullPath()).Msg("skipping malformed drop entry")
				continue
			}
			ref, err := resolveFile(ctx, fe)
			if err != nil {
				log.Warn().Err(err).Str("name", ent.Name()).Msg("dropped file failed")
				errs = append(errs, err)
				continue
			}
			name := ent.Name()
			results = append(results, &FolderContents{
				RootName: name,
				Files:    []FolderFile{{Path: name, Name: name, File: ref}},
			})
		default:
			log.Warn().Str("path", ent.FullPath()).Msg("skipping malformed drop entry")
		}
	}

	return results, errors.Join(errs...)
}
