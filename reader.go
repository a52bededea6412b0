package webfolder

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/junovhs/web-folder/internal/bridge"
)

// maxPageEntries is the documented platform cap on entries per ReadEntries
// call. The engine never relies on it for termination; it only sizes the
// accumulator and sanity-checks adapters in tests.
const maxPageEntries = 100

// readAllChildren drains one directory through a fresh reader, one page at a
// time, until the platform yields an empty page. A short non-empty page does
// not end the loop; only an empty one does. Pages are awaited strictly one
// at a time, which keeps the single-in-flight-read-per-reader rule.
func readAllChildren(ctx context.Context, dir DirectoryEntry, log *zerolog.Logger) ([]Entry, error) {
	reader := dir.CreateReader()

	var all []Entry
	for page := 0; ; page++ {
		batch, err := bridge.Await(ctx, func(succeed func([]Entry), fail func(error)) {
			reader.ReadEntries(succeed, fail)
		})
		if err != nil {
			return nil, fmt.Errorf("read children of %q (page %d): %w", dir.FullPath(), page, cancelWrap(err))
		}
		if len(batch) == 0 {
			log.Trace().
				Str("dir", dir.FullPath()).
				Int("pages", page).
				Int("entries", len(all)).
				Msg("directory drained")
			return all, nil
		}
		all = append(all, batch...)
	}
}
