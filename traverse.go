package webfolder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/junovhs/web-folder/internal/bridge"
)

// ReadDirectoryEntry flattens the tree under dir into a FolderContents.
//
// Children are read page by page; file entries are resolved in pagination
// order; subdirectories recurse depth-first, with up to Options.MaxParallel
// sibling subdirectories traversed concurrently. Output order is the same
// either way: each entry's results land in its pagination slot.
//
// The first error at any depth cancels outstanding sibling work and aborts
// the whole call (fail-fast). Entries reporting neither file nor directory
// kind are logged and skipped.
func ReadDirectoryEntry(ctx context.Context, dir DirectoryEntry, opts Options) (*FolderContents, error) {
	opts = opts.withDefaults()

	log := opts.Logger.With().
		Str("traversal_id", uuid.NewString()).
		Str("root", dir.Name()).
		Logger()

	tr := &traverser{opts: opts, log: &log}

	files, err := tr.flatten(ctx, dir, dir.FullPath())
	if err != nil {
		log.Debug().Err(err).Msg("traversal aborted")
		return nil, err
	}

	log.Debug().Int("files", len(files)).Msg("traversal complete")
	return &FolderContents{RootName: dir.Name(), Files: files}, nil
}

type traverser struct {
	opts Options
	log  *zerolog.Logger
}

// flatten returns dir's files depth-first, with paths relative to rootPath.
func (tr *traverser) flatten(ctx context.Context, dir DirectoryEntry, rootPath string) ([]FolderFile, error) {
	entries, err := readAllChildren(ctx, dir, tr.log)
	if err != nil {
		return nil, err
	}

	// Per-entry result slots keep output in pagination order regardless of
	// which subdirectory finishes first.
	slots := make([][]FolderFile, len(entries))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tr.opts.MaxParallel)

	var fileErr error
	for i, ent := range entries {
		i := i // go directive is below 1.22: keep a per-iteration copy for the closure
		switch {
		case ent.IsFile():
			fe, ok := ent.(FileEntry)
			if !ok {
				tr.skipMalformed(ent, "file entry lacks resolution")
				continue
			}
			ref, err := resolveFile(gctx, fe)
			if err != nil {
				fileErr = err
				cancel() // fail fast: stop sibling subdirectory work
			} else {
				slots[i] = []FolderFile{{
					Path: childPath(rootPath, ent.FullPath()),
					Name: ent.Name(),
					File: ref,
				}}
			}
		case ent.IsDir():
			de, ok := ent.(DirectoryEntry)
			if !ok {
				tr.skipMalformed(ent, "directory entry lacks reader")
				continue
			}
			g.Go(func() error {
				sub, err := tr.flatten(gctx, de, rootPath)
				if err != nil {
					return err
				}
				slots[i] = sub
				return nil
			})
		default:
			tr.skipMalformed(ent, "neither file nor directory")
		}
		if fileErr != nil {
			break
		}
	}

	werr := g.Wait()
	if fileErr != nil {
		return nil, fileErr
	}
	if werr != nil {
		return nil, werr
	}

	var files []FolderFile
	for _, s := range slots {
		files = append(files, s...)
	}
	return files, nil
}

// resolveFile bridges an entry's callback-style file resolution.
func resolveFile(ctx context.Context, fe FileEntry) (FileRef, error) {
	ref, err := bridge.Await(ctx, func(succeed func(FileRef), fail func(error)) {
		fe.File(succeed, fail)
	})
	if err != nil {
		return nil, fmt.Errorf("resolve file %q: %w", fe.FullPath(), cancelWrap(err))
	}
	return ref, nil
}

// The platform's entry taxonomy may grow; unknown kinds are skipped, not
// fatal.
func (tr *traverser) skipMalformed(ent Entry, reason string) {
	tr.log.Warn().
		Str("path", ent.FullPath()).
		Str("reason", reason).
		Msg("skipping malformed entry")
}
