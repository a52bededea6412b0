package webfolder

import (
	"context"
	"fmt"
	"time"
)

// PickFolder opens a folder-selection control and waits for the user to
// choose a folder or dismiss the dialog. It returns (nil, nil) when nothing
// was selected; ErrCancelled only when ctx expires.
//
// The platform fires no event when the dialog is dismissed, so dismissal is
// detected heuristically: once the control regains focus without a
// completion notification, a grace timer (Options.CancelGrace) starts; if
// completion arrives inside the window it wins, otherwise the pick resolves
// to no selection. Every focus regain restarts the window, since the dialog
// itself can bounce focus. This keeps the wait deterministic — PickFolder
// never hangs past the last focus regain plus the grace period.
func PickFolder(ctx context.Context, sel FolderSelector, opts Options) (*FolderContents, error) {
	opts = opts.withDefaults()

	if err := sel.Open(); err != nil {
		return nil, fmt.Errorf("open folder selector: %w", err)
	}

	var (
		timer  *time.Timer
		graceC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case picked := <-sel.Picks():
			contents := reshapePicked(picked, opts)
			if contents == nil {
				opts.Logger.Debug().Msg("picker completed with no usable files")
			} else {
				opts.Logger.Debug().
					Str("root", contents.RootName).
					Int("files", len(contents.Files)).
					Msg("picker completed")
			}
			return contents, nil
		case <-sel.Refocused():
			if timer == nil {
				timer = time.NewTimer(opts.CancelGrace)
				graceC = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(opts.CancelGrace)
			}
		case <-graceC:
			opts.Logger.Debug().Msg("picker dismissed (focus regained, no completion)")
			return nil, nil
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}
	}
}

// reshapePicked converts the control's already-flattened file list into the
// traversal output shape. Each relative path's first segment is the selected
// folder's name: it becomes RootName and is stripped from every Path. Files
// whose reported path has no root segment are skipped.
func reshapePicked(picked []PickedFile, opts Options) *FolderContents {
	contents := &FolderContents{}
	for _, pf := range picked {
		root, rest, ok := splitFirstSegment(pf.RelativePath)
		if !ok || root == "" || rest == "" {
			opts.Logger.Warn().
				Str("path", pf.RelativePath).
				Msg("picked file has no root-qualified path, skipping")
			continue
		}
		if contents.RootName == "" {
			// All files share the same first segment; take it from the
			// first usable one.
			contents.RootName = root
		}
		contents.Files = append(contents.Files, FolderFile{
			Path: rest,
			Name: baseName(rest),
			File: pf.File,
		})
	}
	if contents.RootName == "" {
		return nil
	}
	return contents
}
