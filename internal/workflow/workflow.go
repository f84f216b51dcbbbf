// Package workflow drives a gallery move from resolving both galleries to the optional deletion
// of the emptied source gallery.
package workflow

import (
	"context"
	"fmt"
	"io"

	"lpixmove/internal/domain"
	"lpixmove/internal/logger"
	"lpixmove/internal/mover"
	"lpixmove/internal/parse"

	"github.com/pkg/errors"
)

type State int

const (
	Init State = iota
	SourceResolved
	DestinationResolved
	Confirmed
	Aborted
	Moved
	DeletionDecided
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case SourceResolved:
		return "source resolved"
	case DestinationResolved:
		return "destination resolved"
	case Confirmed:
		return "confirmed"
	case Aborted:
		return "aborted"
	case Moved:
		return "moved"
	case DeletionDecided:
		return "deletion decided"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type Options struct {
	OldGalleryURL    string
	NewGalleryURL    string
	SkipConfirmation bool
	DeleteGallery    bool
	DryRun           bool
}

type Workflow struct {
	site     domain.Site
	executor *mover.Executor
	prompter Prompter
	out      io.Writer
	log      logger.Logger

	state State
}

func New(site domain.Site, prompter Prompter, out io.Writer, log logger.Logger) *Workflow {
	return &Workflow{
		site:     site,
		executor: mover.New(site, out, log),
		prompter: prompter,
		out:      out,
		log:      log,
	}
}

func (w *Workflow) transition(s State) {
	w.log.Debug().Str("from", w.state.String()).Str("to", s.String()).Msg("workflow state")
	w.state = s
}

func (w *Workflow) fail(err error) (State, error) {
	w.transition(Failed)
	return Failed, err
}

// Run executes the move. It ends in Done, Aborted or Failed, only Failed comes with an error.
func (w *Workflow) Run(ctx context.Context, opts Options) (State, error) {
	w.state = Init

	// both urls are checked before anything is requested
	oldID, _, err := parse.GalleryURL(opts.OldGalleryURL)
	if err != nil {
		return w.fail(errors.Wrap(err, "cannot read id from old gallery URL"))
	}

	newID, _, err := parse.GalleryURL(opts.NewGalleryURL)
	if err != nil {
		return w.fail(errors.Wrap(err, "cannot read id from new gallery URL"))
	}

	if oldID == newID {
		return w.fail(errors.Wrapf(domain.ErrSameGallery, "gallery %s", oldID))
	}

	fmt.Fprintln(w.out, "Scanning the galleries...")

	src, err := w.site.Resolve(ctx, opts.OldGalleryURL, true)
	if err != nil {
		return w.fail(errors.Wrap(err, "old gallery"))
	}
	w.transition(SourceResolved)

	dest, err := w.site.Resolve(ctx, opts.NewGalleryURL, false)
	if err != nil {
		return w.fail(errors.Wrap(err, "new gallery"))
	}
	w.transition(DestinationResolved)

	fmt.Fprintf(w.out, "This will move %d files from gallery %s ( %s ) to %s ( %s ).\n", len(src.Images), src.ID, src.Title, dest.ID, dest.Title)

	if opts.DryRun {
		for i, image := range src.Images {
			fmt.Fprintf(w.out, "  %d. %s %s\n", i+1, image.Hash, image.URL)
		}
		fmt.Fprintln(w.out, "Dry run, no images were moved.")
		w.transition(Done)
		return Done, nil
	}

	var promptErr error
	ask := func(question string) func() bool {
		return func() bool {
			ok, err := w.prompter.Confirm(question)
			if err != nil {
				promptErr = err
				return false
			}
			return ok
		}
	}

	if DecideMove(opts.SkipConfirmation, ask("Continue?")) == Abort {
		if promptErr != nil {
			return w.fail(promptErr)
		}
		fmt.Fprintln(w.out, "Stopping with no actions taken.")
		w.transition(Aborted)
		return Aborted, nil
	}
	w.transition(Confirmed)

	res := w.executor.Move(ctx, src, dest)
	w.transition(Moved)

	w.log.Info().
		Str("from", src.ID).
		Str("to", dest.ID).
		Int("total", res.Total).
		Int("moved", res.Moved).
		Int("failed", len(res.Failures)).
		Int("skipped", res.Skipped).
		Msg("move finished")

	if !res.OK() {
		fmt.Fprintf(w.out, "Not all images moved successfully from %s to %s. Please fix any problems manually.\n", src.Title, dest.Title)
		if res.Skipped > 0 {
			return w.fail(errors.Wrapf(ctx.Err(), "moved %d of %d images before stopping", res.Moved, res.Total))
		}
		return w.fail(errors.Wrapf(domain.ErrMoveFailed, "%d of %d images could not be moved", len(res.Failures), res.Total))
	}

	fmt.Fprintf(w.out, "All images moved successfully from %s to %s (%d/%d)\n", src.Title, dest.Title, res.Moved, res.Total)

	decision := ResolveAsk(
		DecideDelete(opts.SkipConfirmation, opts.DeleteGallery),
		ask(fmt.Sprintf("Would you like to delete the old gallery %s?", src.Title)),
	)
	w.transition(DeletionDecided)

	if promptErr != nil {
		return w.fail(promptErr)
	}

	switch decision {
	case DeleteNow:
		if err := w.site.DeleteGallery(ctx, src); err != nil {
			fmt.Fprintf(w.out, "Something went wrong while deleting gallery %s.\n", src.ID)
			return w.fail(err)
		}
		fmt.Fprintf(w.out, "Successfully deleted gallery %s.\n", src.ID)
	default:
		fmt.Fprintln(w.out, "Not deleting gallery.")
	}

	w.transition(Done)
	return Done, nil
}
