// Package mover moves the images of one gallery into another, one request at a time.
package mover

import (
	"context"
	"fmt"
	"io"

	"lpixmove/internal/domain"
	"lpixmove/internal/logger"

	"github.com/pkg/errors"
)

type Result struct {
	Total    int
	Moved    int
	Failures []Failure
	// Skipped is the number of images never attempted because the run was canceled.
	Skipped int
}

// OK reports whether every image was moved.
func (r Result) OK() bool {
	return len(r.Failures) == 0 && r.Skipped == 0
}

type Failure struct {
	Image domain.Image
	Err   error
}

func (f Failure) Error() string {
	var statusErr *domain.StatusError
	if errors.As(f.Err, &statusErr) {
		return fmt.Sprintf("Something went wrong while moving image %s. Got http status code %d with message %s.", f.Image.URL, statusErr.StatusCode, statusErr.Body)
	}
	return fmt.Sprintf("Something went wrong while moving image %s. Got exception %v.", f.Image.URL, f.Err)
}

func (f Failure) Unwrap() error {
	return domain.ErrMoveFailed
}

type Executor struct {
	site domain.Site
	out  io.Writer
	log  logger.Logger
}

func New(site domain.Site, out io.Writer, log logger.Logger) *Executor {
	return &Executor{
		site: site,
		out:  out,
		log:  log,
	}
}

// Move moves every image of src to dest in page order. A failed image is recorded and the
// remaining images are still attempted, nothing is retried.
func (e *Executor) Move(ctx context.Context, src, dest domain.Gallery) Result {
	res := Result{Total: len(src.Images)}

	for i, image := range src.Images {
		if ctx.Err() != nil {
			res.Skipped = res.Total - i
			e.log.Warn().Err(ctx.Err()).Int("skipped", res.Skipped).Msg("move canceled")
			break
		}

		fmt.Fprintf(e.out, "Moving image %s (%d/%d)...\n", image.URL, i+1, res.Total)

		if err := e.site.MoveImage(ctx, image, dest); err != nil {
			failure := Failure{Image: image, Err: err}
			res.Failures = append(res.Failures, failure)

			fmt.Fprintln(e.out, failure.Error())
			e.log.Error().Err(err).Str("hash", image.Hash).Str("url", image.URL).Str("gallery", dest.ID).Msg("error moving image")
			continue
		}

		res.Moved++
		fmt.Fprintln(e.out, "Success!")
		e.log.Debug().Str("hash", image.Hash).Str("gallery", dest.ID).Msg("moved image")
	}

	return res
}
