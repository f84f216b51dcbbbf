package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidURL      = errors.New("no numeric gallery id in url")
	ErrGalleryNotFound = errors.New("gallery not found")
	ErrSameGallery     = errors.New("source and destination gallery are the same")
	ErrNetwork         = errors.New("request failed")
	ErrMoveFailed      = errors.New("move failed")
	ErrDeletion        = errors.New("gallery deletion failed")
	ErrNoCookies       = errors.New("no session cookies found")
)

// StatusError is returned when the site answers with anything but 200.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("got http status code %d with message %q (URL: %s)", e.StatusCode, e.Body, e.URL)
}
