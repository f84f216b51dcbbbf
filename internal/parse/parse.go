package parse

import (
	"net/url"
	"regexp"
	"strings"

	"lpixmove/internal/domain"

	"github.com/pkg/errors"
)

var galleryIDPattern = regexp.MustCompile(`/\d+`)

// GalleryURL returns the gallery id, taken from the last "/<digits>" run of the url,
// and the url without query and fragment with the last occurrence of that id removed.
//
// Only the last occurrence is cut so that a numeric user name equal to the id survives.
// Digits in the host (an ip address, a port) never count as an id.
func GalleryURL(galleryURL string) (string, string, error) {
	u, err := url.Parse(galleryURL)
	if err != nil {
		return "", "", errors.Wrapf(domain.ErrInvalidURL, "%q: %v", galleryURL, err)
	}

	matches := galleryIDPattern.FindAllString(u.Path, -1)
	if len(matches) == 0 {
		return "", "", errors.Wrapf(domain.ErrInvalidURL, "%q", galleryURL)
	}

	id := strings.TrimPrefix(matches[len(matches)-1], "/")

	// the base url is where the gallery is deleted, query and fragment don't belong to it
	trimmed := *u
	trimmed.RawQuery = ""
	trimmed.ForceQuery = false
	trimmed.Fragment = ""
	trimmed.RawFragment = ""
	full := trimmed.String()

	base := full[:strings.LastIndex(full, id)]

	return id, base, nil
}
