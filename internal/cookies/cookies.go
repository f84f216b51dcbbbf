// Package cookies provides the session cookies lpixmove authenticates with.
package cookies

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"lpixmove/internal/domain"

	"github.com/pkg/errors"
)

// New returns the cookie source selected in the config.
func New(cfg *domain.Config) (domain.CookieSource, error) {
	switch cfg.CookieSource {
	case "", "browser":
		return NewBrowser(), nil
	case "curl":
		return NewCurlFile(cfg.CookieFile), nil
	case "header":
		return NewHeader(cfg.CookieHeader), nil
	default:
		return nil, fmt.Errorf("invalid cookie source: %s", cfg.CookieSource)
	}
}

type header struct {
	raw string
}

// NewHeader parses a raw "name=value; name2=value2" cookie header.
func NewHeader(raw string) domain.CookieSource {
	return &header{raw: raw}
}

func (h *header) String() string {
	return "cookie header"
}

func (h *header) Cookies(_ context.Context, _ string) ([]*http.Cookie, error) {
	return parseHeader(h.raw)
}

func parseHeader(raw string) ([]*http.Cookie, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "Cookie:")
	raw = strings.TrimPrefix(raw, "cookie:")
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return nil, domain.ErrNoCookies
	}

	cookies, err := http.ParseCookie(raw)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse cookie header")
	}

	return cookies, nil
}

type static struct {
	cookies []*http.Cookie
}

// NewStatic always returns the given cookies.
func NewStatic(cookies ...*http.Cookie) domain.CookieSource {
	return &static{cookies: cookies}
}

func (s *static) String() string {
	return "static"
}

func (s *static) Cookies(_ context.Context, _ string) ([]*http.Cookie, error) {
	if len(s.cookies) == 0 {
		return nil, domain.ErrNoCookies
	}
	return s.cookies, nil
}
