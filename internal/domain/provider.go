package domain

import (
	"context"
	"net/http"
)

// Site is a photo host whose galleries can be resolved, emptied and deleted.
type Site interface {
	String() string
	Domain() string
	Resolve(ctx context.Context, galleryURL string, withImages bool) (Gallery, error)
	MoveImage(ctx context.Context, image Image, dest Gallery) error
	DeleteGallery(ctx context.Context, gallery Gallery) error
}

// CookieSource returns the session cookies for a domain.
type CookieSource interface {
	String() string
	Cookies(ctx context.Context, domain string) ([]*http.Cookie, error)
}

type Gallery struct {
	ID      string
	Title   string
	URL     string
	BaseURL string // URL with the trailing gallery ID removed
	Images  []Image
}

type Image struct {
	Hash string
	URL  string
}
