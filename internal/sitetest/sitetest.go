// Package sitetest contains an in-memory photo host for tests.
package sitetest

import (
	"context"
	"strconv"
	"sync"

	"lpixmove/internal/domain"
)

// FakeSite is a test double for [domain.Site]. Galleries are looked up by url.
type FakeSite struct {
	Galleries  map[string]domain.Gallery
	ResolveErr map[string]error
	MoveErr    map[string]error // by image hash
	DeleteErr  error

	mu       sync.Mutex
	resolved []string
	moves    []string
	deletes  []string
}

func New(galleries ...domain.Gallery) *FakeSite {
	f := &FakeSite{
		Galleries:  make(map[string]domain.Gallery),
		ResolveErr: make(map[string]error),
		MoveErr:    make(map[string]error),
	}
	for _, g := range galleries {
		f.Galleries[g.URL] = g
	}
	return f
}

func (f *FakeSite) String() string { return "fake" }

func (f *FakeSite) Domain() string { return "lpix.test" }

func (f *FakeSite) Resolve(_ context.Context, galleryURL string, withImages bool) (domain.Gallery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resolved = append(f.resolved, galleryURL)

	if err, ok := f.ResolveErr[galleryURL]; ok {
		return domain.Gallery{}, err
	}

	g, ok := f.Galleries[galleryURL]
	if !ok {
		return domain.Gallery{}, domain.ErrGalleryNotFound
	}
	if !withImages {
		g.Images = nil
	}
	return g, nil
}

func (f *FakeSite) MoveImage(ctx context.Context, image domain.Image, dest domain.Gallery) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.MoveErr[image.Hash]; ok {
		return err
	}
	f.moves = append(f.moves, image.Hash+"->"+dest.ID)
	return nil
}

func (f *FakeSite) DeleteGallery(_ context.Context, gallery domain.Gallery) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.deletes = append(f.deletes, gallery.ID)
	return nil
}

func (f *FakeSite) Resolved() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.resolved...)
}

// Moves returns "hash->gallery" for every successful move.
func (f *FakeSite) Moves() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.moves...)
}

func (f *FakeSite) Deletes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletes...)
}

// Images builds n images with hashes h1..hn.
func Images(n int) []domain.Image {
	images := make([]domain.Image, 0, n)
	for i := 1; i <= n; i++ {
		hash := "h" + strconv.Itoa(i)
		images = append(images, domain.Image{Hash: hash, URL: "https://lpix.test/i/" + hash + ".png"})
	}
	return images
}

