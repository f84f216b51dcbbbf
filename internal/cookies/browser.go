package cookies

import (
	"context"
	"net/http"

	"lpixmove/internal/domain"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register cookie store finders
	"github.com/pkg/errors"
)

// readCookies reads every cookie store kooky finds, swapped out in tests.
var readCookies = kooky.ReadCookies

type browser struct{}

// NewBrowser reads cookies from the cookie stores of the locally installed browsers.
func NewBrowser() domain.CookieSource {
	return &browser{}
}

func (b *browser) String() string {
	return "browser"
}

func (b *browser) Cookies(_ context.Context, siteDomain string) ([]*http.Cookie, error) {
	found := readCookies(kooky.Valid, kooky.DomainHasSuffix(siteDomain))

	// several browsers may hold a session for the same site, keep the first of each name
	seen := make(map[string]bool)
	cookies := make([]*http.Cookie, 0, len(found))
	for _, c := range found {
		if c == nil || seen[c.Name] {
			continue
		}
		seen[c.Name] = true

		hc := c.Cookie
		cookies = append(cookies, &hc)
	}

	if len(cookies) == 0 {
		return nil, errors.Wrapf(domain.ErrNoCookies, "no browser is logged in to %s", siteDomain)
	}

	return cookies, nil
}
