package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"lpixmove/internal/domain"
	"lpixmove/internal/logger"
	"lpixmove/internal/parse"
	"lpixmove/internal/sanitize"
	"lpixmove/internal/sharedhttp"

	"github.com/PuerkitoBio/goquery"
	"github.com/avast/retry-go"
	"github.com/gocolly/colly"
	"github.com/pkg/errors"
)

const moveEndpoint = "ajax/gallmove.php"

type Lpix struct {
	SiteURL    string
	UserAgent  string
	Attempts   uint
	RetryDelay time.Duration
	Client     *http.Client
	Collector  *colly.Collector

	log logger.Logger
}

// Page is what a gallery page yields.
type Page struct {
	Title  string
	Images []domain.Image
	// Skipped counts filenametext nodes without an id, they can't be moved.
	Skipped int
}

func NewLpix(cfg *domain.Config, jar *cookiejar.Jar, log logger.Logger) *Lpix {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "lpixmove/" + cfg.Version
	}

	collector := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.UserAgent(userAgent),
	)
	collector.WithTransport(sharedhttp.Transport)
	collector.SetCookieJar(jar)
	collector.SetRequestTimeout(timeout)

	attempts := cfg.FetchAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &Lpix{
		SiteURL:    strings.TrimSuffix(cfg.SiteURL, "/"),
		UserAgent:  userAgent,
		Attempts:   uint(attempts),
		RetryDelay: 3 * time.Second,
		Client:     sharedhttp.NewClient(jar, timeout),
		Collector:  collector,
		log:        log,
	}
}

func (l *Lpix) String() string {
	return "lpix"
}

// Domain is the host the session cookies belong to.
func (l *Lpix) Domain() string {
	u, err := url.Parse(l.SiteURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// ValidateURL rejects gallery urls on other hosts, the session cookies only belong to this site.
func (l *Lpix) ValidateURL(galleryURL string) error {
	u, err := url.Parse(galleryURL)
	if err != nil {
		return errors.Wrapf(domain.ErrInvalidURL, "%q: %v", galleryURL, err)
	}

	if u.Hostname() != l.Domain() {
		return errors.Wrapf(domain.ErrInvalidURL, "the gallery url must start with %s, got %q", l.SiteURL, galleryURL)
	}

	return nil
}

// Resolve fetches a gallery page. The images are only kept when withImages is set.
func (l *Lpix) Resolve(ctx context.Context, galleryURL string, withImages bool) (domain.Gallery, error) {
	if err := l.ValidateURL(galleryURL); err != nil {
		return domain.Gallery{}, err
	}

	id, base, err := parse.GalleryURL(galleryURL)
	if err != nil {
		return domain.Gallery{}, err
	}

	var (
		page       Page
		found      bool
		statusCode int
	)

	c := l.Collector.Clone()

	c.OnResponse(func(r *colly.Response) {
		statusCode = r.StatusCode
	})

	c.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			statusCode = r.StatusCode
		}
	})

	c.OnHTML("html", func(e *colly.HTMLElement) {
		page, found = ParsePage(e.DOM)
	})

	// retry-go panics on a zero jitter
	jitter := l.RetryDelay / 3
	if jitter <= 0 {
		jitter = time.Millisecond
	}

	attempt := 0
	retryErr := retry.Do(func() error {
		attempt++
		statusCode = 0

		if err := ctx.Err(); err != nil {
			return retry.Unrecoverable(err)
		}

		l.log.Debug().Str("url", galleryURL).Int("attempt", attempt).Msg("fetching gallery page")

		if err := c.Visit(galleryURL); err != nil {
			if statusCode == 0 {
				// no response at all, worth another try
				return err
			}
			return sharedhttp.CheckStatusCode(statusCode)
		}

		// colly accepts 201 and 202 as well
		if statusCode != http.StatusOK {
			return sharedhttp.CheckStatusCode(statusCode)
		}

		return nil
	},
		retry.Attempts(l.Attempts),
		retry.Delay(l.RetryDelay),
		retry.MaxJitter(jitter),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			l.log.Warn().Err(err).Str("url", galleryURL).Uint("attempt", n+1).Msg("fetching gallery page failed, retrying")
		}),
	)
	if retryErr != nil {
		return domain.Gallery{}, errors.Wrapf(domain.ErrNetwork, "could not fetch gallery %s: %v", galleryURL, retryErr)
	}

	if !found {
		return domain.Gallery{}, errors.Wrapf(domain.ErrGalleryNotFound, "possibly gallery %s does not exist", galleryURL)
	}

	if page.Skipped > 0 {
		l.log.Warn().Str("gallery", id).Int("skipped", page.Skipped).Msg("found images without a hash, they will not be moved")
	}

	gallery := domain.Gallery{
		ID:      id,
		Title:   page.Title,
		URL:     galleryURL,
		BaseURL: base,
	}

	if withImages {
		gallery.Images = page.Images
	}

	l.log.Debug().Str("gallery", id).Str("title", gallery.Title).Int("images", len(page.Images)).Msg("resolved gallery")

	return gallery, nil
}

// ParsePage reads the gallery title from the first h2 and one image per .filenametext node.
// found is false when the page has no h2, which is what lpix serves for missing galleries.
func ParsePage(sel *goquery.Selection) (page Page, found bool) {
	heading := sel.Find("h2").First()
	if heading.Length() == 0 {
		return Page{}, false
	}

	page.Title = sanitize.Text(heading.Text())

	sel.Find(".filenametext").Each(func(_ int, s *goquery.Selection) {
		hash, ok := s.Attr("id")
		if !ok || strings.TrimSpace(hash) == "" {
			page.Skipped++
			return
		}

		imageURL, _ := s.Find("a.gallerylink").First().Attr("href")

		page.Images = append(page.Images, domain.Image{
			Hash: strings.TrimSpace(hash),
			URL:  imageURL,
		})
	})

	return page, true
}

// MoveImage assigns a single image to dest. Anything but 200 is a failure, it is not retried.
func (l *Lpix) MoveImage(ctx context.Context, image domain.Image, dest domain.Gallery) error {
	moveURL, err := l.moveURL(image.Hash, dest.ID)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, moveURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "move request for image %s failed", image.Hash)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.StatusError{
			StatusCode: resp.StatusCode,
			URL:        moveURL,
			Body:       sharedhttp.ReadExcerpt(resp.Body),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func (l *Lpix) moveURL(hash, galleryID string) (string, error) {
	path, err := url.JoinPath(l.SiteURL, moveEndpoint)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(path)
	if err != nil {
		return "", err
	}

	u.RawQuery = url.Values{
		"hash":    []string{hash},
		"gallery": []string{galleryID},
	}.Encode()

	return u.String(), nil
}

// DeleteGallery posts the delete confirmation form to the gallery's base url.
func (l *Lpix) DeleteGallery(ctx context.Context, gallery domain.Gallery) error {
	form := url.Values{
		"galleryid":     []string{gallery.ID},
		"confirmdelgal": []string{"Confirm+Delete"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gallery.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return errors.Wrapf(domain.ErrDeletion, "gallery %s: got exception %v", gallery.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &domain.StatusError{
			StatusCode: resp.StatusCode,
			URL:        gallery.BaseURL,
			Body:       sharedhttp.ReadExcerpt(resp.Body),
		}
		return errors.Wrapf(domain.ErrDeletion, "gallery %s: %v", gallery.ID, statusErr)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	l.log.Debug().Str("gallery", gallery.ID).Str("url", gallery.BaseURL).Msg("deleted gallery")

	return nil
}
