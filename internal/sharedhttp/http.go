package sharedhttp

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// maxBodyExcerpt caps how much of an error response is kept for messages.
const maxBodyExcerpt = 512

var Transport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ForceAttemptHTTP2:     true,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
	TLSClientConfig: &tls.Config{
		MinVersion: tls.VersionTLS12,
	},
}

// NewJar returns a cookie jar holding cookies for siteURL.
func NewJar(siteURL string, cookies []*http.Cookie) (*cookiejar.Jar, error) {
	u, err := url.Parse(siteURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse site url %q", siteURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "could not create cookie jar")
	}

	jar.SetCookies(u, cookies)

	return jar, nil
}

// NewClient returns a client sending the jar's cookies with every request.
// A zero timeout means no timeout.
func NewClient(jar http.CookieJar, timeout time.Duration) *http.Client {
	return &http.Client{
		Jar:       jar,
		Timeout:   timeout,
		Transport: Transport,
	}
}

// CheckStatusCode classifies a page response for retrying, only server errors are worth another attempt.
func CheckStatusCode(statusCode int) error {
	switch statusCode {
	case http.StatusOK:

	case http.StatusUnauthorized, http.StatusForbidden:
		return retry.Unrecoverable(fmt.Errorf("not authorized, are you logged in: status code %d", statusCode))

	case http.StatusNotFound:
		return retry.Unrecoverable(fmt.Errorf("page not found: status code %d", statusCode))

	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusInternalServerError:
		return fmt.Errorf("server error: status code %d - retrying", statusCode)

	default:
		return retry.Unrecoverable(fmt.Errorf("unexpected status code %d", statusCode))
	}

	return nil
}

// ReadExcerpt reads at most the first few hundred bytes of r, for error messages.
func ReadExcerpt(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxBodyExcerpt))
	return strings.TrimSpace(string(b))
}
