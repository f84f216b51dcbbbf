package cookies

import (
	"context"
	"net/http"
	"os"
	"regexp"
	"strings"

	"lpixmove/internal/domain"

	"github.com/pkg/errors"
)

var (
	curlCookieFlagPattern   = regexp.MustCompile(`(?:-b|--cookie)\s+'([^']+)'|(?:-b|--cookie)\s+"([^"]+)"`)
	curlCookieHeaderPattern = regexp.MustCompile(`(?i)-H\s+'cookie:\s*([^']+)'|-H\s+"cookie:\s*([^"]+)"`)
)

type curlFile struct {
	path string
}

// NewCurlFile reads the cookies of a "Copy as cURL" command saved to path.
func NewCurlFile(path string) domain.CookieSource {
	return &curlFile{path: path}
}

func (c *curlFile) String() string {
	return "curl file " + c.path
}

func (c *curlFile) Cookies(_ context.Context, _ string) ([]*http.Cookie, error) {
	content, err := os.ReadFile(c.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read curl file")
	}

	return parseCurlCommand(string(content))
}

// parseCurlCommand extracts the cookie header from a curl command, -b takes precedence over -H.
func parseCurlCommand(curlCmd string) ([]*http.Cookie, error) {
	curlCmd = strings.ReplaceAll(curlCmd, "\\\n", " ")

	var raw string
	for _, pattern := range []*regexp.Regexp{curlCookieFlagPattern, curlCookieHeaderPattern} {
		if m := pattern.FindStringSubmatch(curlCmd); len(m) > 2 {
			raw = m[1]
			if raw == "" {
				raw = m[2]
			}
			break
		}
	}

	if raw == "" {
		return nil, errors.Wrap(domain.ErrNoCookies, "no cookie found in curl command")
	}

	return parseHeader(raw)
}
