package parse

import (
	"testing"

	"lpixmove/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantID   string
		wantBase string
	}{
		{
			name:     "user gallery",
			url:      "https://lpix.org/gallery/User+Name/12345",
			wantID:   "12345",
			wantBase: "https://lpix.org/gallery/User+Name/",
		},
		{
			name:     "numeric user name equal to id",
			url:      "https://lpix.org/gallery/12345/12345",
			wantID:   "12345",
			wantBase: "https://lpix.org/gallery/12345/",
		},
		{
			name:     "numeric user name different from id",
			url:      "https://lpix.org/gallery/777/98765",
			wantID:   "98765",
			wantBase: "https://lpix.org/gallery/777/",
		},
		{
			name:     "prefix with digits",
			url:      "https://lpix.org/gallery/User2024/42",
			wantID:   "42",
			wantBase: "https://lpix.org/gallery/User2024/",
		},
		{
			name:     "id is a suffix of the user name",
			url:      "https://lpix.org/gallery/99/9",
			wantID:   "9",
			wantBase: "https://lpix.org/gallery/99/",
		},
		{
			name:     "port is not taken for an id",
			url:      "http://127.0.0.1:8080/gallery/User/31337",
			wantID:   "31337",
			wantBase: "http://127.0.0.1:8080/gallery/User/",
		},
		{
			name:     "query repeating the id",
			url:      "https://lpix.org/gallery/User+Name/12345?ref=12345",
			wantID:   "12345",
			wantBase: "https://lpix.org/gallery/User+Name/",
		},
		{
			name:     "fragment",
			url:      "https://lpix.org/gallery/User+Name/12345#top",
			wantID:   "12345",
			wantBase: "https://lpix.org/gallery/User+Name/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, base, err := GalleryURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantBase, base)
		})
	}
}

func TestGalleryURL_NoID(t *testing.T) {
	for _, u := range []string{
		"https://lpix.org/gallery/User+Name/",
		"https://lpix.org/gallery/User+Name",
		"http://127.0.0.1:8080/gallery/User+Name/",
		"",
	} {
		_, _, err := GalleryURL(u)
		assert.ErrorIs(t, err, domain.ErrInvalidURL, u)
	}
}
