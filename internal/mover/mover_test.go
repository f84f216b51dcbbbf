package mover

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"lpixmove/internal/domain"
	"lpixmove/internal/logger"
	"lpixmove/internal/sitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dest = domain.Gallery{ID: "98765", Title: "New"}

func TestExecutor_Move_AllSucceed(t *testing.T) {
	site := sitetest.New()
	var out bytes.Buffer

	res := New(site, &out, logger.Nop()).Move(context.Background(), domain.Gallery{ID: "12345", Images: sitetest.Images(3)}, dest)

	assert.True(t, res.OK())
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 3, res.Moved)
	assert.Empty(t, res.Failures)
	assert.Equal(t, []string{"h1->98765", "h2->98765", "h3->98765"}, site.Moves())

	assert.Contains(t, out.String(), "Moving image https://lpix.test/i/h1.png (1/3)...\nSuccess!\n")
	assert.Contains(t, out.String(), "(3/3)")
}

func TestExecutor_Move_NoImages(t *testing.T) {
	site := sitetest.New()
	var out bytes.Buffer

	res := New(site, &out, logger.Nop()).Move(context.Background(), domain.Gallery{ID: "12345"}, dest)

	assert.True(t, res.OK())
	assert.Zero(t, res.Total)
	assert.Empty(t, site.Moves())
	assert.Empty(t, out.String())
}

func TestExecutor_Move_PartialFailure(t *testing.T) {
	site := sitetest.New()
	site.MoveErr["h2"] = &domain.StatusError{StatusCode: http.StatusInternalServerError, Body: "database error"}
	site.MoveErr["h4"] = errors.New("connection reset by peer")
	var out bytes.Buffer

	res := New(site, &out, logger.Nop()).Move(context.Background(), domain.Gallery{ID: "12345", Images: sitetest.Images(5)}, dest)

	assert.False(t, res.OK())
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 3, res.Moved)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, "h2", res.Failures[0].Image.Hash)
	assert.Equal(t, "h4", res.Failures[1].Image.Hash)

	// every image is attempted despite the failures
	assert.Equal(t, []string{"h1->98765", "h3->98765", "h5->98765"}, site.Moves())

	assert.Contains(t, out.String(), "Something went wrong while moving image https://lpix.test/i/h2.png. Got http status code 500 with message database error.")
	assert.Contains(t, out.String(), "Something went wrong while moving image https://lpix.test/i/h4.png. Got exception connection reset by peer.")
	assert.ErrorIs(t, res.Failures[0], domain.ErrMoveFailed)
}

func TestExecutor_Move_Canceled(t *testing.T) {
	site := sitetest.New()
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := New(site, &out, logger.Nop()).Move(ctx, domain.Gallery{ID: "12345", Images: sitetest.Images(4)}, dest)

	assert.False(t, res.OK())
	assert.Equal(t, 4, res.Skipped)
	assert.Zero(t, res.Moved)
	assert.Empty(t, site.Moves())
}
