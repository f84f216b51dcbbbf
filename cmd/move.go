package cmd

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"lpixmove/internal/buildinfo"
	"lpixmove/internal/config"
	"lpixmove/internal/cookies"
	"lpixmove/internal/domain"
	"lpixmove/internal/logger"
	"lpixmove/internal/sharedhttp"
	"lpixmove/internal/source"
	"lpixmove/internal/workflow"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move all images from one gallery to another",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// read config
		cfg := config.New(configPath, buildinfo.Version)
		applyCookieFlags(cfg.Config, cookieSource, cookieFile)

		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid config")
		}

		// init new logger
		log := logger.New(cfg.Config).WithStr("run", uuid.NewString())

		// init dynamic config
		cfg.DynamicReload(log)

		site, err := newSite(ctx, cfg.Config, log)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		wf := workflow.New(site, workflow.NewTerminalPrompter(cmd.InOrStdin(), out), out, log)

		state, err := wf.Run(ctx, workflow.Options{
			OldGalleryURL:    oldGalleryURL,
			NewGalleryURL:    newGalleryURL,
			SkipConfirmation: skipConfirmation,
			DeleteGallery:    deleteGallery,
			DryRun:           dryRun,
		})

		log.Debug().Str("state", state.String()).Msg("run finished")

		return err
	},
}

// applyCookieFlags lets the command line override the cookie settings of the config.
func applyCookieFlags(cfg *domain.Config, source, file string) {
	if file != "" {
		cfg.CookieFile = file
		if source == "" {
			source = "curl"
		}
	}

	if source != "" {
		cfg.CookieSource = source
	}
}

// newSite loads the session cookies and builds an authenticated lpix client.
func newSite(ctx context.Context, cfg *domain.Config, log logger.Logger) (*source.Lpix, error) {
	u, err := url.Parse(cfg.SiteURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid siteURL %q", cfg.SiteURL)
	}

	cookieSrc, err := cookies.New(cfg)
	if err != nil {
		return nil, err
	}

	sessionCookies, err := cookieSrc.Cookies(ctx, u.Hostname())
	if err != nil {
		return nil, errors.Wrapf(err, "could not load cookies from %s", cookieSrc)
	}

	log.Debug().Str("source", cookieSrc.String()).Int("cookies", len(sessionCookies)).Msg("loaded session cookies")

	jar, err := sharedhttp.NewJar(cfg.SiteURL, sessionCookies)
	if err != nil {
		return nil, err
	}

	return source.NewLpix(cfg, jar, log), nil
}
