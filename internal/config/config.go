package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"lpixmove/internal/domain"
	"lpixmove/internal/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "LPIXMOVE__"

var configTemplate = `# config.yaml

# Site URL
# Base URL of the image host, the move endpoint is resolved against it
#
# Default: "https://lpix.org"
#
siteURL: "https://lpix.org"

# Cookie Source
# Where the session cookies of your logged in account are read from
#
# Default: "browser"
#
# Options: "browser", "curl", "header"
#
#   browser: read the cookie stores of your locally installed browsers
#   curl:    read a "Copy as cURL" command saved to cookieFile
#   header:  use the raw cookie header from cookieHeader
#
cookieSource: "browser"

# Cookie File
# Path to a file containing a "Copy as cURL" command of any request to the site
# Only used with cookieSource "curl"
#
#cookieFile: ""

# Cookie Header
# Raw cookie header, e.g. "PHPSESSID=abc; user=xyz"
# Only used with cookieSource "header"
#
#cookieHeader: ""

# User Agent
# If not defined, "lpixmove/<version>" is sent with every request
#
#userAgent: ""

# Request timeout in seconds
# 0 disables the timeout
#
# Default: 120
#
requestTimeout: 120

# Fetch attempts
# How often a gallery page is requested before giving up. Moves are never retried.
#
# Default: 3
#
fetchAttempts: 3

# lpixmove logs file
# If not defined, logs to stderr
# Make sure to use forward slashes and include the filename with extension. e.g. "logs/lpixmove.log"
#
# Optional
#
#logPath: ""

# Log level
#
# Default: "INFO"
#
# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"
#
logLevel: "INFO"

# Log Max Size
#
# Default: 50
#
# Max log size in megabytes
#
#logMaxSize: 50

# Log Max Backups
#
# Default: 3
#
# Max amount of old log files
#
#logMaxBackups: 3
`

func (c *AppConfig) writeConfig(configPath string, configFile string) error {
	cfgPath := filepath.Join(configPath, configFile)

	// check if configPath exists, if not create it
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(configPath, os.ModePerm); err != nil {
			return errors.Wrapf(err, "could not create config dir %s", configPath)
		}
	}

	// check if config exists, if not create it
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		f, err := os.Create(cfgPath)
		if err != nil {
			return errors.Wrapf(err, "could not create config file %s", cfgPath)
		}
		defer f.Close()

		if _, err = f.WriteString(configTemplate); err != nil {
			return errors.Wrapf(err, "could not write config file %s", cfgPath)
		}

		return f.Sync()
	}

	return nil
}

type Config interface {
	Validate() error
	DynamicReload(log logger.Logger)
}

type AppConfig struct {
	Config *domain.Config
	v      *viper.Viper
	m      *sync.Mutex
}

func New(configPath string, version string) *AppConfig {
	c := &AppConfig{
		v: viper.New(),
		m: new(sync.Mutex),
	}
	c.defaults()
	c.Config = &domain.Config{
		Version:    version,
		ConfigPath: configPath,
	}

	c.load(configPath)
	c.loadFromEnv()

	return c
}

func (c *AppConfig) defaults() {
	c.v.SetDefault("siteURL", "https://lpix.org")
	c.v.SetDefault("cookieSource", "browser")
	c.v.SetDefault("cookieFile", "")
	c.v.SetDefault("cookieHeader", "")
	c.v.SetDefault("userAgent", "")
	c.v.SetDefault("requestTimeout", 120)
	c.v.SetDefault("fetchAttempts", 3)
	c.v.SetDefault("logPath", "")
	c.v.SetDefault("logLevel", "INFO")
	c.v.SetDefault("logMaxSize", 50)
	c.v.SetDefault("logMaxBackups", 3)
}

func (c *AppConfig) loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}

		envPair := strings.SplitN(env, "=", 2)
		if len(envPair) != 2 || envPair[1] == "" {
			continue
		}

		switch envPair[0] {
		case envPrefix + "SITE_URL":
			c.Config.SiteURL = envPair[1]
		case envPrefix + "COOKIE_SOURCE":
			c.Config.CookieSource = envPair[1]
		case envPrefix + "COOKIE_FILE":
			c.Config.CookieFile = envPair[1]
		case envPrefix + "COOKIE_HEADER":
			c.Config.CookieHeader = envPair[1]
		case envPrefix + "USER_AGENT":
			c.Config.UserAgent = envPair[1]
		case envPrefix + "REQUEST_TIMEOUT":
			if i, err := strconv.ParseInt(envPair[1], 10, 32); err == nil && i >= 0 {
				c.Config.RequestTimeout = int(i)
			}
		case envPrefix + "FETCH_ATTEMPTS":
			if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
				c.Config.FetchAttempts = int(i)
			}
		case envPrefix + "LOG_LEVEL":
			c.Config.LogLevel = envPair[1]
		case envPrefix + "LOG_PATH":
			c.Config.LogPath = envPair[1]
		case envPrefix + "LOG_MAX_SIZE":
			if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
				c.Config.LogMaxSize = int(i)
			}
		case envPrefix + "LOG_MAX_BACKUPS":
			if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
				c.Config.LogMaxBackups = int(i)
			}
		}
	}
}

func (c *AppConfig) load(configPath string) {
	c.v.SetConfigType("yaml")

	if configPath != "" {
		// clean trailing slash from configPath
		configPath = path.Clean(configPath)

		// check if path and file exists
		// if not, create path and file
		if err := c.writeConfig(configPath, "config.yaml"); err != nil {
			log.Printf("write error: %q", err)
		}

		c.v.SetConfigFile(path.Join(configPath, "config.yaml"))
	} else {
		c.v.SetConfigName("config")

		// Search config in directories
		c.v.AddConfigPath(".")
		c.v.AddConfigPath("$HOME/.config/lpixmove")
		c.v.AddConfigPath("$HOME/.lpixmove")
	}

	// a missing config file is fine, defaults apply
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("config read error: %q", err)
		}
	}

	if err := c.v.Unmarshal(c.Config); err != nil {
		log.Fatalf("Could not unmarshal config file: %v: err %q", c.v.ConfigFileUsed(), err)
	}
}

// Validate checks the settings a move run depends on.
func (c *AppConfig) Validate() error {
	u, err := url.Parse(c.Config.SiteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("siteURL must be an absolute url, got %q", c.Config.SiteURL)
	}

	switch c.Config.CookieSource {
	case "browser":
	case "curl":
		if c.Config.CookieFile == "" {
			return fmt.Errorf("cookieFile is required for cookieSource %q", c.Config.CookieSource)
		}
	case "header":
		if c.Config.CookieHeader == "" {
			return fmt.Errorf("cookieHeader is required for cookieSource %q", c.Config.CookieSource)
		}
	default:
		return fmt.Errorf("unknown cookieSource %q, must be one of browser, curl, header", c.Config.CookieSource)
	}

	if c.Config.RequestTimeout < 0 {
		return fmt.Errorf("requestTimeout can't be negative, got %d", c.Config.RequestTimeout)
	}

	if c.Config.FetchAttempts < 1 {
		c.Config.FetchAttempts = 1
	}

	return nil
}

// DynamicReload applies log level changes made to the config file while a run is in progress.
func (c *AppConfig) DynamicReload(log logger.Logger) {
	if c.v.ConfigFileUsed() == "" {
		return
	}

	c.v.WatchConfig()

	c.v.OnConfigChange(func(_ fsnotify.Event) {
		c.m.Lock()
		defer c.m.Unlock()

		logLevel := c.v.GetString("logLevel")
		c.Config.LogLevel = logLevel
		log.SetLogLevel(c.Config.LogLevel)

		log.Debug().Msg("config file reloaded!")
	})
}
