package domain

type Config struct {
	Version        string
	ConfigPath     string
	SiteURL        string `yaml:"siteURL"`
	CookieSource   string `yaml:"cookieSource"`
	CookieFile     string `yaml:"cookieFile"`
	CookieHeader   string `yaml:"cookieHeader"`
	UserAgent      string `yaml:"userAgent"`
	RequestTimeout int    `yaml:"requestTimeout"` // in seconds
	FetchAttempts  int    `yaml:"fetchAttempts"`
	LogPath        string `yaml:"logPath"`
	LogLevel       string `yaml:"logLevel"`
	LogMaxSize     int    `yaml:"logMaxSize"` // in megabytes
	LogMaxBackups  int    `yaml:"logMaxBackups"`
}
