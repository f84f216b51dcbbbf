package buildinfo

// set via ldflags: -X lpixmove/internal/buildinfo.Version=...
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)
