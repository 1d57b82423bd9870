package build

import "time"

// Set with -ldflags "-X github.com/ItsNotGoodName/x-framewm/internal/build.version=...".
var (
	commit  = ""
	date    = ""
	version = "dev"
)

var Current Build

func init() {
	date, _ := time.Parse(time.RFC3339, date)

	Current = Build{
		Commit:  commit,
		Version: version,
		Date:    date,
	}
}

type Build struct {
	Commit  string
	Version string
	Date    time.Time
}

// String is the version line shown by --version.
func (b Build) String() string {
	s := b.Version
	if b.Commit != "" {
		s += " (" + b.Commit + ")"
	}
	if !b.Date.IsZero() {
		s += " " + b.Date.Format(time.DateOnly)
	}
	return s
}
