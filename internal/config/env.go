package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"strings"
)

// Output formats understood by the CLI
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatBinary = "binary"
)

// Parsing profiles understood by the CLI
const (
	ProfileRFC3339       = "rfc3339"
	ProfileStrictRFC3339 = "strict-rfc3339"
	ProfileISO8601       = "iso8601"
)

const (
	DefaultFormat  = FormatText
	DefaultProfile = ProfileRFC3339
	DefaultLabel   = "pdtparse"
)

var (
	ErrUnknownFormat  = errors.New("unknown output format; must be one of text, json or binary")
	ErrUnknownProfile = errors.New("unknown profile; must be one of rfc3339, strict-rfc3339 or iso8601")
)

type Config struct {
	Format  string
	Profile string
	Strict  bool
	Label   string
	Verbose bool
}

// Load reads configuration from the environment after loading the given .env files, or ./.env when none are given.
// A missing ./.env is not an error; a missing file that was asked for by name is.
//
// Values are not validated, since they may still be overridden; call [Config.Validate] once they are final.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load env file: %w", err)
		}
	}

	cfg := Config{
		Format:  strings.ToLower(getEnv("PDTPARSE_FORMAT", DefaultFormat)),
		Profile: strings.ToLower(getEnv("PDTPARSE_PROFILE", DefaultProfile)),
		Strict:  getBool("PDTPARSE_STRICT"),
		Label:   getEnv("PDTPARSE_LABEL", DefaultLabel),
		Verbose: getBool("PDTPARSE_VERBOSE"),
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatBinary:
	default:
		return fmt.Errorf("%q: %w", c.Format, ErrUnknownFormat)
	}

	switch c.Profile {
	case ProfileRFC3339, ProfileStrictRFC3339, ProfileISO8601:
	default:
		return fmt.Errorf("%q: %w", c.Profile, ErrUnknownProfile)
	}

	return nil
}

func getEnv(k, def string) string {
	v := os.Getenv(k)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// getBool accepts 1/true/yes, case-insensitive
func getBool(k string) bool {
	switch strings.TrimSpace(strings.ToLower(os.Getenv(k))) {
	case "1", "true", "yes":
		return true
	}
	return false
}
