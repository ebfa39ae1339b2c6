// Package config resolves the effective runtime settings from command-line
// overrides, the environment, and the persisted config file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// Environment variables read by Resolve.
const (
	EnvRoot    = "CARTOGRAPHER_ROOT"
	EnvBackend = "CARTOGRAPHER_BACKEND"
	EnvVerbose = "CARTOGRAPHER_VERBOSE"
)

// Overrides holds values given explicitly on the command line. Empty
// strings and a nil Verbose mean "not set".
type Overrides struct {
	Root    string
	Backend string
	Verbose *bool
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// LoadEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are ignored; variables already
// set are not overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Resolve layers overrides and environment over the stored settings.
// stored already has defaults applied for missing keys.
func Resolve(stored domain.Settings, lookup LookupFunc, o Overrides) (domain.Settings, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	s := stored

	if v := getEnv(lookup, EnvRoot); v != "" {
		s.Root = v
	}
	if v := getEnv(lookup, EnvBackend); v != "" {
		s.Backend = domain.Backend(strings.ToLower(v))
	}
	if v := getEnv(lookup, EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("%s=%q: %w", EnvVerbose, v, domain.ErrInvalidInput)
		}
		s.Verbose = b
	}

	if o.Root != "" {
		s.Root = o.Root
	}
	if o.Backend != "" {
		s.Backend = domain.Backend(strings.ToLower(o.Backend))
	}
	if o.Verbose != nil {
		s.Verbose = *o.Verbose
	}

	if strings.TrimSpace(s.Root) == "" {
		s.Root = domain.DefaultRoot
	}
	if !s.Backend.IsValid() {
		return domain.Settings{}, fmt.Errorf("backend %q: %w", s.Backend, domain.ErrUnsupportedBackend)
	}
	return s, nil
}

func getEnv(lookup LookupFunc, key string) string {
	v, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
