package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// mergeYAML reads every file matching pattern, each a yaml mapping of string
// pairs, and merges them into target in glob order. A relative pattern is
// resolved against the directory of base, the config file which named it.
func mergeYAML(base, pattern string, target map[string]string,
) (map[string]string, error) {
	if pattern == "" {
		return nil, nil
	} else if !filepath.IsAbs(pattern) && base != "" {
		pattern = filepath.Join(filepath.Dir(base), pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed glob %q: %w", pattern, err)
	} else if matches == nil && !hasMeta(pattern) {
		if _, err := os.Lstat(pattern); err != nil {
			return nil, fmt.Errorf("failed include %q: %w", pattern, err)
		}
	}

	for _, name := range matches {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", name, err)
		}
		var v map[string]string
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("yaml unmarshal %q: %w", name, err)
		}
		if target == nil {
			target = make(map[string]string, len(v))
		}
		maps.Copy(target, v)
	}
	return target, nil
}

// hasMeta reports whether path contains any of the magic characters recognized
// by Match.
//
// Copied from stdlib (path/filepath/match.go)
func hasMeta(path string) bool {
	magicChars := `*?[`
	if runtime.GOOS != "windows" {
		magicChars = `*?[\`
	}
	return strings.ContainsAny(path, magicChars)
}
