// Released under an MIT license. See LICENSE.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/michaelmacinnis/adapted"
)

// expand replaces each pattern in patterns with the files that match it.
// Arguments without pattern characters are passed through unchanged.
func expand(patterns []string) ([]string, error) {
	paths := []string{}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[") {
			paths = append(paths, pattern)

			continue
		}

		dir, base := filepath.Split(pattern)

		entries, err := os.ReadDir(orDot(dir))
		if err != nil {
			return nil, err
		}

		n := len(paths)

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || (strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".")) {
				continue
			}

			ok, err := adapted.Match(base, name)
			if err != nil {
				return nil, err
			}

			if ok {
				paths = append(paths, dir+name)
			}
		}

		if len(paths) == n {
			return nil, errors.New("no matches found: " + pattern)
		}
	}

	return paths, nil
}

func orDot(dir string) string {
	if dir == "" {
		return "."
	}

	return dir
}
