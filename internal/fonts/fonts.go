// Package fonts locates the optional overlay font on disk.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the font file extensions raylib can load.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSuffix(s, filepath.Ext(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Find searches dirs for a font file whose relative path contains search (fuzzy).
// When several match, a "Regular" face wins. Returns the full path.
func Find(search string, dirs ...string) (string, error) {
	norm := normalize(search)
	if norm == "" {
		return "", os.ErrNotExist
	}
	var found []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), norm) {
				found = append(found, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(found) == 0 {
		return "", os.ErrNotExist
	}
	for _, f := range found {
		if strings.Contains(strings.ToLower(f), "regular") {
			return f, nil
		}
	}
	return found[0], nil
}

// Resolve turns a configured font setting into a loadable path: an existing file is used as-is,
// anything else is treated as a family name and looked up under BaseDirs.
func Resolve(pathOrName string) (string, error) {
	pathOrName = strings.TrimSpace(pathOrName)
	if pathOrName == "" {
		return "", os.ErrNotExist
	}
	if st, err := os.Stat(pathOrName); err == nil && !st.IsDir() {
		return pathOrName, nil
	}
	return Find(pathOrName, BaseDirs()...)
}
