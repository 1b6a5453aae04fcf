package resource

import (
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tsukumogami/pvlocate/internal/log"
)

// ShortName returns the logical name of a resource file: everything before
// the first underscore, or the whole name if there is none.
func ShortName(filename string) string {
	name, _, _ := strings.Cut(filename, "_")
	return name
}

// ScanNamedResources maps the short name of every file in dir to its
// absolute path. Entries whose name contains exclude are skipped; an empty
// exclude skips nothing. Subdirectories are ignored.
//
// Entries are visited in filename order. Two files with the same short name
// fail with DuplicateResourceError. A missing or unreadable dir returns the
// filesystem error unchanged.
func ScanNamedResources(dir, exclude string) (map[string]string, error) {
	return scanNamedResources(dir, exclude, log.Default())
}

func scanNamedResources(dir, exclude string, logger log.Logger) (map[string]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, err
	}

	logger = logger.With("dir", absDir)
	res := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if isDir(absDir, entry) {
			logger.Debug("skipping subdirectory", "name", name)
			continue
		}
		if exclude != "" && strings.Contains(name, exclude) {
			logger.Debug("skipping excluded entry", "name", name, "exclude", exclude)
			continue
		}

		key := ShortName(name)
		path := filepath.Join(absDir, name)
		if prev, ok := res[key]; ok {
			return nil, &DuplicateResourceError{Name: key, First: prev, Second: path}
		}
		res[key] = path
	}

	logger.Debug("scanned resources", "count", len(res))
	return res, nil
}

// isDir reports whether entry is a directory, following symlinks.
// A dangling link counts as a file.
func isDir(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

// LookupFixedResource returns the path stored under key.
// Returns MissingResourceError if key is absent; never an empty path.
func LookupFixedResource(resources map[string]string, key string) (string, error) {
	if path, ok := resources[key]; ok && path != "" {
		return path, nil
	}
	return "", &MissingResourceError{Key: key, Available: Names(resources)}
}

// Names returns the keys of resources in sorted order.
func Names(resources map[string]string) []string {
	return slices.Sorted(maps.Keys(resources))
}
