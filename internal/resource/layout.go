package resource

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/tsukumogami/pvlocate/internal/platform"
)

//go:embed layout.toml
var defaultLayoutTOML []byte

// machinePlaceholder is expanded to the identity's machine variant.
const machinePlaceholder = "{machine}"

var allClasses = []platform.Class{
	platform.ClassMac,
	platform.ClassLinux,
	platform.ClassRaspberryPi,
	platform.ClassBeagleBone,
	platform.ClassWindows,
}

// Layout is the table mapping platforms to paths inside an install tree.
// All paths are relative to the install root and use forward slashes.
type Layout struct {
	// Subdirs maps a platform class to the per-platform directory name used
	// under each named resource collection.
	Subdirs map[string]string `toml:"subdirs"`

	// Libraries maps engine -> platform class -> library path template.
	Libraries map[string]map[string]string `toml:"libraries"`

	// Models maps engine -> model file path. Models are platform independent.
	Models map[string]string `toml:"models"`

	// Named maps a collection to where its per-platform directories live.
	Named map[string]NamedLayout `toml:"named"`
}

// NamedLayout locates one named resource collection.
type NamedLayout struct {
	Base    string `toml:"base"`
	Exclude string `toml:"exclude"` // entries containing this substring are skipped
}

var defaultLayout = sync.OnceValues(func() (*Layout, error) {
	return ParseLayout(defaultLayoutTOML)
})

// DefaultLayout returns the built-in layout of the engines' install tree.
func DefaultLayout() *Layout {
	l, err := defaultLayout()
	if err != nil {
		panic(fmt.Sprintf("built-in layout is invalid: %v", err))
	}
	return l
}

// LoadLayout reads a layout override from a TOML file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes and validates a TOML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown layout keys: %v", undecoded)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) validate() error {
	var paths []string

	for _, engine := range Engines {
		libs, ok := l.Libraries[string(engine)]
		if !ok {
			return fmt.Errorf("invalid layout: no libraries for engine %q", engine)
		}
		for _, class := range allClasses {
			p, ok := libs[string(class)]
			if !ok {
				return fmt.Errorf("invalid layout: engine %q has no library for %q", engine, class)
			}
			paths = append(paths, p)
		}
		model, ok := l.Models[string(engine)]
		if !ok {
			return fmt.Errorf("invalid layout: no model for engine %q", engine)
		}
		paths = append(paths, model)
	}

	for _, class := range allClasses {
		if l.Subdirs[string(class)] == "" {
			return fmt.Errorf("invalid layout: no subdirectory for %q", class)
		}
	}

	for _, c := range Collections {
		named, ok := l.Named[string(c)]
		if !ok || named.Base == "" {
			return fmt.Errorf("invalid layout: no base directory for %q", c)
		}
		paths = append(paths, named.Base)
	}

	for _, p := range paths {
		if err := checkRelative(p); err != nil {
			return err
		}
	}
	return nil
}

// checkRelative rejects empty, absolute and root-escaping paths.
func checkRelative(p string) error {
	if p == "" {
		return fmt.Errorf("invalid layout: empty path")
	}
	clean := filepath.Clean(filepath.FromSlash(p))
	if filepath.IsAbs(clean) || strings.HasPrefix(p, "/") {
		return fmt.Errorf("invalid layout: path %q must be relative", p)
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("invalid layout: path %q escapes the install root", p)
	}
	return nil
}

// LibraryPath returns the library path for engine on id, relative to the
// install root. Returns platform.UnsupportedPlatformError if id has no build.
func (l *Layout) LibraryPath(engine Engine, id platform.Identity) (string, error) {
	class, err := id.Class()
	if err != nil {
		return "", err
	}
	libs, ok := l.Libraries[string(engine)]
	if !ok {
		return "", fmt.Errorf("unknown engine %q", engine)
	}
	tmpl, ok := libs[string(class)]
	if !ok {
		return "", &platform.UnsupportedPlatformError{OS: string(id.OS()), Machine: id.Machine()}
	}
	return filepath.FromSlash(strings.ReplaceAll(tmpl, machinePlaceholder, id.Machine())), nil
}

// ModelPath returns the model file path for engine, relative to the install root.
func (l *Layout) ModelPath(engine Engine) (string, error) {
	p, ok := l.Models[string(engine)]
	if !ok {
		return "", fmt.Errorf("unknown engine %q", engine)
	}
	return filepath.FromSlash(p), nil
}

// Subdir returns the per-platform directory name for id, e.g. "raspberrypi".
func (l *Layout) Subdir(id platform.Identity) (string, error) {
	class, err := id.Class()
	if err != nil {
		return "", err
	}
	return l.Subdirs[string(class)], nil
}

// NamedDir returns the directory holding collection c's files for id,
// relative to the install root.
func (l *Layout) NamedDir(c Collection, id platform.Identity) (string, error) {
	named, ok := l.Named[string(c)]
	if !ok {
		return "", fmt.Errorf("unknown resource collection %q", c)
	}
	sub, err := l.Subdir(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.FromSlash(named.Base), sub), nil
}

// Exclude returns the substring that hides entries of collection c.
func (l *Layout) Exclude(c Collection) string {
	return l.Named[string(c)].Exclude
}
