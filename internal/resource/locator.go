package resource

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tsukumogami/pvlocate/internal/log"
	"github.com/tsukumogami/pvlocate/internal/platform"
)

// Default names selected from the named resource collections.
const (
	DefaultContext = "coffee"
	DefaultKeyword = "hey pico"
)

// Paths holds every file the engines need, as absolute paths.
type Paths struct {
	RhinoLibrary     string `json:"rhino_library" toml:"rhino_library" yaml:"rhino_library"`
	PorcupineLibrary string `json:"porcupine_library" toml:"porcupine_library" yaml:"porcupine_library"`
	RhinoModel       string `json:"rhino_model" toml:"rhino_model" yaml:"rhino_model"`
	PorcupineModel   string `json:"porcupine_model" toml:"porcupine_model" yaml:"porcupine_model"`
	ContextFile      string `json:"context_file" toml:"context_file" yaml:"context_file"`
	KeywordFile      string `json:"keyword_file" toml:"keyword_file" yaml:"keyword_file"`
}

// Entry is one labeled path from Paths.
type Entry struct {
	Name string
	Path string
}

// Entries returns the paths in display order.
func (p *Paths) Entries() []Entry {
	return []Entry{
		{"rhino_library", p.RhinoLibrary},
		{"porcupine_library", p.PorcupineLibrary},
		{"rhino_model", p.RhinoModel},
		{"porcupine_model", p.PorcupineModel},
		{"context_file", p.ContextFile},
		{"keyword_file", p.KeywordFile},
	}
}

// Selection picks one file from each named resource collection.
type Selection struct {
	Context string
	Keyword string
}

// DefaultSelection returns the stock context and keyword.
func DefaultSelection() Selection {
	return Selection{Context: DefaultContext, Keyword: DefaultKeyword}
}

// Locator resolves engine files for one platform inside one install tree.
// It is immutable after construction and safe for concurrent use.
type Locator struct {
	root   string
	id     platform.Identity
	layout *Layout
	logger log.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithLayout replaces the built-in layout.
func WithLayout(layout *Layout) Option {
	return func(l *Locator) {
		l.layout = layout
	}
}

// WithLogger sets a logger for resolution diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// NewLocator creates a Locator for the install tree at root.
func NewLocator(root string, id platform.Identity, opts ...Option) (*Locator, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve install root: %w", err)
	}

	l := &Locator{
		root:   absRoot,
		id:     id,
		layout: DefaultLayout(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = log.Component(l.logger, "resource").With("platform", id.String())
	return l, nil
}

// Root returns the absolute install root.
func (l *Locator) Root() string {
	return l.root
}

// Identity returns the platform the locator resolves for.
func (l *Locator) Identity() platform.Identity {
	return l.id
}

// LibraryPath returns the absolute path of engine's native library.
// Returns platform.UnsupportedPlatformError for platforms without a build.
func (l *Locator) LibraryPath(engine Engine) (string, error) {
	rel, err := l.layout.LibraryPath(engine, l.id)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.root, rel), nil
}

// ModelPath returns the absolute path of engine's model file.
func (l *Locator) ModelPath(engine Engine) (string, error) {
	rel, err := l.layout.ModelPath(engine)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.root, rel), nil
}

// NamedResourceDir returns the absolute directory holding collection c's
// files for this platform.
func (l *Locator) NamedResourceDir(c Collection) (string, error) {
	rel, err := l.layout.NamedDir(c, l.id)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.root, rel), nil
}

// NamedResources scans collection c and maps short names to absolute paths.
func (l *Locator) NamedResources(c Collection) (map[string]string, error) {
	dir, err := l.NamedResourceDir(c)
	if err != nil {
		return nil, err
	}
	return scanNamedResources(dir, l.layout.Exclude(c), l.logger)
}

// NamedResource returns the path of the file called name in collection c.
func (l *Locator) NamedResource(c Collection, name string) (string, error) {
	resources, err := l.NamedResources(c)
	if err != nil {
		return "", err
	}

	path, err := LookupFixedResource(resources, name)
	if err != nil {
		var missing *MissingResourceError
		if errors.As(err, &missing) {
			missing.Collection = c
			missing.Dir, _ = l.NamedResourceDir(c)
		}
		return "", err
	}
	return path, nil
}

// Resolve computes every engine path, stopping at the first failure.
func (l *Locator) Resolve(sel Selection) (*Paths, error) {
	var p Paths
	var err error

	if p.RhinoLibrary, err = l.LibraryPath(Speech); err != nil {
		return nil, err
	}
	if p.PorcupineLibrary, err = l.LibraryPath(WakeWord); err != nil {
		return nil, err
	}
	if p.RhinoModel, err = l.ModelPath(Speech); err != nil {
		return nil, err
	}
	if p.PorcupineModel, err = l.ModelPath(WakeWord); err != nil {
		return nil, err
	}
	if p.ContextFile, err = l.NamedResource(Contexts, sel.Context); err != nil {
		return nil, err
	}
	if p.KeywordFile, err = l.NamedResource(Keywords, sel.Keyword); err != nil {
		return nil, err
	}

	l.logger.Info("resolved engine paths", "root", l.root, "context", sel.Context, "keyword", sel.Keyword)
	return &p, nil
}

// ResolveNamedResourceDirectory returns the per-platform directory name that
// collection c uses for id in the built-in layout, e.g. "raspberrypi".
func ResolveNamedResourceDirectory(c Collection, id platform.Identity) (string, error) {
	layout := DefaultLayout()
	if _, ok := layout.Named[string(c)]; !ok {
		return "", fmt.Errorf("unknown resource collection %q", c)
	}
	return layout.Subdir(id)
}
