// ABOUTME: Localized affordance strings keyed by component name
// ABOUTME: BCP 47 best-match resolution via x/text; bundles loadable from YAML

package locale

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Bundle holds the display strings one component needs.
// Empty fields fall back to the English builtin at resolution time.
type Bundle struct {
	Edit        string `yaml:"edit"`
	Copy        string `yaml:"copy"`
	CopySuccess string `yaml:"copy_success"`
}

// builtins are the compiled-in catalogs, keyed by language tag and then by
// component name.
var builtins = map[language.Tag]map[string]Bundle{
	language.English: {
		"text": {Edit: "Edit", Copy: "Copy", CopySuccess: "Copied"},
	},
	language.Italian: {
		"text": {Edit: "Modifica", Copy: "Copia", CopySuccess: "Copiato"},
	},
}

// Resolver matches a preferred language against registered catalogs and
// serves per-component string bundles.
type Resolver struct {
	mu       sync.RWMutex
	catalogs map[language.Tag]map[string]Bundle
	tags     []language.Tag
	matcher  language.Matcher
	current  language.Tag
}

// NewResolver creates a Resolver preloaded with the builtin catalogs,
// resolving to English.
func NewResolver() *Resolver {
	r := &Resolver{catalogs: map[language.Tag]map[string]Bundle{}}
	// English registers first: the matcher falls back to the first tag when
	// nothing matches.
	for name, b := range builtins[language.English] {
		r.register(language.English, name, b)
	}
	for tag, components := range builtins {
		if tag == language.English {
			continue
		}
		for name, b := range components {
			r.register(tag, name, b)
		}
	}
	r.current = language.English
	return r
}

// Default is the package-level resolver used when a component is not given
// an explicit bundle.
var Default = NewResolver()

// Register adds or replaces the bundle for a component under a language tag.
func (r *Resolver) Register(tag language.Tag, component string, b Bundle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(tag, component, b)
}

func (r *Resolver) register(tag language.Tag, component string, b Bundle) {
	if r.catalogs[tag] == nil {
		r.catalogs[tag] = map[string]Bundle{}
		r.tags = append(r.tags, tag)
		r.matcher = nil // rebuild lazily
	}
	r.catalogs[tag][component] = b
}

// yamlCatalog is the bundle file format: one language, many components.
type yamlCatalog struct {
	Lang       string            `yaml:"lang"`
	Components map[string]Bundle `yaml:"components"`
}

// LoadFile reads a YAML catalog file and registers its bundles.
func (r *Resolver) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading locale file: %w", err)
	}

	var cat yamlCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return fmt.Errorf("parsing locale file: %w", err)
	}
	tag, err := language.Parse(cat.Lang)
	if err != nil {
		return fmt.Errorf("invalid language tag %q: %w", cat.Lang, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for name, b := range cat.Components {
		r.register(tag, name, b)
	}
	return nil
}

// SetLanguage selects the active language from a preference string such as
// "it" or "pt-BR, en;q=0.8". The best match among registered catalogs wins;
// an unparseable preference keeps the current language.
func (r *Resolver) SetLanguage(pref string) {
	prefs, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(prefs) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.matcher == nil {
		r.matcher = language.NewMatcher(r.tags)
	}
	_, idx, _ := r.matcher.Match(prefs...)
	r.current = r.tags[idx]
}

// Strings returns the bundle for a component in the active language.
// Missing bundles and empty fields fall back to the English builtin.
func (r *Resolver) Strings(component string) Bundle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := builtins[language.English][component]
	if cat, ok := r.catalogs[r.current]; ok {
		if b, ok := cat[component]; ok {
			if b.Edit != "" {
				out.Edit = b.Edit
			}
			if b.Copy != "" {
				out.Copy = b.Copy
			}
			if b.CopySuccess != "" {
				out.CopySuccess = b.CopySuccess
			}
		}
	}
	return out
}
