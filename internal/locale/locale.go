// Package locale holds per-language default strings for widgets and the
// registry that resolves a language name to a bundle.
//
// A bundle maps a component name (e.g. "Popconfirm") to a set of string keys.
// Components resolve their strings by merging their built-in defaults with
// the active bundle's entries, so a bundle only needs to carry what it
// changes.
package locale

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/sahilm/fuzzy"
)

// ComponentPopconfirm names the Popconfirm strings inside a bundle.
const ComponentPopconfirm = "Popconfirm"

// String keys used by the Popconfirm component.
const (
	KeyOKText     = "okText"
	KeyCancelText = "cancelText"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en_US"

// ErrUnknownLocale is returned by Lookup for names with no registered bundle.
var ErrUnknownLocale = errors.New("unknown locale")

// Bundle is a named set of default user-facing strings.
type Bundle struct {
	// Locale is the normalized language tag, e.g. "en_US"
	Locale string `toml:"locale"`

	// Components maps component name to key/value strings
	Components map[string]map[string]string `toml:"components"`
}

// Component returns the strings for a component, or nil.
func (b *Bundle) Component(name string) map[string]string {
	if b == nil || b.Components == nil {
		return nil
	}
	return b.Components[name]
}

// Resolve merges fallback with the bundle's strings for component. Bundle
// entries win; empty bundle values do not override.
func Resolve(b *Bundle, component string, fallback map[string]string) map[string]string {
	out := make(map[string]string, len(fallback))
	for k, v := range fallback {
		out[k] = v
	}
	for k, v := range b.Component(component) {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// PopconfirmLocale is the resolved string set consumed by the popconfirm
// overlay renderer.
type PopconfirmLocale struct {
	OKText     string
	CancelText string
}

// Popconfirm resolves the popconfirm strings from b, falling back to the
// built-in default bundle. A nil bundle yields the defaults.
func Popconfirm(b *Bundle) PopconfirmLocale {
	m := Resolve(b, ComponentPopconfirm, Default().Component(ComponentPopconfirm))
	return PopconfirmLocale{
		OKText:     m[KeyOKText],
		CancelText: m[KeyCancelText],
	}
}

// Normalize canonicalizes a language tag: "en-us" and "EN_us" become "en_US",
// "de" stays "de".
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) == 0 {
		return ""
	}
	parts[0] = strings.ToLower(parts[0])
	if len(parts) > 1 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "_")
}

// LoadFile decodes a TOML bundle. When the file does not set `locale`, the
// file name without extension is used.
func LoadFile(path string) (*Bundle, error) {
	var b Bundle
	if _, err := toml.DecodeFile(path, &b); err != nil {
		return nil, fmt.Errorf("decode locale bundle %s: %w", path, err)
	}
	if b.Locale == "" {
		b.Locale = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	b.Locale = Normalize(b.Locale)
	if b.Components == nil {
		b.Components = make(map[string]map[string]string)
	}
	return &b, nil
}

// Registry maps normalized locale names to bundles. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	bundles map[string]*Bundle
}

// NewRegistry returns a registry seeded with the built-in bundles.
func NewRegistry() *Registry {
	r := &Registry{bundles: make(map[string]*Bundle)}
	for _, b := range builtin() {
		r.bundles[b.Locale] = b
	}
	return r
}

// Register adds or replaces a bundle. A bundle for a known locale is merged
// over the existing one so partial bundles keep the other components.
func (r *Registry) Register(b *Bundle) {
	if b == nil {
		return
	}
	name := Normalize(b.Locale)
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.bundles[name]
	if !ok {
		r.bundles[name] = &Bundle{Locale: name, Components: cloneComponents(b.Components)}
		return
	}
	merged := &Bundle{Locale: name, Components: cloneComponents(existing.Components)}
	for comp, strs := range b.Components {
		merged.Components[comp] = Resolve(merged, comp, nil)
		for k, v := range strs {
			if v != "" {
				merged.Components[comp][k] = v
			}
		}
	}
	r.bundles[name] = merged
}

// Lookup returns the bundle for name. A bare language ("de") matches the
// first registered region for that language ("de_DE").
func (r *Registry) Lookup(name string) (*Bundle, error) {
	norm := Normalize(name)
	if norm == "" {
		norm = DefaultLocale
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if b, ok := r.bundles[norm]; ok {
		return b, nil
	}
	if !strings.Contains(norm, "_") {
		for _, n := range r.namesLocked() {
			if strings.HasPrefix(n, norm+"_") {
				return r.bundles[n], nil
			}
		}
	}

	if suggestion := r.suggestLocked(norm); suggestion != "" {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownLocale, name, suggestion)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownLocale, name)
}

// Names returns the registered locale names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.bundles))
	for n := range r.bundles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) suggestLocked(name string) string {
	lang, _, _ := strings.Cut(name, "_")
	matches := fuzzy.Find(strings.ToLower(lang), lowerAll(r.namesLocked()))
	if len(matches) == 0 {
		return ""
	}
	return r.namesLocked()[matches[0].Index]
}

// LoadDir registers every *.toml bundle in dir. A missing directory is not an
// error. Returns the number of bundles loaded; the first decode error is
// returned after all files have been tried.
func (r *Registry) LoadDir(dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read locale dir %s: %w", dir, err)
	}

	var firstErr error
	loaded := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		b, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		r.Register(b)
		loaded++
	}
	return loaded, firstErr
}

func cloneComponents(in map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(in))
	for comp, strs := range in {
		m := make(map[string]string, len(strs))
		for k, v := range strs {
			m[k] = v
		}
		out[comp] = m
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
