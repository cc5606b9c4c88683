// Package skin resolves widget templates by name. Widgets refer to skins
// as "#tpl_<name>"; the default set ships embedded and a directory of
// *.html files may override or extend it.
package skin

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed defaults/*.html
var defaults embed.FS

// ErrMissingTemplate is returned when a skin name cannot be resolved.
var ErrMissingTemplate = errors.New("please specify template")

// Registry maps skin names to parsed templates.
type Registry struct {
	mu    sync.RWMutex
	skins map[string]*template.Template
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{skins: make(map[string]*template.Template)}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns a registry preloaded with the embedded skins. Callers get
// a private copy so overrides never leak between hosts.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
		defaultErr = defaultReg.LoadFS(defaults, "defaults")
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("skin: embedded defaults: %v", defaultErr))
	}
	return defaultReg.Clone()
}

// Clone copies the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := New()
	for k, v := range r.skins {
		out.skins[k] = v
	}
	return out
}

// Name normalises a file or skin name to the "#tpl_x" form.
func Name(s string) string {
	s = strings.TrimSuffix(path.Base(s), path.Ext(s))
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// Add parses src and registers it under name.
func (r *Registry) Add(name, src string) error {
	name = Name(name)
	t, err := template.New(name).Option("missingkey=zero").Parse(src)
	if err != nil {
		return fmt.Errorf("parse skin %s: %w", name, err)
	}
	r.mu.Lock()
	r.skins[name] = t
	r.mu.Unlock()
	return nil
}

// LoadFS registers every *.html file found in dir of fsys.
func (r *Registry) LoadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".html" {
			continue
		}
		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		if err := r.Add(e.Name(), string(b)); err != nil {
			return err
		}
	}
	return nil
}

// LoadDir registers every *.html file in a directory on disk.
func (r *Registry) LoadDir(dir string) error {
	return r.LoadFS(os.DirFS(dir), ".")
}

// Lookup returns the template registered as name.
func (r *Registry) Lookup(name string) (*template.Template, error) {
	if name == "" {
		return nil, ErrMissingTemplate
	}
	r.mu.RLock()
	t, ok := r.skins[Name(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, name)
	}
	return t, nil
}

// Names lists the registered skins in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.skins))
	for k := range r.skins {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Execute renders the named skin with data.
func (r *Registry) Execute(name string, data any) (string, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}
