package mailer

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"text/template"
)

// Renderer executes message body templates read from a filesystem.
//
// Templates are plain text/template files: the renderer does not escape
// anything, so callers must hand it values that are already safe for the
// output format (see sanitizer.EscapeHTML).
type Renderer struct {
	fs    fs.FS
	cache map[string]*template.Template
	dir   string
	mu    sync.RWMutex
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
}

// NewRenderer creates a renderer reading templates from the filesystem root.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with a custom template directory.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	return &Renderer{
		fs:    filesystem,
		dir:   cfg.TemplateDir,
		cache: make(map[string]*template.Template),
	}
}

// Render executes the named template with data.
func (r *Renderer) Render(name string, data any) (string, error) {
	tmpl, err := r.template(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	return buf.String(), nil
}

// template returns a parsed template, parsing and caching it on first use.
func (r *Renderer) template(name string) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	tmpl, err = template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	r.cache[name] = tmpl
	return tmpl, nil
}
