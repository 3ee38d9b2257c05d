package www

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

//go:embed templates
var templatesDirEmbed embed.FS

type TemplateManager struct {
	templates *template.Template
	mutex     sync.RWMutex
	logger    *slog.Logger
}

var funcMap = template.FuncMap{
	"PathEscape": url.PathEscape,
}

// NewTemplateManager parses the embedded templates, or the templates under
// extDir when given, which are then reloaded whenever one is written.
func NewTemplateManager(logger *slog.Logger, extDir *string) (*TemplateManager, error) {
	tm := &TemplateManager{
		logger: logger,
	}

	if extDir != nil && *extDir != "" {
		if err := tm.loadExternalTemplates(*extDir); err != nil {
			return nil, err
		}
	} else if err := tm.loadInternalTemplates(); err != nil {
		return nil, err
	}

	return tm, nil
}

func (tm *TemplateManager) loadInternalTemplates() error {
	tm.logger.Debug("loading embedded templates...")
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesDirEmbed, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	tm.templates = tmpl
	return nil
}

func (tm *TemplateManager) loadExternalTemplates(extDir string) error {
	templatesDir := filepath.Join(extDir, "templates")
	reload := func() error {
		tm.logger.Debug("loading external templates...")
		pattern := filepath.Join(templatesDir, "*.html")
		tmpl, err := template.New("").Funcs(funcMap).ParseGlob(pattern)
		if err != nil {
			return fmt.Errorf("failed to parse templates: %w", err)
		}

		tm.mutex.Lock()
		tm.templates = tmpl
		tm.mutex.Unlock()
		return nil
	}

	if err := reload(); err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create template watcher: %w", err)
	}

	if err := watcher.Add(templatesDir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch templates: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if err := reload(); err != nil {
						tm.logger.Error("error reloading templates", slog.Any("error", err))
					} else {
						tm.logger.Debug("templates reloaded", slog.String("file", event.Name))
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				tm.logger.Debug("error watching templates", slog.Any("error", err))
			}
		}
	}()

	return nil
}

func (tm *TemplateManager) Execute(name string, data any) (bytes.Buffer, error) {
	var buf bytes.Buffer

	tm.mutex.RLock()
	err := tm.templates.ExecuteTemplate(&buf, name, data)
	tm.mutex.RUnlock()

	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf, nil
}

func (tm *TemplateManager) ExecuteToWriter(name string, data any, wr io.Writer) error {
	tm.mutex.RLock()
	err := tm.templates.ExecuteTemplate(wr, name, data)
	tm.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return nil
}
