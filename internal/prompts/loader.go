// Package prompts loads the externalized LLM prompt templates. Templates are
// JSON files embedded at compile time; each file maps prompt keys to template
// strings with {{.Placeholder}} substitution points.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	mu    sync.RWMutex
	cache = make(map[string]map[string]string)
)

// Get returns the prompt template stored under key in the given embedded
// file (e.g. Get("evaluation.json", "judge-work-alignment")).
func Get(filename, key string) (string, error) {
	templates, err := load(filename)
	if err != nil {
		return "", err
	}
	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return tmpl, nil
}

// MustGet is Get for prompts that must exist; a missing prompt is a packaging
// bug, so it panics.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("prompts: %v", err))
	}
	return tmpl
}

// Format substitutes {{.Key}} placeholders in a template.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func load(filename string) (map[string]string, error) {
	mu.RLock()
	templates, ok := cache[filename]
	mu.RUnlock()
	if ok {
		return templates, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parse prompt file %s: %w", filename, err)
	}

	mu.Lock()
	cache[filename] = templates
	mu.Unlock()
	return templates, nil
}
