// Package help holds the embedded help topics and renders them for the
// terminal. GET_HELP returns topics unrendered; the CLI renders them with
// glamour when writing to a terminal.
package help

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed topics/*.md
var topicFS embed.FS

// Topic is a help document
type Topic struct {
	Name    string
	Format  string
	Content string
}

// Topics holds every embedded topic keyed by name
type Topics struct {
	topics map[string]*Topic
}

// Load reads all embedded topics
func Load() (*Topics, error) {
	return loadFS(topicFS, "topics")
}

func loadFS(fsys fs.FS, root string) (*Topics, error) {
	t := &Topics{topics: make(map[string]*Topic)}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		t.topics[name] = &Topic{Name: name, Format: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Get retrieves a topic by name, case-insensitively
func (t *Topics) Get(name string) (*Topic, bool) {
	topic, ok := t.topics[strings.ToLower(strings.TrimSpace(name))]
	return topic, ok
}

// Names returns all topic names in sorted order
func (t *Topics) Names() []string {
	names := make([]string, 0, len(t.topics))
	for name := range t.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
