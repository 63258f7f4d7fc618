package headfile

import (
	"sort"

	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
)

// Document is one named head definition loaded from disk.
type Document struct {
	Name         string
	Source       string
	BaseURL      string
	Declarations element.Sequence
}

// Builder returns a raw builder pre-populated with the document
// declarations. The document base URL is recorded when present.
func (d Document) Builder() *head.Builder[element.Sequence] {
	var options []head.Option
	if d.BaseURL != "" {
		options = append(options, head.WithBaseURL(d.BaseURL))
	}
	return head.New(options...).AddAll(d.Declarations...)
}

// Store holds loaded documents keyed by name.
type Store struct {
	documents map[string]Document
}

// Get returns the document registered under name.
func (s *Store) Get(name string) (Document, bool) {
	if s == nil {
		return Document{}, false
	}
	doc, ok := s.documents[name]
	if !ok {
		return Document{}, false
	}
	doc.Declarations = doc.Declarations.Clone()
	return doc, true
}

// Names returns the sorted document names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.documents))
	for name := range s.documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports how many documents are loaded.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.documents)
}
