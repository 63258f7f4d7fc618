package render

import (
	"strings"

	"github.com/goliatone/go-headtags/pkg/element"
)

// Subset narrows the declarations a renderer emits. A declaration is kept when
// it matches any non-empty filter. The zero Subset keeps everything.
type Subset struct {
	// Kinds keeps declarations of the listed kinds.
	Kinds []string
	// Rels keeps links carrying any of the listed rel tokens.
	Rels []string
	// Names keeps metas whose name or property is listed.
	Names []string
}

// Empty reports whether the subset has no filters.
func (s Subset) Empty() bool {
	return newSubsetMatcher(s).empty()
}

// ApplySubset returns the declarations of seq matching subset, preserving
// order. The input is never modified.
func ApplySubset(seq element.Sequence, subset Subset) element.Sequence {
	matcher := newSubsetMatcher(subset)
	if matcher.empty() {
		return seq.Clone()
	}

	filtered := make(element.Sequence, 0, len(seq))
	for _, decl := range seq {
		if matcher.matches(decl) {
			filtered = append(filtered, decl)
		}
	}
	return filtered
}

// ParseTokenList splits a comma separated flag value into lowercase tokens.
func ParseTokenList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' })
	return dedupe(tokensToLower(parts))
}

type subsetMatcher struct {
	kinds map[string]struct{}
	rels  map[string]struct{}
	names map[string]struct{}
}

func newSubsetMatcher(subset Subset) subsetMatcher {
	return subsetMatcher{
		kinds: normaliseTokens(subset.Kinds),
		rels:  normaliseTokens(subset.Rels),
		names: normaliseTokens(subset.Names),
	}
}

func (m subsetMatcher) empty() bool {
	return len(m.kinds) == 0 && len(m.rels) == 0 && len(m.names) == 0
}

func (m subsetMatcher) matches(decl element.Declaration) bool {
	if len(m.kinds) > 0 {
		if _, ok := m.kinds[normaliseToken(string(decl.Kind))]; ok {
			return true
		}
	}

	if len(m.rels) > 0 {
		if link, ok := decl.AsLink(); ok {
			for _, rel := range strings.Fields(link.Rel) {
				if _, ok := m.rels[normaliseToken(rel)]; ok {
					return true
				}
			}
		}
	}

	if len(m.names) > 0 {
		if meta, ok := decl.AsMeta(); ok {
			for _, candidate := range []string{meta.Name, meta.Property} {
				if token := normaliseToken(candidate); token != "" {
					if _, ok := m.names[token]; ok {
						return true
					}
				}
			}
		}
	}

	return false
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	result := make(map[string]struct{}, len(values))
	for _, value := range values {
		token := normaliseToken(value)
		if token == "" {
			continue
		}
		result[token] = struct{}{}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func tokensToLower(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if token := normaliseToken(value); token != "" {
			out = append(out, token)
		}
	}
	return out
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
