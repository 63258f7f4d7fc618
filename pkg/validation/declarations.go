package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-headtags/pkg/element"
)

// Issue describes a declaration that renders but is probably wrong.
type Issue struct {
	Index   int          `json:"index"`
	Kind    element.Kind `json:"kind,omitempty"`
	Field   string       `json:"field,omitempty"`
	Message string       `json:"message"`
}

// String formats the issue as "[index] kind.field: message".
func (i Issue) String() string {
	location := string(i.Kind)
	if i.Field != "" {
		location += "." + i.Field
	}
	return fmt.Sprintf("[%d] %s: %s", i.Index, location, i.Message)
}

// Result captures validation outcomes for a sequence.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Err joins the issues into one error, or returns nil when the result is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Issues))
	for _, issue := range r.Issues {
		errs = append(errs, errors.New(issue.String()))
	}
	return errors.Join(errs...)
}

// ValidateSequence checks each declaration against the attributes the
// corresponding HTML element needs. Issues are reported in sequence order.
func ValidateSequence(seq element.Sequence) Result {
	v := validator{}
	for idx, decl := range seq {
		v.check(idx, decl)
	}
	return Result{Valid: len(v.issues) == 0, Issues: v.issues}
}

type validator struct {
	issues     []Issue
	charsetAt  int
	canonAt    int
	sawCharset bool
	sawCanon   bool
}

func (v *validator) add(idx int, kind element.Kind, field, message string) {
	v.issues = append(v.issues, Issue{Index: idx, Kind: kind, Field: field, Message: message})
}

func (v *validator) check(idx int, decl element.Declaration) {
	if err := decl.Validate(); err != nil {
		v.add(idx, decl.Kind, "", strings.TrimPrefix(err.Error(), "element: "))
		return
	}

	switch decl.Kind {
	case element.KindMeta:
		attrs, _ := decl.AsMeta()
		v.checkMeta(idx, attrs)
	case element.KindLink:
		attrs, _ := decl.AsLink()
		v.checkLink(idx, attrs)
	case element.KindScript:
		attrs, _ := decl.AsScript()
		v.checkScript(idx, attrs)
	case element.KindStyle:
		attrs, _ := decl.AsStyle()
		if blank(attrs.Body) {
			v.add(idx, element.KindStyle, "body", "inline body is required")
		}
	}

	for _, name := range element.DroppedExtras(decl.Attributes) {
		v.add(idx, decl.Kind, "extra", fmt.Sprintf("extra attribute %q shadows a typed field or the node key and is ignored", name))
	}
}

func (v *validator) checkMeta(idx int, attrs element.MetaAttrs) {
	if !blank(attrs.CharSet) {
		if v.sawCharset {
			v.add(idx, element.KindMeta, "charSet", fmt.Sprintf("duplicate charset, first declared at %d", v.charsetAt))
		} else {
			v.sawCharset, v.charsetAt = true, idx
		}
		return
	}

	keyed := map[string]string{
		"name":      attrs.Name,
		"property":  attrs.Property,
		"httpEquiv": attrs.HTTPEquiv,
		"itemProp":  attrs.ItemProp,
	}
	for _, field := range []string{"name", "property", "httpEquiv", "itemProp"} {
		if blank(keyed[field]) {
			continue
		}
		if blank(attrs.Content) {
			v.add(idx, element.KindMeta, "content", "content is required when "+field+" is set")
		}
		return
	}
	v.add(idx, element.KindMeta, "", "one of charSet, name, property, httpEquiv or itemProp is required")
}

func (v *validator) checkLink(idx int, attrs element.LinkAttrs) {
	if blank(attrs.Rel) {
		v.add(idx, element.KindLink, "rel", "rel is required")
	}
	if blank(attrs.Href) {
		v.add(idx, element.KindLink, "href", "href is required")
	}
	for _, rel := range strings.Fields(strings.ToLower(attrs.Rel)) {
		switch rel {
		case "canonical":
			if v.sawCanon {
				v.add(idx, element.KindLink, "rel", fmt.Sprintf("duplicate canonical link, first declared at %d", v.canonAt))
			} else {
				v.sawCanon, v.canonAt = true, idx
			}
		case "preload":
			if blank(attrs.As) {
				v.add(idx, element.KindLink, "as", "preload links need an as value")
			}
		}
	}
}

func (v *validator) checkScript(idx int, attrs element.ScriptAttrs) {
	hasSrc, hasBody := !blank(attrs.Src), !blank(attrs.Body)
	switch {
	case hasSrc && hasBody:
		v.add(idx, element.KindScript, "body", "src and inline body are mutually exclusive")
	case !hasSrc && !hasBody:
		v.add(idx, element.KindScript, "src", "src or inline body is required")
	case !hasSrc && (attrs.Async || attrs.Defer):
		v.add(idx, element.KindScript, "src", "async and defer have no effect on inline scripts")
	}
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
