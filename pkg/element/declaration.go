package element

import "fmt"

// Declaration is one head entry: a kind discriminant plus its attributes.
type Declaration struct {
	Kind       Kind       `json:"kind" yaml:"kind"`
	Attributes Attributes `json:"attributes" yaml:"attributes"`
}

// New wraps attrs in a Declaration whose kind is taken from the record, so the
// discriminant and payload always agree.
func New(attrs Attributes) Declaration {
	if attrs == nil {
		return Declaration{}
	}
	return Declaration{Kind: attrs.Kind(), Attributes: attrs}
}

func Meta(attrs MetaAttrs) Declaration     { return New(attrs) }
func Link(attrs LinkAttrs) Declaration     { return New(attrs) }
func Script(attrs ScriptAttrs) Declaration { return New(attrs) }
func Style(attrs StyleAttrs) Declaration   { return New(attrs) }

func (d Declaration) IsMeta() bool   { return d.Kind == KindMeta }
func (d Declaration) IsLink() bool   { return d.Kind == KindLink }
func (d Declaration) IsScript() bool { return d.Kind == KindScript }
func (d Declaration) IsStyle() bool  { return d.Kind == KindStyle }

// AsMeta narrows the declaration to its meta record. ok is false unless both
// the discriminant and the payload are meta.
func (d Declaration) AsMeta() (MetaAttrs, bool) {
	if !d.IsMeta() {
		return MetaAttrs{}, false
	}
	attrs, ok := d.Attributes.(MetaAttrs)
	return attrs, ok
}

// AsLink narrows the declaration to its link record.
func (d Declaration) AsLink() (LinkAttrs, bool) {
	if !d.IsLink() {
		return LinkAttrs{}, false
	}
	attrs, ok := d.Attributes.(LinkAttrs)
	return attrs, ok
}

// AsScript narrows the declaration to its script record.
func (d Declaration) AsScript() (ScriptAttrs, bool) {
	if !d.IsScript() {
		return ScriptAttrs{}, false
	}
	attrs, ok := d.Attributes.(ScriptAttrs)
	return attrs, ok
}

// AsStyle narrows the declaration to its style record.
func (d Declaration) AsStyle() (StyleAttrs, bool) {
	if !d.IsStyle() {
		return StyleAttrs{}, false
	}
	attrs, ok := d.Attributes.(StyleAttrs)
	return attrs, ok
}

// Validate checks a hand-assembled declaration. Values produced by New and the
// kind constructors are always valid.
func (d Declaration) Validate() error {
	if !d.Kind.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownKind, d.Kind)
	}
	if d.Attributes == nil || d.Attributes.Kind() != d.Kind {
		return fmt.Errorf("%w: %s", ErrKindMismatch, d.Kind)
	}
	return nil
}

// Sequence is an ordered list of declarations. Order is the emission order.
type Sequence []Declaration

// Len returns the number of declarations.
func (s Sequence) Len() int {
	return len(s)
}

// Clone returns a copy that shares no backing array with s. A nil sequence
// clones to an empty, non-nil one.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Kinds returns the discriminant of every declaration, in order.
func (s Sequence) Kinds() []Kind {
	out := make([]Kind, len(s))
	for i, decl := range s {
		out[i] = decl.Kind
	}
	return out
}
