package element

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the discriminant of a head declaration.
type Kind string

const (
	KindMeta   Kind = "meta"
	KindLink   Kind = "link"
	KindScript Kind = "script"
	KindStyle  Kind = "style"
)

var (
	// ErrUnknownKind reports a discriminant outside the closed Kind set.
	ErrUnknownKind = errors.New("element: unknown kind")
	// ErrKindMismatch reports a declaration whose attributes belong to another kind.
	ErrKindMismatch = errors.New("element: attributes do not match kind")
)

var allKinds = []Kind{KindMeta, KindLink, KindScript, KindStyle}

// Kinds returns every supported kind in canonical order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool {
	switch k {
	case KindMeta, KindLink, KindScript, KindStyle:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind converts raw input into a Kind, ignoring case and surrounding
// whitespace.
func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownKind, raw)
	}
	return kind, nil
}
