package element

import (
	"sort"
	"strings"
)

// Attr is a single HTML attribute. Boolean attributes render without a value.
type Attr struct {
	Name    string `json:"name"`
	Value   string `json:"value,omitempty"`
	Boolean bool   `json:"boolean,omitempty"`
}

// Attributes is the kind-specific payload of a Declaration. The set of
// implementations is closed: MetaAttrs, LinkAttrs, ScriptAttrs and StyleAttrs.
type Attributes interface {
	// Kind reports which declaration kind the record belongs to.
	Kind() Kind
	// Map returns the populated properties keyed by property name. Extra
	// attributes are merged unless dropped by ExtraAllowed.
	Map() map[string]any
	// Pairs returns HTML attributes in a stable order. Inline bodies are not
	// attributes and are never included.
	Pairs() []Attr

	sealed()
}

// ReservedKey is the property name adapters use for node identity. Extra
// entries under it are dropped.
const ReservedKey = "key"

var (
	metaFields   = []string{"name", "content", "charset", "httpequiv", "http-equiv", "property", "itemprop", "media"}
	linkFields   = []string{"rel", "href", "type", "hreflang", "sizes", "media", "as", "crossorigin", "integrity", "title"}
	scriptFields = []string{"src", "type", "async", "defer", "nomodule", "crossorigin", "integrity", "nonce", "body"}
	styleFields  = []string{"media", "nonce", "title", "body"}
)

// ExtraAllowed reports whether an Extra entry named name survives Map and
// Pairs for kind. Blank names, ReservedKey and names of typed fields (compared
// case-insensitively, in either property or attribute spelling) are dropped.
func ExtraAllowed(kind Kind, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == ReservedKey {
		return false
	}
	var fields []string
	switch kind {
	case KindMeta:
		fields = metaFields
	case KindLink:
		fields = linkFields
	case KindScript:
		fields = scriptFields
	case KindStyle:
		fields = styleFields
	}
	for _, field := range fields {
		if field == name {
			return false
		}
	}
	return true
}

// DroppedExtras returns the sorted Extra names of attrs that ExtraAllowed
// rejects.
func DroppedExtras(attrs Attributes) []string {
	var extra map[string]string
	switch v := attrs.(type) {
	case MetaAttrs:
		extra = v.Extra
	case LinkAttrs:
		extra = v.Extra
	case ScriptAttrs:
		extra = v.Extra
	case StyleAttrs:
		extra = v.Extra
	default:
		return nil
	}
	var out []string
	for name := range extra {
		if !ExtraAllowed(attrs.Kind(), name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// MetaAttrs describes a <meta> tag.
type MetaAttrs struct {
	Name      string            `json:"name,omitempty" yaml:"name,omitempty"`
	Content   string            `json:"content,omitempty" yaml:"content,omitempty"`
	CharSet   string            `json:"charSet,omitempty" yaml:"charSet,omitempty"`
	HTTPEquiv string            `json:"httpEquiv,omitempty" yaml:"httpEquiv,omitempty"`
	Property  string            `json:"property,omitempty" yaml:"property,omitempty"`
	ItemProp  string            `json:"itemProp,omitempty" yaml:"itemProp,omitempty"`
	Media     string            `json:"media,omitempty" yaml:"media,omitempty"`
	Extra     map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// LinkAttrs describes a <link> tag.
type LinkAttrs struct {
	Rel         string            `json:"rel,omitempty" yaml:"rel,omitempty"`
	Href        string            `json:"href,omitempty" yaml:"href,omitempty"`
	Type        string            `json:"type,omitempty" yaml:"type,omitempty"`
	HrefLang    string            `json:"hrefLang,omitempty" yaml:"hrefLang,omitempty"`
	Sizes       string            `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Media       string            `json:"media,omitempty" yaml:"media,omitempty"`
	As          string            `json:"as,omitempty" yaml:"as,omitempty"`
	CrossOrigin string            `json:"crossOrigin,omitempty" yaml:"crossOrigin,omitempty"`
	Integrity   string            `json:"integrity,omitempty" yaml:"integrity,omitempty"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Extra       map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// ScriptAttrs describes a <script> tag. Body holds an inline script.
type ScriptAttrs struct {
	Src         string            `json:"src,omitempty" yaml:"src,omitempty"`
	Type        string            `json:"type,omitempty" yaml:"type,omitempty"`
	Async       bool              `json:"async,omitempty" yaml:"async,omitempty"`
	Defer       bool              `json:"defer,omitempty" yaml:"defer,omitempty"`
	NoModule    bool              `json:"noModule,omitempty" yaml:"noModule,omitempty"`
	CrossOrigin string            `json:"crossOrigin,omitempty" yaml:"crossOrigin,omitempty"`
	Integrity   string            `json:"integrity,omitempty" yaml:"integrity,omitempty"`
	Nonce       string            `json:"nonce,omitempty" yaml:"nonce,omitempty"`
	Body        string            `json:"body,omitempty" yaml:"body,omitempty"`
	Extra       map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// StyleAttrs describes a <style> tag. Body holds the inline stylesheet.
type StyleAttrs struct {
	Media string            `json:"media,omitempty" yaml:"media,omitempty"`
	Nonce string            `json:"nonce,omitempty" yaml:"nonce,omitempty"`
	Title string            `json:"title,omitempty" yaml:"title,omitempty"`
	Body  string            `json:"body,omitempty" yaml:"body,omitempty"`
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

func (MetaAttrs) Kind() Kind   { return KindMeta }
func (LinkAttrs) Kind() Kind   { return KindLink }
func (ScriptAttrs) Kind() Kind { return KindScript }
func (StyleAttrs) Kind() Kind  { return KindStyle }

func (MetaAttrs) sealed()   {}
func (LinkAttrs) sealed()   {}
func (ScriptAttrs) sealed() {}
func (StyleAttrs) sealed()  {}

func (a MetaAttrs) Map() map[string]any {
	props := props{}
	props.str("name", a.Name)
	props.str("content", a.Content)
	props.str("charSet", a.CharSet)
	props.str("httpEquiv", a.HTTPEquiv)
	props.str("property", a.Property)
	props.str("itemProp", a.ItemProp)
	props.str("media", a.Media)
	props.extra(KindMeta, a.Extra)
	return props
}

func (a MetaAttrs) Pairs() []Attr {
	var pairs pairList
	pairs.str("charset", a.CharSet)
	pairs.str("name", a.Name)
	pairs.str("property", a.Property)
	pairs.str("http-equiv", a.HTTPEquiv)
	pairs.str("itemprop", a.ItemProp)
	pairs.str("content", a.Content)
	pairs.str("media", a.Media)
	pairs.extra(KindMeta, a.Extra)
	return pairs
}

func (a LinkAttrs) Map() map[string]any {
	props := props{}
	props.str("rel", a.Rel)
	props.str("href", a.Href)
	props.str("type", a.Type)
	props.str("hrefLang", a.HrefLang)
	props.str("sizes", a.Sizes)
	props.str("media", a.Media)
	props.str("as", a.As)
	props.str("crossOrigin", a.CrossOrigin)
	props.str("integrity", a.Integrity)
	props.str("title", a.Title)
	props.extra(KindLink, a.Extra)
	return props
}

func (a LinkAttrs) Pairs() []Attr {
	var pairs pairList
	pairs.str("rel", a.Rel)
	pairs.str("href", a.Href)
	pairs.str("type", a.Type)
	pairs.str("hreflang", a.HrefLang)
	pairs.str("sizes", a.Sizes)
	pairs.str("media", a.Media)
	pairs.str("as", a.As)
	pairs.str("crossorigin", a.CrossOrigin)
	pairs.str("integrity", a.Integrity)
	pairs.str("title", a.Title)
	pairs.extra(KindLink, a.Extra)
	return pairs
}

func (a ScriptAttrs) Map() map[string]any {
	props := props{}
	props.str("src", a.Src)
	props.str("type", a.Type)
	props.flag("async", a.Async)
	props.flag("defer", a.Defer)
	props.flag("noModule", a.NoModule)
	props.str("crossOrigin", a.CrossOrigin)
	props.str("integrity", a.Integrity)
	props.str("nonce", a.Nonce)
	props.str("body", a.Body)
	props.extra(KindScript, a.Extra)
	return props
}

func (a ScriptAttrs) Pairs() []Attr {
	var pairs pairList
	pairs.str("src", a.Src)
	pairs.str("type", a.Type)
	pairs.flag("async", a.Async)
	pairs.flag("defer", a.Defer)
	pairs.flag("nomodule", a.NoModule)
	pairs.str("crossorigin", a.CrossOrigin)
	pairs.str("integrity", a.Integrity)
	pairs.str("nonce", a.Nonce)
	pairs.extra(KindScript, a.Extra)
	return pairs
}

func (a StyleAttrs) Map() map[string]any {
	props := props{}
	props.str("media", a.Media)
	props.str("nonce", a.Nonce)
	props.str("title", a.Title)
	props.str("body", a.Body)
	props.extra(KindStyle, a.Extra)
	return props
}

func (a StyleAttrs) Pairs() []Attr {
	var pairs pairList
	pairs.str("media", a.Media)
	pairs.str("nonce", a.Nonce)
	pairs.str("title", a.Title)
	pairs.extra(KindStyle, a.Extra)
	return pairs
}

// InlineBody returns the inline body carried by script and style records.
func InlineBody(attrs Attributes) string {
	switch v := attrs.(type) {
	case ScriptAttrs:
		return v.Body
	case StyleAttrs:
		return v.Body
	default:
		return ""
	}
}

type props map[string]any

func (p props) str(key, value string) {
	if value != "" {
		p[key] = value
	}
}

func (p props) flag(key string, value bool) {
	if value {
		p[key] = true
	}
}

func (p props) extra(kind Kind, values map[string]string) {
	for key, value := range values {
		if !ExtraAllowed(kind, key) {
			continue
		}
		p[key] = value
	}
}

type pairList []Attr

func (l *pairList) str(name, value string) {
	if value != "" {
		*l = append(*l, Attr{Name: name, Value: value})
	}
}

func (l *pairList) flag(name string, value bool) {
	if value {
		*l = append(*l, Attr{Name: name, Boolean: true})
	}
}

func (l *pairList) extra(kind Kind, values map[string]string) {
	if len(values) == 0 {
		return
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		if !ExtraAllowed(kind, key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		*l = append(*l, Attr{Name: key, Value: values[key]})
	}
}
