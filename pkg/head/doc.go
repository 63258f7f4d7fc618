// Package head provides the fluent head-metadata Builder. Declarations are
// appended in call order and emitted by Build, either as the raw
// element.Sequence or through an injected Adapter that reshapes the sequence
// for a rendering target (see the adapters packages).
//
//	tags := head.New(head.WithBaseURL("https://example.com")).
//		AddMeta(element.MetaAttrs{CharSet: "utf-8"}).
//		AddLink(element.LinkAttrs{Rel: "canonical", Href: "/docs"}).
//		Build()
package head
