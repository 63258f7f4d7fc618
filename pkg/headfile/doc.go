// Package headfile loads named head definitions from JSON or YAML files:
//
//	heads:
//	  docs:
//	    baseUrl: https://example.com/docs/
//	    declarations:
//	      - kind: meta
//	        attributes: {charSet: utf-8}
//	      - kind: link
//	        attributes: {rel: canonical, href: /docs}
//
// Each document can seed a head.Builder through Document.Builder.
package headfile
