// Package provider implements a generic capability-provider framework using
// Go generics: a small provider contract plus an ordered registry that
// resolves request keys to the provider(s) that should handle them.
//
// A provider declares a name and a capability predicate; extensions and
// priority are opt-in capabilities detected through optional interfaces:
//
//	type markdownRenderer struct{}
//
//	func (markdownRenderer) Name() string              { return "markdown" }
//	func (markdownRenderer) Supports(key string) bool  { return strings.HasSuffix(key, ".md") }
//	func (markdownRenderer) Priority() int             { return 10 }
//
// For extension-suffix matching, embed Base instead of hand-writing Supports:
//
//	type textRenderer struct {
//	    provider.Base
//	}
//
//	var _ = textRenderer{Base: provider.NewBase("text", []string{".txt", ".md"}, 0)}
//
// # Registry
//
// The registry keeps providers in insertion order and resolves lookups by
// linear scan; provider counts are small (tens, not thousands), so
// predictable ordering beats index structures:
//
//	reg := provider.NewRegistry[provider.Provider]()
//	reg.Register(textRenderer{...})
//	reg.Register(markdownRenderer{})
//
//	p, ok := reg.FindBest("README.md") // highest priority among matches
//
// Register never rejects duplicates; the first-registered provider shadows
// later ones for Get. RegisterUnique is the strict variant.
//
// # Resolution semantics
//
//	Get(name)      exact name, first registered wins
//	Find(key)      first Supports(key) in insertion order, priority ignored
//	FindBest(key)  highest priority among matches, insertion order breaks ties
//	FindAll(key)   every match, insertion order
//
// Lookup misses are reported via the ok result, never as errors. A Supports
// predicate that panics is a contract violation on the provider's side and
// propagates to the lookup caller.
package provider
