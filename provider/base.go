package provider

import "strings"

// Base is an embeddable provider implementation with extension-suffix
// matching. Embed it to get Name, Extensions, Priority, and the default
// Supports behavior; override Supports for custom predicates.
type Base struct {
	name       string
	extensions []string
	priority   int
}

// NewBase creates a Base provider. Extensions may be nil for providers that
// don't use extension-based matching; their default Supports always reports
// false.
func NewBase(name string, extensions []string, priority int) Base {
	return Base{
		name:       name,
		extensions: extensions,
		priority:   priority,
	}
}

// Name returns the provider's unique name.
func (b Base) Name() string { return b.name }

// Extensions returns the key suffixes this provider handles.
func (b Base) Extensions() []string { return b.extensions }

// Priority returns the provider's tie-break weight.
func (b Base) Priority() int { return b.priority }

// Supports reports whether key ends with any of the provider's extensions.
// False when no extensions are declared.
func (b Base) Supports(key string) bool {
	for _, ext := range b.extensions {
		if strings.HasSuffix(key, ext) {
			return true
		}
	}
	return false
}
