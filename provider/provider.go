package provider

// Provider is the base interface all providers must implement.
type Provider interface {
	// Name returns the provider's unique name. Must be non-empty and stable
	// for the provider's lifetime.
	Name() string
	// Supports reports whether this provider can handle the given key.
	// The key is an opaque string (a file path, language name, framework
	// name) depending on the domain. Implementations must be pure and
	// side-effect-free.
	Supports(key string) bool
}

// ExtensionProvider is optionally implemented by providers that claim a set
// of key suffixes (e.g. file extensions).
type ExtensionProvider interface {
	Provider
	// Extensions returns the key suffixes this provider handles.
	Extensions() []string
}

// PriorityProvider is optionally implemented by providers that participate
// in priority-ranked dispatch. Higher wins.
type PriorityProvider interface {
	Provider
	// Priority returns the provider's tie-break weight.
	Priority() int
}

// ExtensionsOf returns the provider's claimed extensions, or nil if the
// provider does not implement ExtensionProvider.
func ExtensionsOf(p Provider) []string {
	if ep, ok := p.(ExtensionProvider); ok {
		return ep.Extensions()
	}
	return nil
}

// PriorityOf returns the provider's priority, or 0 if the provider does not
// implement PriorityProvider.
func PriorityOf(p Provider) int {
	if pp, ok := p.(PriorityProvider); ok {
		return pp.Priority()
	}
	return 0
}

// Is reports whether p is of concrete type T.
func Is[T Provider](p Provider) bool {
	_, ok := p.(T)
	return ok
}

// As downcasts p to concrete type T for advanced usage.
func As[T Provider](p Provider) (T, bool) {
	t, ok := p.(T)
	return t, ok
}
