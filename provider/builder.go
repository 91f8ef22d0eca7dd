package provider

// Builder assembles a Registry with a fluent API.
//
//	reg := provider.NewBuilder[provider.Provider]().
//	    With(textRenderer, markdownRenderer).
//	    Build()
type Builder[T Provider] struct {
	registry *Registry[T]
}

// NewBuilder creates a new registry builder.
func NewBuilder[T Provider]() *Builder[T] {
	return &Builder[T]{registry: NewRegistry[T]()}
}

// With registers one or more providers and returns the builder.
func (b *Builder[T]) With(providers ...T) *Builder[T] {
	for _, p := range providers {
		b.registry.Register(p)
	}
	return b
}

// Build finalizes and returns the registry.
func (b *Builder[T]) Build() *Registry[T] {
	return b.registry
}
