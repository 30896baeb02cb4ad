package probkit

// Tool is the interface that problem generators must implement.
// It provides a unified way to run generators from the CLI and from
// suite configurations.
type Tool interface {
	// Name returns the tool name (e.g., "induction").
	Name() string

	// Generate emits one problem of the given size into p.
	// A size less than or equal to zero must produce the degenerate
	// problem: no rules, base facts only.
	Generate(p *Problem, size int) error
}

// Registry maps tool names to tools.
type Registry map[string]Tool

// NewRegistry builds a Registry from a list of tools.
// Later tools override earlier ones with the same name.
func NewRegistry(tools ...Tool) Registry {
	r := make(Registry, len(tools))
	for _, t := range tools {
		r[t.Name()] = t
	}
	return r
}

// Lookup returns the tool with the given name, or nil if unknown.
func (r Registry) Lookup(name string) Tool {
	return r[name]
}
