package tasks

import "fmt"

// Registry maps task names to their definitions, preserving registration order.
type Registry struct {
	defs  map[string]Definition
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds def to the registry. It panics if the name is empty or
// already registered; both are programming errors caught at startup.
func (r *Registry) Register(def Definition) {
	if def.Name == "" {
		panic("task definition has no name")
	}
	if _, exists := r.defs[def.Name]; exists {
		panic(fmt.Sprintf("task %s already registered", def.Name))
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
}

// Lookup returns the definition and whether it exists.
func (r *Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// All returns every definition in registration order.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// Len reports the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.order)
}

// NewDefaultRegistry returns a registry holding the built-in developer tasks.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ServerTask())
	r.Register(MongoTask())
	r.Register(MongoShellTask())
	r.Register(RequirementsTask())
	r.Register(TestTask())
	return r
}
