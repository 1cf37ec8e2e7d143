package lesson

import "fmt"

// Registry maps lesson IDs to constructors. Every Get returns a fresh
// instance so each view owns its own parameter state.
type Registry struct {
	lessons map[string]func() Lesson
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{lessons: make(map[string]func() Lesson)}
}

// Register adds a constructor under its lesson ID. Later registrations
// under the same ID replace earlier ones.
func (r *Registry) Register(id string, fn func() Lesson) {
	if _, ok := r.lessons[id]; !ok {
		r.order = append(r.order, id)
	}
	r.lessons[id] = fn
}

// Get constructs the lesson registered under id.
func (r *Registry) Get(id string) (Lesson, error) {
	fn, ok := r.lessons[id]
	if !ok {
		return nil, fmt.Errorf("unknown lesson: %s", id)
	}
	return fn(), nil
}

// List returns the registered IDs in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
