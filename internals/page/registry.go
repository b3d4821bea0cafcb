package page

import "context"

// Builder composes one navigation destination from the current request parameters.
type Builder interface {
	Key() string
	Title() string
	Build(ctx context.Context, params Params) *Page
}

type NavItem struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Registry keeps builders in navigation order.
type Registry struct {
	order []Builder
	byKey map[string]Builder
}

func NewRegistry(builders ...Builder) *Registry {
	r := &Registry{byKey: make(map[string]Builder, len(builders))}
	for _, b := range builders {
		r.Register(b)
	}
	return r
}

// Register adds b, replacing any builder with the same key in place.
func (r *Registry) Register(b Builder) {
	if _, dup := r.byKey[b.Key()]; dup {
		for i, old := range r.order {
			if old.Key() == b.Key() {
				r.order[i] = b
			}
		}
	} else {
		r.order = append(r.order, b)
	}
	r.byKey[b.Key()] = b
}

func (r *Registry) Get(key string) (Builder, bool) {
	b, ok := r.byKey[key]
	return b, ok
}

func (r *Registry) Nav() []NavItem {
	out := make([]NavItem, 0, len(r.order))
	for _, b := range r.order {
		out = append(out, NavItem{Key: b.Key(), Title: b.Title(), Path: "/pages/" + b.Key()})
	}
	return out
}
