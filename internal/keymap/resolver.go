package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action
	help     [][]key.Binding
}

// NewResolver creates a resolver from bindings. A key bound twice resolves
// to the last binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{bindings: make(map[string]Action)}
	groups := make(map[string][]key.Binding)
	var order []string

	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		if _, seen := groups[b.Context]; !seen {
			order = append(order, b.Context)
		}
		groups[b.Context] = append(groups[b.Context], key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(helpKeys(b.Keys), b.Description),
		))
	}
	for _, c := range order {
		r.help = append(r.help, groups[c])
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// ShortHelp implements help.KeyMap with the first binding of each context.
func (r *Resolver) ShortHelp() []key.Binding {
	short := make([]key.Binding, 0, len(r.help))
	for _, group := range r.help {
		short = append(short, group[0])
	}
	return short
}

// FullHelp implements help.KeyMap, one column per context.
func (r *Resolver) FullHelp() [][]key.Binding {
	return r.help
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
