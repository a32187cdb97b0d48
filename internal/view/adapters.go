package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node so it satisfies
// templ.Component and can sit inside a templ render tree.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component by delegating to the underlying node.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component so it satisfies
// gomponents.Node and can sit inside a gomponents render tree.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements gomponents.Node. Gomponents' Render carries no context,
// so the templ component is rendered with context.Background().
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
