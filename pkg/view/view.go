// Package view generates markup for each screen region and keeps a live
// node tree for it. Render rebuilds the tree from scratch; Update patches
// it in place so unrelated nodes keep their identity.
package view

import (
	"golang.org/x/net/html"

	"tableflip.dev/forkful/pkg/dom"
)

type base struct {
	container    *html.Node
	errorMessage string
	message      string
}

func newBase(errorMessage, message string) base {
	return base{
		container:    dom.NewContainer(),
		errorMessage: errorMessage,
		message:      message,
	}
}

// Container exposes the live tree, mainly for tests and embedding surfaces.
func (b *base) Container() *html.Node { return b.container }

// Text is the flattened text projection of the live tree.
func (b *base) Text() string { return dom.Flatten(b.container) }

// Markup is the serialized markup of the live tree.
func (b *base) Markup() string { return dom.Markup(b.container) }

func (b *base) render(markup string) {
	if err := dom.Render(b.container, markup); err != nil {
		b.RenderError(err.Error())
	}
}

func (b *base) update(markup string) {
	next, err := dom.Parse(markup)
	if err != nil {
		return
	}
	dom.Reconcile(b.container, next)
}

// RenderSpinner shows the loading placeholder.
func (b *base) RenderSpinner() {
	b.render(`<div class="spinner">Loading...</div>`)
}

// RenderError substitutes an error panel for the region's content.
func (b *base) RenderError(msg ...string) {
	m := b.errorMessage
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	b.render(`<div class="error"><p>` + escape(m) + `</p></div>`)
}

// RenderMessage shows an informational panel.
func (b *base) RenderMessage(msg ...string) {
	m := b.message
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	b.render(`<div class="message"><p>` + escape(m) + `</p></div>`)
}
