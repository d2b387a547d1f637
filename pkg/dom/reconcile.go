package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Reconcile patches the live tree in place to match next. The diff is
// positional: the i-th element of each tree in document order is a pair,
// and the walk is driven by the new tree's elements. For each unequal pair
// the live element's text is overwritten when the new element carries
// leading non-whitespace text, and every attribute present on the new
// element is copied over (attributes only the live element has survive).
//
// Structural divergence is not detected: pairs beyond the shorter tree are
// not visited, which leaves a silent partial patch. Callers changing the
// shape of a view render from scratch instead.
func Reconcile(live, next *html.Node) {
	newEls := Elements(next)
	curEls := Elements(live)

	for i, newEl := range newEls {
		if i >= len(curEls) {
			return
		}
		curEl := curEls[i]
		if Equal(newEl, curEl) {
			continue
		}

		if hasOwnText(newEl) {
			SetText(curEl, Text(newEl))
		}
		for _, attr := range newEl.Attr {
			SetAttr(curEl, attr.Key, attr.Val)
		}
	}
}

// hasOwnText reports whether the element's first child is a text node with
// non-whitespace content. Containers whose text lives deeper are patched
// through their own children, not here.
func hasOwnText(n *html.Node) bool {
	first := n.FirstChild
	return first != nil && first.Type == html.TextNode && strings.TrimSpace(first.Data) != ""
}
