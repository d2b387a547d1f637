package dom

import (
	"testing"

	"golang.org/x/net/html"
)

func mustParse(t *testing.T, markup string) *html.Node {
	t.Helper()
	n, err := Parse(markup)
	if err != nil {
		t.Fatalf("parse %q: %v", markup, err)
	}
	return n
}

func TestReconcileTextOnly(t *testing.T) {
	live := mustParse(t, `<div><h1 class="title">Pizza</h1><p class="servings">4 servings</p></div>`)
	next := mustParse(t, `<div><h1 class="title">Pizza</h1><p class="servings">8 servings</p></div>`)

	before := Elements(live)
	Reconcile(live, next)
	after := Elements(live)

	if len(before) != len(after) {
		t.Fatalf("element count changed: %d -> %d", len(before), len(after))
	}
	// node identity preserved across the patch
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("element %d was replaced instead of patched", i)
		}
	}
	if got := Text(after[2]); got != "8 servings" {
		t.Fatalf("text not patched: %q", got)
	}
	if got := Text(after[1]); got != "Pizza" {
		t.Fatalf("identical sibling changed: %q", got)
	}
}

func TestReconcileAttributes(t *testing.T) {
	live := mustParse(t, `<button class="btn" data-goto="2" tabindex="1">Next</button>`)
	next := mustParse(t, `<button class="btn btn--active" data-goto="3">Next</button>`)

	Reconcile(live, next)

	btn := Elements(live)[0]
	if v, _ := Attr(btn, "data-goto"); v != "3" {
		t.Fatalf("data-goto = %q, want 3", v)
	}
	if v, _ := Attr(btn, "class"); v != "btn btn--active" {
		t.Fatalf("class = %q", v)
	}
	// attributes only the live tree had are not removed
	if _, ok := Attr(btn, "tabindex"); !ok {
		t.Fatalf("old-only attribute was removed")
	}
}

func TestReconcileSkipsWhitespaceText(t *testing.T) {
	live := mustParse(t, `<div class="a"><span>keep</span></div>`)
	next := mustParse(t, `<div class="b"><span>keep</span></div>`)

	Reconcile(live, next)

	div := Elements(live)[0]
	if v, _ := Attr(div, "class"); v != "b" {
		t.Fatalf("attributes not copied: %q", v)
	}
	// the div's own text is whitespace-free markup structure; its span child
	// must survive the patch
	if got := Text(div); got != "keep" {
		t.Fatalf("container text clobbered: %q", got)
	}
}

func TestReconcileDivergentTreesDoesNotPanic(t *testing.T) {
	live := mustParse(t, `<ul><li>one</li></ul>`)
	next := mustParse(t, `<ul><li>one</li><li>two</li><li>three</li></ul>`)

	Reconcile(live, next) // longer new tree: unpaired tail not visited

	if got := len(Elements(live)); got != 2 {
		t.Fatalf("live tree structurally changed: %d elements", got)
	}

	shorter := mustParse(t, `<ul><li>one</li></ul>`)
	Reconcile(live, shorter) // shorter new tree: live tail untouched
	if got := Text(Elements(live)[1]); got != "one" {
		t.Fatalf("paired element not patched: %q", got)
	}
}

func TestRenderReplacesContent(t *testing.T) {
	container := NewContainer()
	if err := Render(container, `<p>first</p>`); err != nil {
		t.Fatalf("render: %v", err)
	}
	old := Elements(container)[0]
	if err := Render(container, `<p>second</p>`); err != nil {
		t.Fatalf("render: %v", err)
	}
	els := Elements(container)
	if len(els) != 1 || Text(els[0]) != "second" {
		t.Fatalf("render did not replace content: %+v", els)
	}
	if els[0] == old {
		t.Fatalf("render must rebuild nodes, not patch")
	}
}

func TestFlatten(t *testing.T) {
	n := mustParse(t, `<div><h1>Pizza</h1><p><span>45</span> minutes</p></div>`)
	want := "Pizza\n45 minutes"
	if got := Flatten(n); got != want {
		t.Fatalf("Flatten = %q, want %q", got, want)
	}
}
