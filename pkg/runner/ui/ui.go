package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/forkful/pkg/store"
	"tableflip.dev/forkful/pkg/view"
)

type UI struct {
	Store *store.Store

	dirty string

	bookmarks     *tui.Table
	bookmarkView  *tui.Box
	bookmarkTitle string

	detail     *tui.Label
	detailView *tui.Box
	recipeView *view.RecipeView
}

func (d *UI) Do(ctx context.Context) error {
	if d.Store == nil {
		return errors.New("can not browse, no store")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bTable := tui.NewTable(1, 0)
	bTable.SetFocused(true)

	marks := tui.NewVBox(
		bTable,
		tui.NewSpacer(),
	)
	marks.SetBorder(true)
	marks.SetSizePolicy(tui.Preferred, tui.Expanding)

	detail := tui.NewLabel("")
	detail.SetWordWrap(true)

	recipePane := tui.NewVBox(detail, tui.NewSpacer())
	recipePane.SetBorder(true)
	recipePane.SetSizePolicy(tui.Expanding, tui.Expanding)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use up or down arrows to browse bookmarks, '+'/'-' to change servings, ESC or 'q' to QUIT`)

	root := tui.NewVBox(
		tui.NewHBox(marks, recipePane),
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	d.bookmarks = bTable
	d.bookmarkTitle = "bookmarks"
	d.bookmarkView = marks
	d.detail = detail
	d.detailView = recipePane
	d.recipeView = view.NewRecipeView()

	d.populateBookmarks()

	bTable.OnSelectionChanged(func(*tui.Table) {
		d.populateDetail(ctx)
	})

	ui.SetKeybinding("+", func() { d.reServe(4) })
	ui.SetKeybinding("-", func() { d.reServe(-4) })

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	d.populateDetail(ctx)

	// Reload when another process mutates the same profile.
	if changes, err := d.Store.Watch(ctx); err == nil && changes != nil {
		go func() {
			for ev := range changes {
				if ev.Key != store.KeyBookmarks {
					continue
				}
				ui.Update(func() {
					d.Store.Init()
					d.dirty = ""
					d.populateBookmarks()
					d.populateDetail(ctx)
				})
			}
		}()
	}

	if err := ui.Run(); err != nil {
		return err
	}
	return nil
}

func (d *UI) populateBookmarks() {
	d.bookmarks.RemoveRows()
	d.bookmarkView.SetTitle(strings.ToUpper(d.bookmarkTitle))

	for _, b := range d.Store.Bookmarks {
		d.bookmarks.AppendRow(tui.NewLabel(b.Title))
	}
	if len(d.Store.Bookmarks) > 0 {
		d.bookmarks.Select(0)
	}
}

func (d *UI) populateDetail(ctx context.Context) {
	selected := ""
	if i := d.bookmarks.Selected(); i >= 0 && i < len(d.Store.Bookmarks) {
		selected = d.Store.Bookmarks[i].ID
	}

	if d.dirty == selected {
		return
	}
	d.dirty = selected

	if selected == "" {
		d.detailView.SetTitle("")
		d.detail.SetText("No bookmarks yet. Search for a recipe and bookmark it first.")
		return
	}

	d.recipeView.RenderSpinner()
	d.detail.SetText(d.recipeView.Text())

	if err := d.Store.LoadRecipe(ctx, selected); err != nil {
		d.recipeView.RenderError(err.Error())
		d.detail.SetText(d.recipeView.Text())
		return
	}

	d.detailView.SetTitle(d.Store.Recipe.Title)
	d.recipeView.Update(d.Store.Recipe)
	d.detail.SetText(d.recipeView.Text())
}

func (d *UI) reServe(delta int) {
	r := d.Store.Recipe
	if r == nil || r.Servings+delta <= 0 {
		return
	}
	d.Store.UpdateServings(r.Servings + delta)
	d.recipeView.Update(d.Store.Recipe)
	d.detail.SetText(d.recipeView.Text())
}
