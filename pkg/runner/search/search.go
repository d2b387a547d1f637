package search

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/forkful/pkg/printers"
	"tableflip.dev/forkful/pkg/store"
	"tableflip.dev/forkful/pkg/view"
)

type Search struct {
	Query  string
	Page   int
	HTML   bool
	ShowID bool

	Store *store.Store
}

func (n *Search) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not search, no store")
	}

	if err := n.Store.LoadSearchResults(ctx, n.Query); err != nil {
		return err
	}
	page := n.Store.SearchResultsPage(n.Page)

	if n.HTML {
		rv := view.NewResultsView()
		rv.Render(page)
		pv := view.NewPaginationView()
		pv.Render(view.Paging{
			Page:     n.Store.Search.Page,
			Total:    len(n.Store.Search.Results),
			PageSize: store.ResultsPerPage,
		})
		fmt.Println(rv.Markup())
		if m := pv.Markup(); m != "" {
			fmt.Println(m)
		}
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(fmt.Sprintf("Results for %q", n.Store.Search.Query), len(n.Store.Search.Results))
	pp.Results(page, n.Store.Search.Page, len(n.Store.Search.Results))
	return nil
}
