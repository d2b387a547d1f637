package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"tableflip.dev/forkful/pkg/printers"
	"tableflip.dev/forkful/pkg/store"
)

type Upload struct {
	// File, when set, is a YAML description of the recipe; otherwise Input
	// is used as-is.
	File  string
	Input store.Upload

	Store *store.Store
}

func (n *Upload) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not upload, no store")
	}

	up := n.Input
	if n.File != "" {
		loaded, err := readFile(n.File)
		if err != nil {
			return err
		}
		up = loaded
	}

	if err := n.Store.UploadRecipe(ctx, up); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("Recipe uploaded and bookmarked")
	pp.NewLine()
	pp.Recipe(n.Store.Recipe)
	return nil
}

func readFile(path string) (store.Upload, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return store.Upload{}, fmt.Errorf("read recipe file: %w", err)
	}
	var up store.Upload
	if err := v.Unmarshal(&up); err != nil {
		return store.Upload{}, fmt.Errorf("parse recipe file: %w", err)
	}
	return up, nil
}
