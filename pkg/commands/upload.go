package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/forkful/pkg/commands/options"
	"tableflip.dev/forkful/pkg/runner/upload"
	"tableflip.dev/forkful/pkg/store"
)

func addUpload(topLevel *cobra.Command) {
	uo := &options.UploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Publish your own recipe",
		Example: `
forkful upload --file pizza.yaml
forkful upload --title Pizza --publisher me --source-url https://example.com \
  --cooking-time 45 --servings 4 -i "0.5,kg,flour" -i ",,salt"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if uo.File == "" && uo.Title == "" {
				return errors.New("requires a --file or inline recipe flags")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := uploadInput(uo)
			if err != nil {
				return err
			}
			s, err := newStore()
			if err != nil {
				return err
			}
			r := upload.Upload{File: uo.File, Input: input, Store: s}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFileArgs(cmd, uo)
	options.AddUploadArgs(cmd, uo)

	topLevel.AddCommand(cmd)
}

// uploadInput builds the recipe from the inline flags. Ingredients use the
// 'quantity,unit,description' row format.
func uploadInput(uo *options.UploadOptions) (store.Upload, error) {
	up := store.Upload{
		Title:       uo.Title,
		Publisher:   uo.Publisher,
		SourceURL:   uo.SourceURL,
		Image:       uo.Image,
		CookingTime: uo.CookingTime,
		Servings:    uo.Servings,
	}
	for _, row := range uo.Ingredients {
		parts := strings.Split(row, ",")
		if len(parts) != 3 {
			return store.Upload{}, fmt.Errorf(
				"wrong ingredient format %q, expected 'quantity,unit,description'", row)
		}
		up.Ingredients = append(up.Ingredients, store.IngredientRow{
			Quantity:    strings.TrimSpace(parts[0]),
			Unit:        strings.TrimSpace(parts[1]),
			Description: strings.TrimSpace(parts[2]),
		})
	}
	return up, nil
}
