package options

import (
	"github.com/spf13/cobra"
)

// UploadOptions
type UploadOptions struct {
	File string

	Title       string
	Publisher   string
	SourceURL   string
	Image       string
	CookingTime int
	Servings    int
	Ingredients []string
}

func AddFileArgs(cmd *cobra.Command, o *UploadOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"Path to a YAML recipe description.")
}

// AddUploadArgs registers the inline recipe flags, the alternative to --file.
func AddUploadArgs(cmd *cobra.Command, o *UploadOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "Recipe title.")
	cmd.Flags().StringVar(&o.Publisher, "publisher", "", "Recipe publisher.")
	cmd.Flags().StringVar(&o.SourceURL, "source-url", "", "Link to the full directions.")
	cmd.Flags().StringVar(&o.Image, "image", "", "Image URL.")
	cmd.Flags().IntVar(&o.CookingTime, "cooking-time", 0, "Cooking time in minutes.")
	cmd.Flags().IntVar(&o.Servings, "servings", 0, "Number of servings.")
	cmd.Flags().StringArrayVarP(&o.Ingredients, "ingredient", "i", nil,
		"Ingredient as 'quantity,unit,description'. Repeatable.")
}
