package options

import (
	"github.com/spf13/cobra"
)

// PageOptions select the page document a command works on.
type PageOptions struct {
	File string
}

func AddPageArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"Page document (YAML). Defaults to the built-in demo page.")
}

// WidthOptions wrap rendered markup.
type WidthOptions struct {
	Width int
}

func AddWidthArgs(cmd *cobra.Command, o *WidthOptions) {
	cmd.Flags().IntVarP(&o.Width, "width", "w", 0,
		"Wrap markup at this many columns; 0 leaves it unwrapped.")
}
