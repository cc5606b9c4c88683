package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/uikit/pkg/commands/options"
	"tableflip.dev/uikit/pkg/runner/inspect"
)

func addInspect(topLevel *cobra.Command) {
	po := &options.PageOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   "Mount a page and list the state of every widget.",
		Aliases: []string{"ls"},
		Example: `
uikit inspect
uikit inspect -f page.yaml --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(oo.JSON)
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.log.Sync() }()

			i := inspect.Inspect{
				File:   po.File,
				Skins:  e.skins,
				Logger: e.log,
			}
			if oo.JSON {
				i.JSON = oo.PrintJSON
			}
			return oo.HandleError(i.Do(context.Background()))
		},
	}

	options.AddPageArgs(cmd, po)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
