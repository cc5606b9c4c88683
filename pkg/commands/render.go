package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/uikit/pkg/commands/options"
	"tableflip.dev/uikit/pkg/runner/render"
)

func addRender(topLevel *cobra.Command) {
	po := &options.PageOptions{}
	wo := &options.WidthOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Mount a page and print the markup of every widget.",
		Example: `
uikit render
uikit render -f page.yaml --width 100
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			r := render.Render{
				File:   po.File,
				Width:  wo.Width,
				Skins:  e.skins,
				Logger: e.log,
				Out:    cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}

	options.AddPageArgs(cmd, po)
	options.AddWidthArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
