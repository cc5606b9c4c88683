package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/uikit/pkg/commands/options"
	"tableflip.dev/uikit/pkg/runner/play"
)

func addPlay(topLevel *cobra.Command) {
	po := &options.PageOptions{}
	watch := false

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Drive a page interactively in the terminal.",
		Long: `Drive a page interactively in the terminal.

Tab moves focus between widgets, enter activates the focused widget, the
arrow keys step spinners and move through lists and trees. Every widget
event is logged under the page.`,
		Example: `
uikit play
uikit play -f page.yaml --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the program, keep logs in the file.
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			p := play.Play{
				File:   po.File,
				Skins:  e.skins,
				Watch:  watch,
				Delay:  e.cfg.Debounce(),
				Logger: e.log,
			}
			if dir := e.cfg.SkinsPath(); dir != "" {
				if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
					p.SkinsDir = dir
				}
			}
			return p.Do(ctx)
		},
	}

	options.AddPageArgs(cmd, po)
	cmd.Flags().BoolVar(&watch, "watch", false,
		"Remount the page when a skin in the skins directory changes.")

	topLevel.AddCommand(cmd)
}
