package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/uikit/pkg/commands/options"
	"tableflip.dev/uikit/pkg/runner/skins"
)

func addSkins(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "skins",
		Short: "List the skins widgets render with.",
		Long: `List the skins widgets render with.

Skins are html/template files named after the template a widget asks for,
e.g. tpl_button.html. Files in the configured skins directory replace the
built-in skin of the same name.`,
		Example: `
uikit skins
UIKIT_SKINS=./skins uikit skins --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(oo.JSON)
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.log.Sync() }()

			s := skins.Skins{
				Registry:  e.skins,
				Overrides: e.overrides,
			}
			if oo.JSON {
				s.JSON = oo.PrintJSON
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
