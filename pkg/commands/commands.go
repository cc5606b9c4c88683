package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "uikit",
		Short: base.Wrap80("Mount, render and drive declarative widget pages from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRender(topLevel)
	addInspect(topLevel)
	addSkins(topLevel)
	addPlay(topLevel)
	addVersion(topLevel)
}
