package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/genogrid/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI logger is attached to every command's context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "genogrid renders genotype calls as square-cell grids",
		Long:         `genogrid is a CLI tool for rendering genotype calls as a grid of equal square cells on a fixed canvas, optionally tinted per genotype with a generated colour palette.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.completionCommand())

	return root
}
