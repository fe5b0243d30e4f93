package terminal

import (
	"io"
	"os"

	"github.com/ngo-tools/grant-forge/pkg/runtime/terminal/commands"
	"github.com/ngo-tools/grant-forge/pkg/runtime/terminal/export"
	"github.com/ngo-tools/grant-forge/pkg/services/config"
	"github.com/ngo-tools/grant-forge/pkg/services/generator"

	"github.com/spf13/cobra"
)

type CLI struct {
	svc      generator.Service
	profiles config.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

type Options struct {
	Service generator.Service
	// Profiles prefill organization fields; nil disables --profile.
	Profiles config.Registry
	Output   io.Writer
}

func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	reporter := export.NewReporter(opts.Output)
	cli := &CLI{
		svc:      opts.Service,
		profiles: opts.Profiles,
		reporter: reporter,
	}
	cli.rootCmd = cli.newRootCmd(opts.Output)

	return cli
}

func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grant-forge",
		Short: "Generate non-profit funding documents",
	}

	rootCmd.AddCommand(commands.NewTypesCmd(c.svc, out))
	rootCmd.AddCommand(commands.NewGenerateCmd(c.svc, c.profiles, c.reporter))

	return rootCmd
}
