// Package cmd defines the CLI entry for the leaderscraper executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/courtside/leaderscraper/internal/app"
)

var (
	cfgFile   string
	outputDir string
)

// newRootCmd creates and configures the root command. The tool has no
// subcommands: running it drops straight into the interactive prompt loop.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderscraper",
		Short: "Scrape NBA statistical leaders from Basketball Reference.",
		Long: `leaderscraper fetches the Basketball Reference season leaders page,
extracts the top-15 leaderboard for a chosen statistic, prints it as a
table, and saves a timestamped CSV under the output directory.`,
		SilenceUsage: true,
		RunE:         runShell,
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or $HOME/.leaderscraper/config.yaml)")
	cmd.Flags().StringVar(&outputDir, "output", "", "override the CSV output directory")

	return cmd
}

func runShell(cmd *cobra.Command, _ []string) error {
	application, err := app.New(cfgFile, outputDir, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("initialize application services: %w", err)
	}
	defer application.Close()

	if err := application.GetShell().Run(cmd.Context()); err != nil {
		application.GetLogger().Error("shell terminated", zap.Error(err))
		return err
	}
	return nil
}

// Execute is the main entry point.
func Execute() {
	root := newRootCmd()
	root.SetIn(os.Stdin)
	root.SetOut(os.Stdout)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
