package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stahnma/gh-devfinder/internal/config"
	"github.com/stahnma/gh-devfinder/internal/finder"
	ghub "github.com/stahnma/gh-devfinder/internal/github"
	"github.com/stahnma/gh-devfinder/internal/logging"
	"github.com/stahnma/gh-devfinder/internal/state"
)

// App holds shared application state.
type App struct {
	Config   config.Config
	Logger   *logrus.Logger
	GHClient ghub.Client
	Finder   *finder.Finder
	GitSHA   string
	GitDirty string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) *App {
	return &App{
		Config:   cfg,
		Logger:   logging.New(cfg, os.Stderr),
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}
}

// ensureFinder creates the GitHub client and finder if they don't exist.
func (a *App) ensureFinder() error {
	if a.Finder != nil {
		return nil
	}
	if a.GHClient == nil {
		client, err := ghub.NewClient(a.Config.APIBaseURL, nil)
		if err != nil {
			return fmt.Errorf("creating GitHub client: %w", err)
		}
		a.GHClient = client
	}
	a.Finder = finder.New(a.GHClient, state.NewStore(), logging.Component(a.Logger, "finder"))
	return nil
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gh-devfinder",
		Short: "Search GitHub developers and browse their repositories.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.Config.DebugMode {
				a.Logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVar(&a.Config.DebugMode, "debug", a.Config.DebugMode, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.Config.SlackMode, "slack", a.Config.SlackMode, "Wrap output for pasting into Slack")

	rootCmd.AddCommand(a.newSearchCommand())
	rootCmd.AddCommand(a.newUserCommand())
	rootCmd.AddCommand(a.newExportCommand())
	rootCmd.AddCommand(a.newBrowseCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}
