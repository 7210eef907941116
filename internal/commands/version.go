package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	ghub "github.com/stahnma/gh-devfinder/internal/github"
)

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current version and API endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			sha := a.GitSHA
			if sha == "" {
				sha = "unknown"
			}
			fmt.Fprintf(w, "gh-devfinder %s", sha)
			if a.GitDirty != "" {
				fmt.Fprint(w, " (dirty)")
			}
			fmt.Fprintln(w)

			endpoint := a.Config.APIBaseURL
			if endpoint == "" {
				endpoint = ghub.DefaultAPIBaseURL
			}
			fmt.Fprintf(w, "API endpoint: %s\n", endpoint)
			return nil
		},
	}
}
