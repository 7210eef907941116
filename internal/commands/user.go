package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-devfinder/internal/format"
)

func (a *App) newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <login>",
		Short: "Show a GitHub user's profile and recent repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUser(cmd, args[0])
		},
	}
	cmd.Flags().Bool("json", false, "Print the profile and repositories as JSON")
	return cmd
}

func (a *App) runUser(cmd *cobra.Command, login string) error {
	if err := a.ensureFinder(); err != nil {
		return err
	}
	ctx := context.Background()
	asJSON, _ := cmd.Flags().GetBool("json")
	w := cmd.OutOrStdout()

	snap := a.Finder.Open(ctx, login)
	if snap.Error != "" {
		return errors.New(snap.Error)
	}
	if snap.Selected == nil {
		return fmt.Errorf("no profile loaded for %s", login)
	}

	if asJSON {
		return format.WriteJSON(w, struct {
			User         any `json:"user"`
			Repositories any `json:"repositories"`
		}{snap.Selected, snap.Repositories}, a.Config.SlackMode)
	}

	fmt.Fprintln(w, format.ProfileDetails(*snap.Selected))
	fmt.Fprintln(w)
	fmt.Fprintln(w, format.RepositoryList(snap.Repositories))
	return nil
}
