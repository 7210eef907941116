package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-devfinder/internal/format"
)

func (a *App) newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search GitHub users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, strings.Join(args, " "))
		},
	}
	cmd.Flags().Bool("json", false, "Print the resulting state as JSON")
	return cmd
}

func (a *App) runSearch(cmd *cobra.Command, query string) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("search query must not be blank")
	}
	if err := a.ensureFinder(); err != nil {
		return err
	}
	ctx := context.Background()
	asJSON, _ := cmd.Flags().GetBool("json")
	w := cmd.OutOrStdout()

	snap := a.Finder.Search(ctx, query)
	if snap.Error != "" {
		return errors.New(snap.Error)
	}

	if asJSON {
		return format.WriteJSON(w, snap, a.Config.SlackMode)
	}

	if len(snap.Users) == 0 {
		fmt.Fprintln(w, format.EmptyState(true, snap.Query))
		return nil
	}

	if a.Config.SlackMode {
		fmt.Fprintf(w, "Developers matching %q: *%d*\n", snap.Query, len(snap.Users))
		fmt.Fprintln(w, "```")
	} else {
		fmt.Fprintf(w, "Developers matching %q: %d\n", snap.Query, len(snap.Users))
	}
	for _, u := range snap.Users {
		fmt.Fprintln(w, format.ProfileCard(u))
	}
	if a.Config.SlackMode {
		fmt.Fprintln(w, "```")
	}
	return nil
}
