package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-devfinder/internal/format"
	ghub "github.com/stahnma/gh-devfinder/internal/github"
)

// Export is the JSON document produced by the export command.
type Export struct {
	Date  string         `json:"date"`
	Query string         `json:"query"`
	Users []ghub.Profile `json:"users"`
}

func (a *App) newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [query]...",
		Short: "Export search results in JSON format",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if query == "" {
				query = a.Config.DefaultQuery
			}
			return a.ExportJSON(context.Background(), cmd.OutOrStdout(), query)
		},
	}
}

// ExportJSON runs a search for query and writes the results as JSON to w.
func (a *App) ExportJSON(ctx context.Context, w io.Writer, query string) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("export requires a query (argument or DEVFINDER_QUERY)")
	}
	if err := a.ensureFinder(); err != nil {
		return err
	}

	snap := a.Finder.Search(ctx, query)
	if snap.Error != "" {
		return fmt.Errorf("searching %q: %s", query, snap.Error)
	}

	return format.WriteJSON(w, Export{
		Date:  time.Now().Format("2006-Jan-02"),
		Query: snap.Query,
		Users: snap.Users,
	}, a.Config.SlackMode)
}
