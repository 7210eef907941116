package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stahnma/gh-devfinder/internal/github"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	loginStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7c3aed")).Bold(true)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// ProfileLine renders a one-line summary used in result lists.
func ProfileLine(p github.Profile, selected bool) string {
	marker := "  "
	name := titleStyle.Render(p.DisplayName())
	if selected {
		marker = selectedStyle.Render("> ")
		name = selectedStyle.Render(p.DisplayName())
	}
	return fmt.Sprintf("%s%s %s  %s followers · %s repos",
		marker, name, loginStyle.Render("@"+p.Login), Count(p.Followers), Count(p.PublicRepos))
}

// ProfileCard renders a search result card.
func ProfileCard(p github.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(p.DisplayName()), loginStyle.Render("@"+p.Login))
	if p.Bio != "" {
		fmt.Fprintln(&b, p.Bio)
	}
	var meta []string
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	meta = append(meta, "Joined "+Date(p.CreatedAt))
	fmt.Fprintln(&b, mutedStyle.Render(strings.Join(meta, " · ")))
	fmt.Fprintf(&b, "%s followers · %s repos", Count(p.Followers), Count(p.PublicRepos))
	return cardStyle.Render(b.String())
}

// ProfileDetails renders the full profile header of the detail view.
func ProfileDetails(p github.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(p.DisplayName()), loginStyle.Render("@"+p.Login))
	if p.Bio != "" {
		fmt.Fprintf(&b, "%s\n", p.Bio)
	}
	fields := []struct{ label, value string }{
		{"Company", p.Company},
		{"Location", p.Location},
		{"Website", URL(p.Blog)},
		{"Email", p.Email},
		{"Twitter", twitterHandle(p.TwitterUsername)},
		{"Profile", p.HTMLURL},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render(f.label+":"), f.value)
		}
	}
	fmt.Fprintf(&b, "%s followers · %s following · %s repos · %s gists\n",
		Count(p.Followers), Count(p.Following), Count(p.PublicRepos), Count(p.PublicGists))
	fmt.Fprintf(&b, "%s", mutedStyle.Render("Joined "+Date(p.CreatedAt)))
	return cardStyle.Render(b.String())
}

func twitterHandle(s string) string {
	if s == "" {
		return ""
	}
	return "@" + s
}

// RepositoryList renders the recent repositories of the detail view.
func RepositoryList(repos []github.Repository) string {
	if len(repos) == 0 {
		return mutedStyle.Render("No public repositories.")
	}
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("Recent Repositories"))
	for _, r := range repos {
		fmt.Fprintf(&b, "\n%s\n", titleStyle.Render(r.Name))
		if r.Description != "" {
			fmt.Fprintln(&b, r.Description)
		}
		var meta []string
		if r.Language != "" {
			meta = append(meta, lipgloss.NewStyle().Foreground(LanguageColor(r.Language)).Render("●")+" "+r.Language)
		}
		meta = append(meta,
			"★ "+Count(r.Stars),
			"⑂ "+Count(r.Forks),
			"Updated "+Date(r.UpdatedAt),
		)
		fmt.Fprintln(&b, mutedStyle.Render(strings.Join(meta, "  ")))
		if r.HTMLURL != "" {
			fmt.Fprintln(&b, loginStyle.Render(r.HTMLURL))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// EmptyState renders the placeholder shown before the first search, or
// after a search that matched nobody.
func EmptyState(searched bool, query string) string {
	if !searched {
		return titleStyle.Render("Discover Amazing Developers") + "\n" +
			mutedStyle.Render("Search for developers on GitHub and explore their profiles and repositories.")
	}
	return titleStyle.Render("No developers found") + "\n" +
		mutedStyle.Render(fmt.Sprintf("We couldn't find any developers matching %q. Try different keywords.", query))
}

// ErrorMessage renders a user-facing error.
func ErrorMessage(msg string) string {
	return errorStyle.Render("Error: ") + msg
}
