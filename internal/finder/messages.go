package finder

import (
	"errors"
	"fmt"

	ghub "github.com/stahnma/gh-devfinder/internal/github"
)

const (
	msgRateLimited  = "GitHub API rate limit exceeded. Please try again later."
	msgNotFound     = "GitHub user not found"
	msgSearchFailed = "An error occurred while searching"
	msgDetailFailed = "An error occurred while fetching user details"
)

// errorMessage flattens a directory error into the text shown to the user.
func errorMessage(err error, fallback string) string {
	var reqErr *ghub.RequestFailedError
	switch {
	case errors.Is(err, ghub.ErrRateLimited):
		return msgRateLimited
	case errors.Is(err, ghub.ErrNotFound):
		return msgNotFound
	case errors.As(err, &reqErr):
		return fmt.Sprintf("GitHub API error: %d", reqErr.StatusCode)
	default:
		return fallback
	}
}
