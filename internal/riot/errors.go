package riot

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound maps an upstream HTTP 404.
	ErrNotFound = errors.New("riot: resource not found")

	// ErrRateLimited maps an upstream HTTP 429. The client never retries;
	// callers decide whether to surface, skip or report it.
	ErrRateLimited = errors.New("riot: rate limit exceeded")

	// ErrNotInGame is returned by GetActiveGame when no configured platform
	// reports a live game for the player.
	ErrNotInGame = errors.New("riot: summoner is not in an active game")
)

// APIError carries any other non-2xx upstream response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot: API request failed with status %d: %s", e.StatusCode, e.Body)
}
