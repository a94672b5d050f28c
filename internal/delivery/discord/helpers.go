package discord

import (
	"errors"
	"fmt"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
	"github.com/SamuelCarmona83/capitan-coditos/internal/riot"
)

// userErrorMessage translates service errors into something a Discord user
// can act on. Expected conditions get a warning tone, everything else a
// generic failure.
func userErrorMessage(riotID string, err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidRiotID):
		return fmt.Sprintf("⚠️ `%s` is not a valid riot id. Use the `GameName#TagLine` format.", riotID)
	case errors.Is(err, riot.ErrNotFound):
		return fmt.Sprintf("⚠️ Player `%s` was not found. Check the spelling and the tag.", riotID)
	case errors.Is(err, riot.ErrRateLimited):
		return "⚠️ The Riot API is rate limiting us. Try again in a minute."
	case errors.Is(err, models.ErrNoMatches):
		return fmt.Sprintf("⚠️ `%s` has no recent matches.", riotID)
	default:
		return "❌ Something went wrong processing the request. Try again later."
	}
}
