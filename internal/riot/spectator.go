package riot

import (
	"context"
	"errors"
	"fmt"
)

// LiveGame is an in-progress game from the Spectator-V5 API.
type LiveGame struct {
	GameID            int64             `json:"gameId"`
	GameMode          string            `json:"gameMode"`
	GameQueueConfigID int64             `json:"gameQueueConfigId"`
	GameStartTime     int64             `json:"gameStartTime"` // unix ms
	PlatformID        string            `json:"platformId"`
	Participants      []LiveParticipant `json:"participants"`
}

type LiveParticipant struct {
	PUUID        string `json:"puuid"`
	SummonerName string `json:"summonerName"`
	RiotID       string `json:"riotId"`
	ChampionID   int64  `json:"championId"`
	TeamID       int64  `json:"teamId"`
}

// GetActiveGame probes the configured platforms in order. Spectator data is
// sharded per platform, so a 404 only means "not live there" and the next
// platform is tried. Any other failure is logged and also treated as
// try-next. ErrNotInGame is returned once every platform is exhausted.
func (c *Client) GetActiveGame(ctx context.Context, puuid string) (*LiveGame, error) {
	for _, platform := range c.platforms {
		endpoint := fmt.Sprintf("%s/lol/spectator/v5/active-games/by-summoner/%s",
			c.platformURL(platform), puuid)

		var game LiveGame
		err := c.get(ctx, endpoint, &game)
		if err == nil {
			c.logger.Debug("active game found", "platform", platform, "gameId", game.GameID)
			return &game, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		c.logger.Warn("active game probe failed", "platform", platform, "error", err.Error())
	}
	return nil, ErrNotInGame
}

// FindLiveParticipant locates the watched player inside a live game,
// falling back to the first participant when the lobby data is anonymized.
func (g *LiveGame) FindLiveParticipant(puuid, riotID string) *LiveParticipant {
	for i := range g.Participants {
		p := &g.Participants[i]
		if p.PUUID == puuid || (riotID != "" && p.RiotID == riotID) {
			return p
		}
	}
	if len(g.Participants) > 0 {
		return &g.Participants[0]
	}
	return nil
}
