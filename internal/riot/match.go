package riot

import (
	"context"
	"fmt"
)

// Match is match data from the Match-V5 API.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameDuration              int64         `json:"gameDuration"` // seconds
	GameMode                  string        `json:"gameMode"`
	GameType                  string        `json:"gameType"`
	QueueID                   int           `json:"queueId"`
	GameCreation              int64         `json:"gameCreation"`     // unix ms
	GameEndTimestamp          int64         `json:"gameEndTimestamp"` // unix ms
	GameEndedInEarlySurrender bool          `json:"gameEndedInEarlySurrender"`
	Participants              []Participant `json:"participants"`
}

// Participant is one player's line in a finished match.
type Participant struct {
	PUUID          string `json:"puuid"`
	ParticipantID  int    `json:"participantId"`
	SummonerName   string `json:"summonerName"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`

	ChampionName string `json:"championName"`
	ChampionID   int    `json:"championId"`
	ChampLevel   int    `json:"champLevel"`
	TeamID       int    `json:"teamId"`
	TeamPosition string `json:"teamPosition"`
	Win          bool   `json:"win"`

	Kills      int `json:"kills"`
	Deaths     int `json:"deaths"`
	Assists    int `json:"assists"`
	PentaKills int `json:"pentaKills"`

	TotalMinionsKilled          int `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int `json:"neutralMinionsKilled"`
	GoldEarned                  int `json:"goldEarned"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	VisionScore                 int `json:"visionScore"`
}

// GetMatchIDs returns up to count recent match IDs, most recent first.
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	if count <= 0 {
		count = 1
	}
	if count > 100 {
		count = 100
	}

	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		c.regionalURL, puuid, count)

	var matchIDs []string
	if err := c.get(ctx, endpoint, &matchIDs); err != nil {
		return nil, err
	}
	return matchIDs, nil
}

// GetMatch fetches the full match payload.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.regionalURL, matchID)

	var match Match
	if err := c.get(ctx, endpoint, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// FindParticipant locates a participant by PUUID.
func (m *Match) FindParticipant(puuid string) *Participant {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			return &m.Info.Participants[i]
		}
	}
	return nil
}

// DisplayName prefers the modern riot ID game name over the legacy summoner
// name, falling back to a placeholder for fully anonymized participants.
func (p *Participant) DisplayName() string {
	if p.RiotIDGameName != "" {
		return p.RiotIDGameName
	}
	if p.SummonerName != "" {
		return p.SummonerName
	}
	return fmt.Sprintf("Player_%d", p.ParticipantID)
}
