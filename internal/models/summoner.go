package models

import (
	"fmt"
	"strings"
	"time"
)

// SummonerRecord is one row of the search history table. A record is created
// the first time a riot ID is looked up and mutated on every later lookup.
type SummonerRecord struct {
	ID           int       `json:"id" db:"id"`
	RiotID       string    `json:"riot_id" db:"riot_id"`
	GameName     string    `json:"game_name" db:"game_name"`
	TagLine      string    `json:"tag_line" db:"tag_line"`
	SearchCount  int       `json:"search_count" db:"search_count"`
	LastSearched time.Time `json:"last_searched" db:"last_searched"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// StoreStats are aggregate counters over the whole summoners table.
type StoreStats struct {
	TotalSummoners int `json:"total_summoners"`
	TotalSearches  int `json:"total_searches"`
}

// ParseRiotID splits a "Name#Tag" identifier into its components.
func ParseRiotID(riotID string) (gameName, tagLine string, err error) {
	parts := strings.SplitN(riotID, "#", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRiotID, riotID)
	}

	gameName = strings.TrimSpace(parts[0])
	tagLine = strings.TrimSpace(parts[1])
	if gameName == "" || tagLine == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRiotID, riotID)
	}

	return gameName, tagLine, nil
}
