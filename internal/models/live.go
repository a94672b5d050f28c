package models

// LiveGameInfo is the poller's per-player snapshot entry: what a monitored
// player is doing right now. It lives for one poll cycle plus the next one
// (needed for diffing) and is never persisted.
type LiveGameInfo struct {
	RiotID       string
	SummonerName string
	ChampionName string
	ChampionID   int64
	GameMode     string
	Duration     string
}
