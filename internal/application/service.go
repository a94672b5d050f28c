package application

import (
	"context"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
	"github.com/SamuelCarmona83/capitan-coditos/internal/repository"
	"github.com/SamuelCarmona83/capitan-coditos/internal/riot"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// AIProvider generates one sarcastic commentary string per request.
type AIProvider interface {
	Commentary(ctx context.Context, req models.CommentaryRequest) (string, error)
}

// RiotAPI is the slice of the Riot client the services use; faked in tests.
type RiotAPI interface {
	GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error)
	GetSummonerByPUUID(ctx context.Context, puuid string) (*riot.Summoner, error)
	GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, matchID string) (*riot.Match, error)
	GetActiveGame(ctx context.Context, puuid string) (*riot.LiveGame, error)
}

// ChampionData resolves champion ids and builds asset URLs.
type ChampionData interface {
	ChampionName(ctx context.Context, championID int64) string
	ChampionIconURL(championName string) string
	ChampionSplashURL(championName string) string
	ProfileIconURL(profileIconID int) string
}

type Service struct {
	Roster RosterService
	Match  MatchService
}

func NewService(repos *repository.Repository, riotAPI RiotAPI, champions ChampionData, ai AIProvider, logger Logger) *Service {
	return &Service{
		Roster: NewRosterServiceImpl(repos.Summoner, logger),
		Match:  NewMatchServiceImpl(riotAPI, champions, ai, logger),
	}
}
