package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
	"github.com/SamuelCarmona83/capitan-coditos/internal/riot"
)

// MatchService resolves riot ids, fetches match data and asks the AI
// provider for commentary.
type MatchService interface {
	LastMatch(ctx context.Context, riotID string) (*MatchReport, error)
	MatchByID(ctx context.Context, riotID, matchID string) (*MatchReport, error)
	History(ctx context.Context, riotID string, count int) (*HistoryReport, error)
	AnalyzeMatch(ctx context.Context, riotID string) (*TeamAnalysis, error)
	LiveStatus(ctx context.Context, riotID string) (*models.LiveGameInfo, error)
}

// MatchReport is everything one match embed needs.
type MatchReport struct {
	RiotID          string
	GameName        string
	MatchID         string
	Match           *riot.Match
	Participant     *riot.Participant
	Profile         *riot.Summoner
	DurationMinutes int
	GameMode        string
	Stats           models.StatsSummary
	Analyzable      bool
	Commentary      string
}

// HistoryReport aggregates the player's recent matches.
type HistoryReport struct {
	RiotID  string
	Profile *riot.Summoner
	Matches []*MatchReport
	Wins    int
	WinRate float64
	AvgKDA  float64
}

// TeamAnalysis is the result of the worst-teammate hunt.
type TeamAnalysis struct {
	RiotID          string
	Requester       *riot.Participant
	Allies          []riot.Participant
	Worst           *riot.Participant
	WorstName       string
	DurationMinutes int
	Commentary      string
}

type MatchServiceImpl struct {
	riot   RiotAPI
	champs ChampionData
	ai     AIProvider
	logger Logger
}

func NewMatchServiceImpl(riotAPI RiotAPI, champs ChampionData, ai AIProvider, logger Logger) *MatchServiceImpl {
	return &MatchServiceImpl{
		riot:   riotAPI,
		champs: champs,
		ai:     ai,
		logger: logger,
	}
}

func (s *MatchServiceImpl) resolveAccount(ctx context.Context, riotID string) (*riot.Account, error) {
	gameName, tagLine, err := models.ParseRiotID(riotID)
	if err != nil {
		return nil, err
	}
	account, err := s.riot.GetAccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", riotID, err)
	}
	return account, nil
}

// profile fetches the platform-scoped summoner profile. It only feeds the
// embed author line, so a failure is logged and tolerated.
func (s *MatchServiceImpl) profile(ctx context.Context, puuid string) *riot.Summoner {
	summoner, err := s.riot.GetSummonerByPUUID(ctx, puuid)
	if err != nil {
		s.logger.Debug("profile lookup failed", "error", err)
		return nil
	}
	return summoner
}

// LastMatch fetches and analyzes the player's most recent match.
func (s *MatchServiceImpl) LastMatch(ctx context.Context, riotID string) (*MatchReport, error) {
	account, err := s.resolveAccount(ctx, riotID)
	if err != nil {
		return nil, err
	}

	matchIDs, err := s.riot.GetMatchIDs(ctx, account.PUUID, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}
	if len(matchIDs) == 0 {
		return nil, models.ErrNoMatches
	}

	return s.buildReport(ctx, riotID, account, matchIDs[0], true)
}

// MatchByID re-fetches a specific match, used by the detail buttons on
// history embeds.
func (s *MatchServiceImpl) MatchByID(ctx context.Context, riotID, matchID string) (*MatchReport, error) {
	account, err := s.resolveAccount(ctx, riotID)
	if err != nil {
		return nil, err
	}
	return s.buildReport(ctx, riotID, account, matchID, true)
}

func (s *MatchServiceImpl) buildReport(ctx context.Context, riotID string, account *riot.Account, matchID string, withCommentary bool) (*MatchReport, error) {
	match, err := s.riot.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}

	participant := match.FindParticipant(account.PUUID)
	if participant == nil {
		return nil, fmt.Errorf("player %s not found in match %s", riotID, matchID)
	}

	durationMinutes := int(match.Info.GameDuration / 60)
	report := &MatchReport{
		RiotID:          riotID,
		GameName:        account.GameName,
		MatchID:         matchID,
		Match:           match,
		Participant:     participant,
		Profile:         s.profile(ctx, account.PUUID),
		DurationMinutes: durationMinutes,
		GameMode:        match.Info.GameMode,
		Stats:           DeriveStats(participant, durationMinutes),
		Analyzable:      IsAnalyzable(match, participant),
	}

	if withCommentary && report.Analyzable {
		commentary, err := s.ai.Commentary(ctx, models.CommentaryRequest{
			PlayerName:   participant.DisplayName(),
			ChampionName: participant.ChampionName,
			GameMode:     match.Info.GameMode,
			Stats:        report.Stats,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate commentary: %w", err)
		}
		report.Commentary = commentary
	}

	return report, nil
}

// History fetches up to count recent matches and aggregates winrate and
// average KDA. Individual match fetch failures are logged and skipped; the
// report covers whatever survived.
func (s *MatchServiceImpl) History(ctx context.Context, riotID string, count int) (*HistoryReport, error) {
	if count <= 0 {
		count = historyCount
	}

	account, err := s.resolveAccount(ctx, riotID)
	if err != nil {
		return nil, err
	}

	matchIDs, err := s.riot.GetMatchIDs(ctx, account.PUUID, count)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}
	if len(matchIDs) == 0 {
		return nil, models.ErrNoMatches
	}

	report := &HistoryReport{
		RiotID:  riotID,
		Profile: s.profile(ctx, account.PUUID),
	}

	var kdaSum float64
	for _, matchID := range matchIDs {
		mr, err := s.buildReport(ctx, riotID, account, matchID, false)
		if err != nil {
			s.logger.Warn("skipping match in history", "match_id", matchID, "error", err)
			continue
		}
		report.Matches = append(report.Matches, mr)
		if mr.Participant.Win {
			report.Wins++
		}
		kdaSum += mr.Stats.KDA
	}

	if len(report.Matches) == 0 {
		return nil, models.ErrNoMatches
	}
	report.WinRate = float64(report.Wins) / float64(len(report.Matches)) * 100
	report.AvgKDA = kdaSum / float64(len(report.Matches))
	return report, nil
}

// AnalyzeMatch finds the worst-performing teammate in the requester's last
// match and roasts them.
func (s *MatchServiceImpl) AnalyzeMatch(ctx context.Context, riotID string) (*TeamAnalysis, error) {
	account, err := s.resolveAccount(ctx, riotID)
	if err != nil {
		return nil, err
	}

	matchIDs, err := s.riot.GetMatchIDs(ctx, account.PUUID, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}
	if len(matchIDs) == 0 {
		return nil, models.ErrNoMatches
	}

	match, err := s.riot.GetMatch(ctx, matchIDs[0])
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchIDs[0], err)
	}

	requester := match.FindParticipant(account.PUUID)
	if requester == nil {
		return nil, fmt.Errorf("player %s not found in match %s", riotID, matchIDs[0])
	}

	var allies []riot.Participant
	for _, p := range match.Info.Participants {
		if p.TeamID == requester.TeamID {
			allies = append(allies, p)
		}
	}

	worst := WorstAlly(allies)
	if worst == nil {
		return nil, fmt.Errorf("no teammates found in match %s", matchIDs[0])
	}

	durationMinutes := int(match.Info.GameDuration / 60)
	analysis := &TeamAnalysis{
		RiotID:          riotID,
		Requester:       requester,
		Allies:          allies,
		Worst:           worst,
		WorstName:       worst.DisplayName(),
		DurationMinutes: durationMinutes,
	}

	if IsAnalyzable(match, worst) {
		commentary, err := s.ai.Commentary(ctx, models.CommentaryRequest{
			PlayerName:   worst.DisplayName(),
			ChampionName: worst.ChampionName,
			GameMode:     match.Info.GameMode,
			Stats:        DeriveStats(worst, durationMinutes),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate commentary: %w", err)
		}
		analysis.Commentary = commentary
	}

	return analysis, nil
}

// LiveStatus reports whether the player is currently in a game. Not being
// in one is the common case and comes back as (nil, nil).
func (s *MatchServiceImpl) LiveStatus(ctx context.Context, riotID string) (*models.LiveGameInfo, error) {
	account, err := s.resolveAccount(ctx, riotID)
	if err != nil {
		return nil, err
	}

	game, err := s.riot.GetActiveGame(ctx, account.PUUID)
	if err != nil {
		if errors.Is(err, riot.ErrNotInGame) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check active game: %w", err)
	}

	info := &models.LiveGameInfo{
		RiotID:   riotID,
		GameMode: riot.QueueName(game.GameQueueConfigID),
		Duration: formatLiveDuration(game.GameStartTime),
	}

	if p := game.FindLiveParticipant(account.PUUID, riotID); p != nil {
		info.SummonerName = p.SummonerName
		info.ChampionID = p.ChampionID
		info.ChampionName = s.champs.ChampionName(ctx, p.ChampionID)
	}
	if info.SummonerName == "" {
		info.SummonerName = account.GameName
	}

	return info, nil
}
