package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
	"github.com/SamuelCarmona83/capitan-coditos/internal/riot"
)

type nopLogger struct{}

func (nopLogger) Error(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Debug(format string, v ...interface{}) {}

type fakeRiot struct {
	account    *riot.Account
	accountErr error

	matchIDs    []string
	matchIDsErr error

	matches  map[string]*riot.Match
	matchErr error

	liveGame    *riot.LiveGame
	liveGameErr error
}

func (f *fakeRiot) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return f.account, nil
}

func (f *fakeRiot) GetSummonerByPUUID(ctx context.Context, puuid string) (*riot.Summoner, error) {
	return &riot.Summoner{PUUID: puuid, ProfileIconID: 1, SummonerLevel: 100}, nil
}

func (f *fakeRiot) GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	if f.matchIDsErr != nil {
		return nil, f.matchIDsErr
	}
	if count < len(f.matchIDs) {
		return f.matchIDs[:count], nil
	}
	return f.matchIDs, nil
}

func (f *fakeRiot) GetMatch(ctx context.Context, matchID string) (*riot.Match, error) {
	if f.matchErr != nil {
		return nil, f.matchErr
	}
	m, ok := f.matches[matchID]
	if !ok {
		return nil, riot.ErrNotFound
	}
	return m, nil
}

func (f *fakeRiot) GetActiveGame(ctx context.Context, puuid string) (*riot.LiveGame, error) {
	if f.liveGameErr != nil {
		return nil, f.liveGameErr
	}
	return f.liveGame, nil
}

type fakeChamps struct{}

func (fakeChamps) ChampionName(ctx context.Context, championID int64) string {
	return fmt.Sprintf("Champ%d", championID)
}
func (fakeChamps) ChampionIconURL(championName string) string { return "http://icon/" + championName }
func (fakeChamps) ChampionSplashURL(championName string) string {
	return "http://splash/" + championName
}
func (fakeChamps) ProfileIconURL(profileIconID int) string {
	return fmt.Sprintf("http://profile/%d", profileIconID)
}

type fakeAI struct {
	calls int
	err   error
}

func (f *fakeAI) Commentary(ctx context.Context, req models.CommentaryRequest) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "nice try, " + req.PlayerName, nil
}

func testMatch(puuid string, durationSeconds int64) *riot.Match {
	return &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: "LA1_100"},
		Info: riot.MatchInfo{
			GameDuration: durationSeconds,
			GameMode:     "CLASSIC",
			QueueID:      420,
			Participants: []riot.Participant{
				{
					PUUID: puuid, SummonerName: "tester", ChampionName: "Jinx",
					TeamID: 100, TeamPosition: "BOTTOM",
					Kills: 8, Deaths: 4, Assists: 6,
					TotalDamageDealtToChampions: 22000, TotalMinionsKilled: 190,
				},
				{
					PUUID: "ally-1", SummonerName: "inter", ChampionName: "Yasuo",
					TeamID: 100, TeamPosition: "MIDDLE",
					Kills: 0, Deaths: 11, Assists: 1,
					TotalDamageDealtToChampions: 5000,
				},
				{
					PUUID: "enemy-1", SummonerName: "enemy", ChampionName: "Zed",
					TeamID: 200, Kills: 11, Deaths: 0, Assists: 2,
					TotalDamageDealtToChampions: 30000,
				},
			},
		},
	}
}

func newTestMatchService(r *fakeRiot, ai *fakeAI) *MatchServiceImpl {
	return NewMatchServiceImpl(r, fakeChamps{}, ai, nopLogger{})
}

func TestLastMatch_Success(t *testing.T) {
	r := &fakeRiot{
		account:  &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		matchIDs: []string{"LA1_100"},
		matches:  map[string]*riot.Match{"LA1_100": testMatch("me", 28*60)},
	}
	ai := &fakeAI{}
	svc := newTestMatchService(r, ai)

	report, err := svc.LastMatch(context.Background(), "Tester#LAN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Participant.ChampionName != "Jinx" {
		t.Errorf("wrong participant: %+v", report.Participant)
	}
	if report.DurationMinutes != 28 {
		t.Errorf("expected 28 minutes, got %d", report.DurationMinutes)
	}
	if !report.Analyzable {
		t.Error("a 28 minute game should be analyzable")
	}
	if report.Commentary == "" {
		t.Error("expected commentary for analyzable game")
	}
	if ai.calls != 1 {
		t.Errorf("expected exactly one AI call, got %d", ai.calls)
	}
}

func TestLastMatch_InvalidRiotID(t *testing.T) {
	svc := newTestMatchService(&fakeRiot{}, &fakeAI{})

	_, err := svc.LastMatch(context.Background(), "no-tag-here")
	if !errors.Is(err, models.ErrInvalidRiotID) {
		t.Errorf("expected ErrInvalidRiotID, got %v", err)
	}
}

func TestLastMatch_NoMatches(t *testing.T) {
	r := &fakeRiot{
		account:  &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		matchIDs: nil,
	}
	svc := newTestMatchService(r, &fakeAI{})

	_, err := svc.LastMatch(context.Background(), "Tester#LAN")
	if !errors.Is(err, models.ErrNoMatches) {
		t.Errorf("expected ErrNoMatches, got %v", err)
	}
}

func TestLastMatch_RemakeSkipsAI(t *testing.T) {
	m := testMatch("me", 3*60)
	r := &fakeRiot{
		account:  &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		matchIDs: []string{"LA1_100"},
		matches:  map[string]*riot.Match{"LA1_100": m},
	}
	ai := &fakeAI{}
	svc := newTestMatchService(r, ai)

	report, err := svc.LastMatch(context.Background(), "Tester#LAN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Analyzable {
		t.Error("a 3 minute game should not be analyzable")
	}
	if ai.calls != 0 {
		t.Errorf("AI must not be called for remakes, got %d calls", ai.calls)
	}
}

func TestLastMatch_AIErrorPropagates(t *testing.T) {
	r := &fakeRiot{
		account:  &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		matchIDs: []string{"LA1_100"},
		matches:  map[string]*riot.Match{"LA1_100": testMatch("me", 28*60)},
	}
	svc := newTestMatchService(r, &fakeAI{err: errors.New("quota exceeded")})

	_, err := svc.LastMatch(context.Background(), "Tester#LAN")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected AI error to propagate, got %v", err)
	}
}

func TestAnalyzeMatch_FindsWorstTeammate(t *testing.T) {
	r := &fakeRiot{
		account:  &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		matchIDs: []string{"LA1_100"},
		matches:  map[string]*riot.Match{"LA1_100": testMatch("me", 28*60)},
	}
	svc := newTestMatchService(r, &fakeAI{})

	analysis, err := svc.AnalyzeMatch(context.Background(), "Tester#LAN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.WorstName != "inter" {
		t.Errorf("expected the 0/11/1 mid to be worst, got %q", analysis.WorstName)
	}
	if len(analysis.Allies) != 2 {
		t.Errorf("enemy team should be excluded, got %d allies", len(analysis.Allies))
	}
	if analysis.Commentary == "" {
		t.Error("expected commentary for the worst teammate")
	}
}

func TestHistory_Aggregates(t *testing.T) {
	win := testMatch("me", 25*60)
	win.Info.Participants[0].Win = true
	loss := testMatch("me", 31*60)

	r := &fakeRiot{
		account:  &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		matchIDs: []string{"LA1_1", "LA1_2"},
		matches:  map[string]*riot.Match{"LA1_1": win, "LA1_2": loss},
	}
	svc := newTestMatchService(r, &fakeAI{})

	report, err := svc.History(context.Background(), "Tester#LAN", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(report.Matches))
	}
	if report.Wins != 1 {
		t.Errorf("expected 1 win, got %d", report.Wins)
	}
	if report.WinRate != 50 {
		t.Errorf("expected 50%% winrate, got %v", report.WinRate)
	}
}

func TestHistory_SkipsBrokenMatches(t *testing.T) {
	r := &fakeRiot{
		account:  &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		matchIDs: []string{"LA1_1", "LA1_missing"},
		matches:  map[string]*riot.Match{"LA1_1": testMatch("me", 25*60)},
	}
	svc := newTestMatchService(r, &fakeAI{})

	report, err := svc.History(context.Background(), "Tester#LAN", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Matches) != 1 {
		t.Errorf("unfetchable matches should be skipped, got %d", len(report.Matches))
	}
}

func TestLiveStatus_NotInGame(t *testing.T) {
	r := &fakeRiot{
		account:     &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		liveGameErr: riot.ErrNotInGame,
	}
	svc := newTestMatchService(r, &fakeAI{})

	info, err := svc.LiveStatus(context.Background(), "Tester#LAN")
	if err != nil {
		t.Fatalf("not-in-game must not be an error, got %v", err)
	}
	if info != nil {
		t.Errorf("expected nil info, got %+v", info)
	}
}

func TestLiveStatus_InGame(t *testing.T) {
	r := &fakeRiot{
		account: &riot.Account{PUUID: "me", GameName: "Tester", TagLine: "LAN"},
		liveGame: &riot.LiveGame{
			GameQueueConfigID: 450,
			GameStartTime:     0,
			Participants: []riot.LiveParticipant{
				{PUUID: "me", SummonerName: "tester", ChampionID: 222},
			},
		},
	}
	svc := newTestMatchService(r, &fakeAI{})

	info, err := svc.LiveStatus(context.Background(), "Tester#LAN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("expected live game info")
	}
	if info.GameMode != "ARAM" {
		t.Errorf("queue 450 should map to ARAM, got %q", info.GameMode)
	}
	if info.ChampionName != "Champ222" {
		t.Errorf("expected resolved champion name, got %q", info.ChampionName)
	}
	if info.Duration != "unknown" {
		t.Errorf("zero start time should render as unknown, got %q", info.Duration)
	}
}
