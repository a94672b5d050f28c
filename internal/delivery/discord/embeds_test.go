package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/SamuelCarmona83/capitan-coditos/internal/application"
	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
	"github.com/SamuelCarmona83/capitan-coditos/internal/riot"
)

type fakeChamps struct{}

func (fakeChamps) ChampionName(ctx context.Context, championID int64) string {
	return fmt.Sprintf("Champ%d", championID)
}
func (fakeChamps) ChampionIconURL(championName string) string {
	return "http://icon/" + championName + ".png"
}
func (fakeChamps) ChampionSplashURL(championName string) string {
	return "http://splash/" + championName + ".jpg"
}
func (fakeChamps) ProfileIconURL(profileIconID int) string {
	return fmt.Sprintf("http://profile/%d.png", profileIconID)
}

func testBot() *Bot {
	return &Bot{champs: fakeChamps{}}
}

func testReport(win bool, commentary string) *application.MatchReport {
	return &application.MatchReport{
		RiotID:   "Tester#LAN",
		GameName: "Tester",
		MatchID:  "LA1_100",
		Participant: &riot.Participant{
			ChampionName: "Jinx", Win: win,
			Kills: 8, Deaths: 4, Assists: 6,
		},
		Profile:         &riot.Summoner{ProfileIconID: 10, SummonerLevel: 120},
		DurationMinutes: 28,
		GameMode:        "CLASSIC",
		Stats: models.StatsSummary{
			Kills: 8, Deaths: 4, Assists: 6, KDA: 3.5,
			DamageToChampions: 22000, GoldEarned: 12000,
			ChampLevel: 16, VisionScore: 24, DurationMinutes: 28,
			PrimaryFarm: 190, PrimaryFarmType: "lane minions",
			SecondaryFarm: 12, SecondaryFarmType: "jungle monsters",
		},
		Analyzable: true,
		Commentary: commentary,
	}
}

func TestMatchEmbed_VictoryColor(t *testing.T) {
	embed := testBot().matchEmbed(testReport(true, "gg"))

	if embed.Color != colorVictory {
		t.Errorf("expected victory color, got %#x", embed.Color)
	}
	if !strings.Contains(embed.Description, "Victory") {
		t.Errorf("description should name the result: %q", embed.Description)
	}
	if embed.Thumbnail == nil || !strings.Contains(embed.Thumbnail.URL, "Jinx") {
		t.Errorf("thumbnail should use the champion icon: %+v", embed.Thumbnail)
	}
	if embed.Author == nil || !strings.Contains(embed.Author.Name, "Level 120") {
		t.Errorf("author line should carry the summoner level: %+v", embed.Author)
	}
}

func TestMatchEmbed_DefeatColor(t *testing.T) {
	embed := testBot().matchEmbed(testReport(false, ""))
	if embed.Color != colorDefeat {
		t.Errorf("expected defeat color, got %#x", embed.Color)
	}
}

func TestMatchEmbed_CommentaryTruncated(t *testing.T) {
	long := strings.Repeat("x", 2000)
	embed := testBot().matchEmbed(testReport(true, long))

	var found bool
	for _, f := range embed.Fields {
		if f.Name == "The Captain says" {
			found = true
			if len(f.Value) > maxCommentaryLength {
				t.Errorf("commentary field too long: %d", len(f.Value))
			}
		}
	}
	if !found {
		t.Error("commentary field missing")
	}
}

func TestMatchEmbed_RemakeNote(t *testing.T) {
	report := testReport(true, "")
	report.Analyzable = false

	embed := testBot().matchEmbed(report)
	var found bool
	for _, f := range embed.Fields {
		if f.Name == "The Captain says" && strings.Contains(f.Value, "remake") {
			found = true
		}
	}
	if !found {
		t.Error("expected a remake note instead of commentary")
	}
}

func TestMatchEmbed_PentakillSplash(t *testing.T) {
	report := testReport(true, "gg")
	report.Stats.PentaKills = 1

	embed := testBot().matchEmbed(report)
	if embed.Image == nil || !strings.Contains(embed.Image.URL, "Jinx") {
		t.Errorf("pentakill games should show the splash art: %+v", embed.Image)
	}
}

func TestHistoryEmbed_WinRateColor(t *testing.T) {
	report := &application.HistoryReport{
		RiotID:  "Tester#LAN",
		Matches: []*application.MatchReport{testReport(true, ""), testReport(true, "")},
		Wins:    2, WinRate: 100, AvgKDA: 3.5,
	}

	embed := testBot().historyEmbed(report)
	if embed.Color != colorVictory {
		t.Errorf("100%% winrate should color green, got %#x", embed.Color)
	}

	report.WinRate = 20
	if embed := testBot().historyEmbed(report); embed.Color != colorDefeat {
		t.Errorf("20%% winrate should color red, got %#x", embed.Color)
	}
}

func TestHistoryButtons_CustomIDs(t *testing.T) {
	report := &application.HistoryReport{
		RiotID:  "Tester#LAN",
		Matches: []*application.MatchReport{testReport(true, "")},
	}

	components := historyButtons(report)
	if len(components) != 1 {
		t.Fatalf("expected one action row, got %d", len(components))
	}
}

func TestActiveGamesEmbed_GroupsByMode(t *testing.T) {
	infos := []models.LiveGameInfo{
		{RiotID: "A#1", SummonerName: "Alice", ChampionName: "Jinx", GameMode: "ARAM", Duration: "5 min"},
		{RiotID: "B#2", SummonerName: "Bob", ChampionName: "Zed", GameMode: "Ranked Solo/Duo", Duration: "12 min"},
		{RiotID: "C#3", SummonerName: "VeryLongSummonerName", ChampionName: "Yasuo", GameMode: "ARAM", Duration: "5 min"},
	}

	embed := testBot().activeGamesEmbed(infos)
	if len(embed.Fields) != 2 {
		t.Fatalf("expected one field per mode, got %d", len(embed.Fields))
	}
	for _, f := range embed.Fields {
		if f.Name == "ARAM" && !strings.Contains(f.Value, "VeryLongSumm") {
			t.Errorf("long names should be truncated to %d chars: %q", maxLiveNameLength, f.Value)
		}
		if f.Name == "ARAM" && strings.Contains(f.Value, "VeryLongSummonerName") {
			t.Errorf("name not truncated: %q", f.Value)
		}
	}
}

func TestDBStatsEmbed_Average(t *testing.T) {
	embed := dbStatsEmbed(models.StoreStats{TotalSummoners: 4, TotalSearches: 10})

	var found bool
	for _, f := range embed.Fields {
		if f.Name == "Avg per player" && f.Value == "2.5" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected average 2.5 in fields: %+v", embed.Fields)
	}
}

func TestUserErrorMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{models.ErrInvalidRiotID, "GameName#TagLine"},
		{riot.ErrNotFound, "not found"},
		{riot.ErrRateLimited, "rate limiting"},
		{models.ErrNoMatches, "no recent matches"},
		{errors.New("boom"), "Something went wrong"},
	}

	for _, tc := range cases {
		got := userErrorMessage("Tester#LAN", tc.err)
		if !strings.Contains(got, tc.want) {
			t.Errorf("error %v: expected %q in %q", tc.err, tc.want, got)
		}
	}
}

func TestGameModeName(t *testing.T) {
	if got := gameModeName("CLASSIC"); got != "Summoner's Rift" {
		t.Errorf("expected Summoner's Rift, got %q", got)
	}
	if got := gameModeName("SOMETHINGNEW"); got != "SOMETHINGNEW" {
		t.Errorf("unknown modes should pass through, got %q", got)
	}
}
