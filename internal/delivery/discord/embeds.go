package discord

import (
	"fmt"
	"strings"

	"github.com/SamuelCarmona83/capitan-coditos/internal/application"
	"github.com/SamuelCarmona83/capitan-coditos/internal/models"

	"github.com/bwmarrin/discordgo"
)

func resultWord(win bool) string {
	if win {
		return "Victory"
	}
	return "Defeat"
}

func resultColor(win bool) int {
	if win {
		return colorVictory
	}
	return colorDefeat
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func (b *Bot) matchEmbed(report *application.MatchReport) *discordgo.MessageEmbed {
	p := report.Participant
	stats := report.Stats

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Last match of %s", report.GameName),
		Description: fmt.Sprintf("**%s** | KDA %d/%d/%d (`%.2f`) | %d min",
			resultWord(p.Win), stats.Kills, stats.Deaths, stats.Assists, stats.KDA, stats.DurationMinutes),
		Color: resultColor(p.Win),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Champion",
				Value:  fmt.Sprintf("%s (level %d)", p.ChampionName, stats.ChampLevel),
				Inline: true,
			},
			{
				Name:   "Mode",
				Value:  gameModeName(report.GameMode),
				Inline: true,
			},
			{
				Name: "Farm",
				Value: fmt.Sprintf("%d %s | %d %s",
					stats.PrimaryFarm, stats.PrimaryFarmType,
					stats.SecondaryFarm, stats.SecondaryFarmType),
				Inline: true,
			},
			{
				Name: "Damage & Gold",
				Value: fmt.Sprintf("%d dmg to champions | %d gold",
					stats.DamageToChampions, stats.GoldEarned),
				Inline: true,
			},
			{
				Name:   "Vision",
				Value:  fmt.Sprintf("%d", stats.VisionScore),
				Inline: true,
			},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: b.champs.ChampionIconURL(p.ChampionName),
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}

	// A pentakill earns the full splash art.
	if stats.PentaKills > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Pentakills",
			Value:  fmt.Sprintf("%d 🔥", stats.PentaKills),
			Inline: true,
		})
		embed.Image = &discordgo.MessageEmbedImage{
			URL: b.champs.ChampionSplashURL(p.ChampionName),
		}
	}

	if report.Profile != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    fmt.Sprintf("%s | Level %d", report.RiotID, report.Profile.SummonerLevel),
			IconURL: b.champs.ProfileIconURL(report.Profile.ProfileIconID),
		}
	}

	switch {
	case report.Commentary != "":
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "The Captain says",
			Value: truncate(report.Commentary, maxCommentaryLength),
		})
	case !report.Analyzable:
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "The Captain says",
			Value: "Too short to judge. Probably a remake. You got lucky this time.",
		})
	}

	return embed
}

func (b *Bot) teamAnalysisEmbed(analysis *application.TeamAnalysis) *discordgo.MessageEmbed {
	worst := analysis.Worst

	deaths := worst.Deaths
	if deaths == 0 {
		deaths = 1
	}
	kda := float64(worst.Kills+worst.Assists) / float64(deaths)

	embed := &discordgo.MessageEmbed{
		Title: "Worst teammate found",
		Description: fmt.Sprintf("**%s** on %s: %d/%d/%d (`%.2f` KDA) with %d damage in %d minutes.",
			analysis.WorstName, worst.ChampionName,
			worst.Kills, worst.Deaths, worst.Assists, kda,
			worst.TotalDamageDealtToChampions, analysis.DurationMinutes),
		Color:  colorPurple,
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: b.champs.ChampionIconURL(worst.ChampionName),
		},
	}

	if analysis.Commentary != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "The Captain says",
			Value: truncate(analysis.Commentary, maxCommentaryLength),
		})
	}

	if analysis.WorstName == analysis.Requester.DisplayName() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Awkward",
			Value: "The worst player on your team was you.",
		})
	}

	return embed
}

func (b *Bot) historyEmbed(report *application.HistoryReport) *discordgo.MessageEmbed {
	var sb strings.Builder
	for idx, mr := range report.Matches {
		marker := "❌"
		if mr.Participant.Win {
			marker = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s `%d` **%s** %d/%d/%d | %s | %d min\n",
			marker, idx+1, mr.Participant.ChampionName,
			mr.Stats.Kills, mr.Stats.Deaths, mr.Stats.Assists,
			gameModeName(mr.GameMode), mr.DurationMinutes))
	}

	color := colorNeutral
	switch {
	case report.WinRate >= 60:
		color = colorVictory
	case report.WinRate < 40:
		color = colorDefeat
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Match history of %s", report.RiotID),
		Description: sb.String(),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Winrate", Value: fmt.Sprintf("%.0f%% (%d/%d)", report.WinRate, report.Wins, len(report.Matches)), Inline: true},
			{Name: "Avg KDA", Value: fmt.Sprintf("%.2f", report.AvgKDA), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}

	if report.Profile != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    fmt.Sprintf("%s | Level %d", report.RiotID, report.Profile.SummonerLevel),
			IconURL: b.champs.ProfileIconURL(report.Profile.ProfileIconID),
		}
	}

	return embed
}

// historyButtons builds one detail button per listed match. The custom id is
// self-contained so a button press can rebuild the report without any
// server-side state.
func historyButtons(report *application.HistoryReport) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(report.Matches))
	for idx, mr := range report.Matches {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%d", idx+1),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("matchdetail:%s:%s", report.RiotID, mr.MatchID),
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

func (b *Bot) activeGamesEmbed(infos []models.LiveGameInfo) *discordgo.MessageEmbed {
	byMode := make(map[string][]models.LiveGameInfo)
	var order []string
	for _, info := range infos {
		if _, ok := byMode[info.GameMode]; !ok {
			order = append(order, info.GameMode)
		}
		byMode[info.GameMode] = append(byMode[info.GameMode], info)
	}

	embed := &discordgo.MessageEmbed{
		Title:  "🎮 Players in game right now",
		Color:  colorLive,
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}

	for _, mode := range order {
		var sb strings.Builder
		for _, info := range byMode[mode] {
			name := info.SummonerName
			if len(name) > maxLiveNameLength {
				name = name[:maxLiveNameLength]
			}
			sb.WriteString(fmt.Sprintf("**%s** as %s (%s)\n",
				name, info.ChampionName, info.Duration))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  mode,
			Value: sb.String(),
		})
	}

	return embed
}

func activeGamesText(infos []models.LiveGameInfo) string {
	var sb strings.Builder
	sb.WriteString("🎮 **Players in game right now**\n")
	for _, info := range infos {
		sb.WriteString(fmt.Sprintf("• %s as %s in %s (%s)\n",
			info.RiotID, info.ChampionName, info.GameMode, info.Duration))
	}
	return sb.String()
}

func dbStatsEmbed(stats models.StoreStats) *discordgo.MessageEmbed {
	avg := 0.0
	if stats.TotalSummoners > 0 {
		avg = float64(stats.TotalSearches) / float64(stats.TotalSummoners)
	}

	return &discordgo.MessageEmbed{
		Title: "Search history",
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Players tracked", Value: fmt.Sprintf("%d", stats.TotalSummoners), Inline: true},
			{Name: "Total searches", Value: fmt.Sprintf("%d", stats.TotalSearches), Inline: true},
			{Name: "Avg per player", Value: fmt.Sprintf("%.1f", avg), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}
}
