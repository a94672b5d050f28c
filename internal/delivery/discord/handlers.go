package discord

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const commandTimeout = 60 * time.Second

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i.Interaction)
	case discordgo.InteractionApplicationCommand:
		b.dispatchCommand(s, i.Interaction)
	case discordgo.InteractionMessageComponent:
		b.handleMatchButton(s, i.Interaction)
	}
}

func (b *Bot) dispatchCommand(s *discordgo.Session, i *discordgo.Interaction) {
	name := i.ApplicationCommandData().Name

	switch name {
	case "lastmatch":
		b.handleLastMatch(s, i)
	case "analyzematch":
		b.handleAnalyzeMatch(s, i)
	case "matchhistory":
		b.handleMatchHistory(s, i)
	case "dbstats":
		b.handleDBStats(s, i)
	case "export":
		if !b.isAdmin(interactionUserID(i)) {
			b.respondMessage(s, i, "You are not allowed to use this command.", true)
			return
		}
		b.handleExport(s, i)
	}
}

// handleAutocomplete suggests previously searched riot ids. It must answer
// within 3 seconds, so no Riot API calls happen here.
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.Interaction) {
	var prefix string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "riot_id" && opt.Focused {
			prefix = opt.StringValue()
		}
	}

	ids := b.services.Roster.Autocomplete(prefix)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(ids))
	for _, id := range ids {
		if len(choices) == maxAutocompleteChoice {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  id,
			Value: id,
		})
	}

	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		b.logger.Warn("failed to send autocomplete choices", "error", err)
	}
}

func (b *Bot) riotIDValue(i *discordgo.Interaction) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "riot_id" {
			return strings.TrimSpace(opt.StringValue())
		}
	}
	return ""
}

func (b *Bot) handleLastMatch(s *discordgo.Session, i *discordgo.Interaction) {
	riotID := b.riotIDValue(i)
	b.deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	b.services.Roster.RecordSearch(riotID)

	report, err := b.services.Match.LastMatch(ctx, riotID)
	if err != nil {
		b.editWithError(s, i, riotID, err)
		return
	}

	embed := b.matchEmbed(report)
	b.editWithEmbed(s, i, embed, nil)
}

func (b *Bot) handleAnalyzeMatch(s *discordgo.Session, i *discordgo.Interaction) {
	riotID := b.riotIDValue(i)
	b.deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	b.services.Roster.RecordSearch(riotID)

	analysis, err := b.services.Match.AnalyzeMatch(ctx, riotID)
	if err != nil {
		b.editWithError(s, i, riotID, err)
		return
	}

	embed := b.teamAnalysisEmbed(analysis)
	b.editWithEmbed(s, i, embed, nil)
}

func (b *Bot) handleMatchHistory(s *discordgo.Session, i *discordgo.Interaction) {
	riotID := b.riotIDValue(i)
	b.deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	b.services.Roster.RecordSearch(riotID)

	report, err := b.services.Match.History(ctx, riotID, 0)
	if err != nil {
		b.editWithError(s, i, riotID, err)
		return
	}

	embed := b.historyEmbed(report)
	b.editWithEmbed(s, i, embed, historyButtons(report))
}

func (b *Bot) handleDBStats(s *discordgo.Session, i *discordgo.Interaction) {
	stats := b.services.Roster.Stats()
	embed := dbStatsEmbed(stats)

	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
	if err != nil {
		b.logger.Error("failed to respond to dbstats", "error", err)
	}
}

func (b *Bot) handleExport(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	data, err := b.services.Roster.ExportReport()
	if err != nil {
		b.logger.Error("export failed", "error", err)
		content := "Export failed: " + err.Error()
		s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content})
		return
	}

	content := "Here is the search history report."
	_, err = s.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{
			{Name: "summoners.xlsx", Reader: bytes.NewReader(data)},
		},
	})
	if err != nil {
		b.logger.Error("failed to deliver export file", "error", err)
	}
}

// handleMatchButton serves the per-match detail buttons attached to history
// embeds. The custom id encodes everything needed to rebuild the report, so
// buttons keep working across restarts.
func (b *Bot) handleMatchButton(s *discordgo.Session, i *discordgo.Interaction) {
	customID := i.MessageComponentData().CustomID
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != "matchdetail" {
		return
	}
	riotID, matchID := parts[1], parts[2]

	b.deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	report, err := b.services.Match.MatchByID(ctx, riotID, matchID)
	if err != nil {
		b.editWithError(s, i, riotID, err)
		return
	}

	embed := b.matchEmbed(report)
	b.editWithEmbed(s, i, embed, nil)
}

func (b *Bot) deferResponse(s *discordgo.Session, i *discordgo.Interaction) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.logger.Warn("failed to defer interaction", "error", err)
	}
}

func (b *Bot) editWithEmbed(s *discordgo.Session, i *discordgo.Interaction, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	edit := &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}
	if components != nil {
		edit.Components = &components
	}
	if _, err := s.InteractionResponseEdit(i, edit); err != nil {
		b.logger.Error("failed to edit interaction response", "error", err)
	}
}

func (b *Bot) respondMessage(s *discordgo.Session, i *discordgo.Interaction, msg string, ephemeral bool) {
	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   flags,
		},
	})
	if err != nil {
		b.logger.Error("failed to respond to interaction", "error", err)
	}
}

func (b *Bot) editWithError(s *discordgo.Session, i *discordgo.Interaction, riotID string, err error) {
	b.logger.Warn("command failed", "riot_id", riotID, "error", err)
	content := userErrorMessage(riotID, err)
	if _, editErr := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content}); editErr != nil {
		b.logger.Error("failed to edit interaction response", "error", editErr)
	}
}
