package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SamuelCarmona83/capitan-coditos/internal/application"
	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
	"github.com/SamuelCarmona83/capitan-coditos/pkg/config"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	session  *discordgo.Session
	services *application.Service
	champs   application.ChampionData
	logger   application.Logger

	adminIDs        map[string]struct{}
	notifyChannelID string
}

func NewBot(cfg *config.Config, services *application.Service, champs application.ChampionData, logger application.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	admins := make(map[string]struct{})
	for _, id := range cfg.AdminUserIDs {
		cleanID := strings.TrimSpace(id)
		if cleanID != "" {
			admins[cleanID] = struct{}{}
		}
	}

	return &Bot{
		session:         s,
		services:        services,
		champs:          champs,
		logger:          logger,
		adminIDs:        admins,
		notifyChannelID: cfg.NotifyChannelID,
	}, nil
}

func (b *Bot) Init() error {
	b.session.AddHandler(b.onInteraction)
	return nil
}

func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway connection: %w", err)
	}

	b.logger.Info("discord bot started, registering slash commands")

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, "", commands)
	if err != nil {
		b.logger.Error("failed to register commands", "error", err)
	} else {
		b.logger.Info("slash commands registered")
	}

	return nil
}

func (b *Bot) Stop() {
	b.session.Close()
}

func (b *Bot) isAdmin(userID string) bool {
	_, ok := b.adminIDs[userID]
	return ok
}

// interactionUserID works for both guild interactions (Member set) and DMs
// (User set).
func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// NotifyActiveGames announces players who just entered a live game. Rendering
// degrades in two steps when the channel rejects the message: embed first,
// then rich text, then a bare name list.
func (b *Bot) NotifyActiveGames(infos []models.LiveGameInfo) {
	if b.notifyChannelID == "" || len(infos) == 0 {
		return
	}

	embed := b.activeGamesEmbed(infos)
	_, err := b.session.ChannelMessageSendEmbed(b.notifyChannelID, embed)
	if err == nil {
		return
	}

	if !isMissingPermission(err) {
		b.logger.Error("failed to send live-game embed", "error", err)
	}

	_, err = b.session.ChannelMessageSend(b.notifyChannelID, activeGamesText(infos))
	if err == nil {
		return
	}
	b.logger.Warn("rich notification failed, falling back to plain text", "error", err)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.RiotID)
	}
	_, err = b.session.ChannelMessageSend(b.notifyChannelID,
		"Now in game: "+strings.Join(names, ", "))
	if err != nil {
		b.logger.Error("failed to send live-game notification", "error", err)
	}
}

// isMissingPermission detects the Discord "Missing Permissions" API error
// that shows up when the bot may not embed links in the channel.
func isMissingPermission(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeMissingPermissions
	}
	return false
}
