package ai

import (
	"fmt"
	"strings"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
)

const systemPrompt = "You are a League of Legends player with acid humor and strong opinions, " +
	"but objective when the performance was actually decent."

// buildPrompt assembles the coach persona prompt around the derived stats.
// Farm and vision lines are role- and mode-specific so the model roasts the
// right thing: junglers for camps, supports for vision, laners for CS.
func buildPrompt(req models.CommentaryRequest) string {
	s := req.Stats

	var farmLine string
	switch s.Role {
	case "JUNGLE":
		farmLine = fmt.Sprintf("Jungle monsters: `%d` | Stolen lane minions: `%d`", s.PrimaryFarm, s.SecondaryFarm)
	case "UTILITY":
		farmLine = fmt.Sprintf("CS: `%d` (fine for a support) | Monsters: `%d`", s.PrimaryFarm, s.SecondaryFarm)
	default:
		farmLine = fmt.Sprintf("Lane minions: `%d` | Jungle monsters: `%d`", s.PrimaryFarm, s.SecondaryFarm)
	}

	var visionLine string
	switch req.GameMode {
	case "ARAM":
		visionLine = "In ARAM neither farm nor vision matter much, but damage to champions is crucial."
	case "CLASSIC":
		visionLine = fmt.Sprintf("Vision score `%d` (it matters on Summoner's Rift)", s.VisionScore)
	default:
		visionLine = "In this game mode vision and farm are less relevant."
	}

	var sb strings.Builder
	sb.WriteString("Act as a brutally honest, sarcastic League of Legends coach.\n")
	sb.WriteString("Write a short message (two sentences maximum) using Discord text formatting:\n")
	sb.WriteString("**bold** for emphasis, *italics* for game terms, __underline__ for names, ")
	sb.WriteString("~~strikethrough~~ for mistakes and `code` for numbers.\n\n")

	fmt.Fprintf(&sb, "Summoner: __**%s**__\n", req.PlayerName)
	fmt.Fprintf(&sb, "Role: `%s`\n", s.Role)
	fmt.Fprintf(&sb, "KDA: `%d/%d/%d` (ratio `%.1f`)\n", s.Kills, s.Deaths, s.Assists, s.KDA)
	fmt.Fprintf(&sb, "Damage to champions: `%d`\n", s.DamageToChampions)
	fmt.Fprintf(&sb, "Game length: `%d min` | Mode: `%s`\n", s.DurationMinutes, req.GameMode)
	fmt.Fprintf(&sb, "Champion: `%s`\n\n", req.ChampionName)

	fmt.Fprintf(&sb, "Farming for %s:\n%s\n", s.Role, farmLine)
	fmt.Fprintf(&sb, "Role expectations: farm importance %s (target ~%d), vision importance %s, damage importance %s.\n",
		s.Expectations.FarmImportance, s.Expectations.FarmTarget,
		s.Expectations.VisionImportance, s.Expectations.DamageImportance)
	sb.WriteString("Note: farm only matters in CLASSIC (Summoner's Rift) games.\n\n")

	sb.WriteString("IMPORTANT, weigh the role when the mode is CLASSIC:\n")
	sb.WriteString("- JUNGLE: judge jungle camps and champion damage, not lane minions.\n")
	sb.WriteString("- UTILITY (support): never criticize low CS, judge vision score instead.\n")
	sb.WriteString("- TOP/MIDDLE/BOTTOM: judge lane farm and champion damage.\n\n")

	fmt.Fprintf(&sb, "Other details: %s\n", visionLine)
	fmt.Fprintf(&sb, "Gold: `%d` (under 10k is poor). Level: `%d` (under 14 is low).\n", s.GoldEarned, s.ChampLevel)
	if s.PentaKills > 0 {
		fmt.Fprintf(&sb, "Pentakills: `%d` (acknowledge it!)\n", s.PentaKills)
	}

	sb.WriteString("\nWrite the message now: exactly one or two sentences, quoting their actual numbers. ")
	sb.WriteString("Use passive-aggressive jabs like \"amazing skills, you almost pass for Silver II\" when they played badly, ")
	sb.WriteString("and an objective, grudging nod to the champion and role when they actually performed.")

	return sb.String()
}
