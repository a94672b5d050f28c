package discord

const (
	colorVictory = 0x2ECC71
	colorDefeat  = 0xE74C3C
	colorNeutral = 0x95A5A6
	colorGold    = 0xFFD700
	colorBlue    = 0x3498DB
	colorPurple  = 0x9B59B6
	colorLive    = 0x1ABC9C

	maxCommentaryLength   = 1020
	maxAutocompleteChoice = 25
	maxLiveNameLength     = 12

	footerText = "Capitan Coditos"
)

// Map-mode names shown on embeds. Anything unknown falls through as-is.
var gameModeNames = map[string]string{
	"CLASSIC":      "Summoner's Rift",
	"ARAM":         "ARAM",
	"URF":          "URF",
	"CHERRY":       "Arena",
	"NEXUSBLITZ":   "Nexus Blitz",
	"ULTBOOK":      "Ultimate Spellbook",
	"ONEFORALL":    "One for All",
	"TUTORIAL":     "Tutorial",
	"PRACTICETOOL": "Practice Tool",
}

func gameModeName(mode string) string {
	if name, ok := gameModeNames[mode]; ok {
		return name
	}
	return mode
}
