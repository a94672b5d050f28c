package riot

import "fmt"

var queueNames = map[int64]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	460:  "Normal 3v3",
	470:  "Ranked 3v3",
	700:  "Clash",
	720:  "ARAM",
	800:  "Co-op vs AI Intermediate",
	810:  "Co-op vs AI Intro",
	820:  "Co-op vs AI Beginner",
	900:  "URF",
	920:  "Poro King",
	1020: "One for All",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
	1700: "Arena",
	1900: "URF",
}

// QueueName returns a human-readable queue name for a live-game queue ID.
func QueueName(queueID int64) string {
	if name, ok := queueNames[queueID]; ok {
		return name
	}
	return fmt.Sprintf("Queue_%d", queueID)
}
