package application

import (
	"strings"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
	"github.com/SamuelCarmona83/capitan-coditos/internal/riot"
)

// Fixed per-role expectation profiles fed into commentary prompts.
// Unrecognized roles fall back to the mid-lane profile.
var roleExpectations = map[string]models.RoleExpectations{
	"TOP": {
		FarmImportance:   "high",
		FarmTarget:       150,
		VisionImportance: "medium",
		DamageImportance: "high",
	},
	"MIDDLE": {
		FarmImportance:   "high",
		FarmTarget:       150,
		VisionImportance: "medium",
		DamageImportance: "very high",
	},
	"BOTTOM": {
		FarmImportance:   "very high",
		FarmTarget:       180,
		VisionImportance: "low",
		DamageImportance: "very high",
	},
	"UTILITY": {
		FarmImportance:   "very low",
		FarmTarget:       30,
		VisionImportance: "very high",
		DamageImportance: "low",
	},
	"JUNGLE": {
		FarmImportance:   "high",
		FarmTarget:       120,
		VisionImportance: "high",
		DamageImportance: "high",
	},
}

// IsAnalyzable reports whether a match deserves commentary. Remakes and
// aborted games are filtered out: very short games, early surrenders, and
// near-zero stat lines inside the remake window.
func IsAnalyzable(match *riot.Match, p *riot.Participant) bool {
	minutes := int(match.Info.GameDuration / 60)

	if minutes < minAnalyzableMinutes {
		return false
	}
	if match.Info.GameEndedInEarlySurrender {
		return false
	}
	if p.TotalDamageDealtToChampions < remakeDamageFloor &&
		p.Kills == 0 && p.Deaths <= remakeDeathsCeiling && p.Assists == 0 &&
		minutes < remakeWindowMinutes {
		return false
	}
	return true
}

// DeriveStats computes the per-participant summary used by embeds and
// prompts. Junglers get their neutral-monster count as primary farm; every
// other role counts lane minions first.
func DeriveStats(p *riot.Participant, durationMinutes int) models.StatsSummary {
	role := strings.ToUpper(p.TeamPosition)

	expectations, ok := roleExpectations[role]
	if !ok {
		expectations = roleExpectations["MIDDLE"]
	}

	deaths := p.Deaths
	if deaths == 0 {
		deaths = minDeathsForKDA
	}

	stats := models.StatsSummary{
		Kills:             p.Kills,
		Deaths:            p.Deaths,
		Assists:           p.Assists,
		KDA:               float64(p.Kills+p.Assists) / float64(deaths),
		DamageToChampions: p.TotalDamageDealtToChampions,
		GoldEarned:        p.GoldEarned,
		ChampLevel:        p.ChampLevel,
		VisionScore:       p.VisionScore,
		PentaKills:        p.PentaKills,
		DurationMinutes:   durationMinutes,
		Role:              role,
		Expectations:      expectations,
	}

	if role == "JUNGLE" {
		stats.PrimaryFarm = p.NeutralMinionsKilled
		stats.PrimaryFarmType = "jungle monsters"
		stats.SecondaryFarm = p.TotalMinionsKilled
		stats.SecondaryFarmType = "lane minions"
	} else {
		stats.PrimaryFarm = p.TotalMinionsKilled
		stats.PrimaryFarmType = "lane minions"
		stats.SecondaryFarm = p.NeutralMinionsKilled
		stats.SecondaryFarmType = "jungle monsters"
	}

	return stats
}

// WorstAlly picks the lowest-scoring participant: KDA plus a damage bonus,
// so a 0/8/1 feeding top laner loses to a 2/3/9 support that at least hit
// something.
func WorstAlly(allies []riot.Participant) *riot.Participant {
	if len(allies) == 0 {
		return nil
	}

	worst := &allies[0]
	worstScore := allyScore(worst)
	for i := 1; i < len(allies); i++ {
		if score := allyScore(&allies[i]); score < worstScore {
			worst = &allies[i]
			worstScore = score
		}
	}
	return worst
}

func allyScore(p *riot.Participant) float64 {
	deaths := p.Deaths
	if deaths == 0 {
		deaths = minDeathsForKDA
	}
	kda := float64(p.Kills+p.Assists) / float64(deaths)
	return kda + float64(p.TotalDamageDealtToChampions)/damageScoreDivisor
}
