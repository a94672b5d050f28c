package models

// RoleExpectations are the fixed per-role thresholds fed into commentary
// prompts. Values describe what a decent game looks like for the role.
type RoleExpectations struct {
	FarmImportance   string `json:"farm_importance"`
	FarmTarget       int    `json:"farm_target"`
	VisionImportance string `json:"vision_importance"`
	DamageImportance string `json:"damage_importance"`
}

// StatsSummary is the derived per-participant view used by embeds and
// commentary generation. PrimaryFarm depends on the declared role: jungle
// monsters for junglers, lane minions for everyone else.
type StatsSummary struct {
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
	KDA               float64 `json:"kda"`
	DamageToChampions int     `json:"damage_to_champions"`
	GoldEarned        int     `json:"gold_earned"`
	ChampLevel        int     `json:"champ_level"`
	VisionScore       int     `json:"vision_score"`
	PentaKills        int     `json:"penta_kills"`
	DurationMinutes   int     `json:"duration_minutes"`

	Role              string `json:"role"`
	PrimaryFarm       int    `json:"primary_farm"`
	PrimaryFarmType   string `json:"primary_farm_type"`
	SecondaryFarm     int    `json:"secondary_farm"`
	SecondaryFarmType string `json:"secondary_farm_type"`

	Expectations RoleExpectations `json:"role_expectations"`
}

// CommentaryRequest carries everything a commentary provider needs to roast
// one player's performance.
type CommentaryRequest struct {
	PlayerName   string
	ChampionName string
	GameMode     string
	Stats        StatsSummary
}
