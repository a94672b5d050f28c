package datadragon

import "fmt"

// Champion display names whose Data Dragon asset key differs from the name.
var specialAssetNames = map[string]string{
	"Wukong":         "MonkeyKing",
	"Nunu & Willump": "Nunu",
	"Cho'Gath":       "Chogath",
	"Kai'Sa":         "Kaisa",
	"Kha'Zix":        "Khazix",
	"Kog'Maw":        "KogMaw",
	"LeBlanc":        "Leblanc",
	"Vel'Koz":        "Velkoz",
	"Rek'Sai":        "RekSai",
	"Renata Glasc":   "Renata",
	"Bel'Veth":       "Belveth",
}

func assetName(championName string) string {
	if asset, ok := specialAssetNames[championName]; ok {
		return asset
	}
	return championName
}

// ChampionIconURL builds the square champion icon URL for embeds.
func (c *Client) ChampionIconURL(championName string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", c.baseURL, c.Version(), assetName(championName))
}

// ProfileIconURL builds the summoner profile icon URL.
func (c *Client) ProfileIconURL(profileIconID int) string {
	return fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", c.baseURL, c.Version(), profileIconID)
}

// ChampionSplashURL builds the default splash art URL.
func (c *Client) ChampionSplashURL(championName string) string {
	return fmt.Sprintf("%s/cdn/img/champion/splash/%s_0.jpg", c.baseURL, assetName(championName))
}
