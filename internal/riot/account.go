package riot

import (
	"context"
	"fmt"
	"net/url"
)

// Account is a Riot account from the Account-V1 API.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the platform-scoped profile from the Summoner-V4 API; it
// carries the profile icon and level shown in embed author lines.
type Summoner struct {
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// GetAccountByRiotID resolves a GameName/TagLine pair into an account.
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.regionalURL, url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.get(ctx, endpoint, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetSummonerByPUUID fetches the profile from the first platform that knows
// the player. Platforms that answer 404 are skipped.
func (c *Client) GetSummonerByPUUID(ctx context.Context, puuid string) (*Summoner, error) {
	var lastErr error = ErrNotFound
	for _, platform := range c.platforms {
		endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
			c.platformURL(platform), puuid)

		var summoner Summoner
		err := c.get(ctx, endpoint, &summoner)
		if err == nil {
			return &summoner, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
