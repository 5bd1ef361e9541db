package matchd

import (
	"context"
	"net/http"
)

// MatchTalentStartup scores one talent against one startup.
func (c *Client) MatchTalentStartup(ctx context.Context, talentID, startupID string) (MatchResult, error) {
	var out MatchResult
	path := "/v1/matches/talent/" + talentID + "/startup/" + startupID
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return MatchResult{}, err
	}
	return out, nil
}

// MatchStartupInvestor scores one startup against one investor.
func (c *Client) MatchStartupInvestor(ctx context.Context, startupID, investorID string) (MatchResult, error) {
	var out MatchResult
	path := "/v1/matches/startup/" + startupID + "/investor/" + investorID
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return MatchResult{}, err
	}
	return out, nil
}

// RankStartupsForTalent lists every startup scored for one talent, best first.
func (c *Client) RankStartupsForTalent(ctx context.Context, talentID string) ([]MatchResult, error) {
	return c.rank(ctx, "/v1/matches/talent/"+talentID+"/startups")
}

// RankJobsForTalent lists every job posting scored for one talent, best first.
func (c *Client) RankJobsForTalent(ctx context.Context, talentID string) ([]MatchResult, error) {
	return c.rank(ctx, "/v1/matches/talent/"+talentID+"/jobs")
}

// RankTalentForStartup lists every talent scored for one startup, best first.
func (c *Client) RankTalentForStartup(ctx context.Context, startupID string) ([]MatchResult, error) {
	return c.rank(ctx, "/v1/matches/startups/"+startupID+"/talent")
}

// RankInvestorsForStartup lists every investor scored for one startup, best first.
func (c *Client) RankInvestorsForStartup(ctx context.Context, startupID string) ([]MatchResult, error) {
	return c.rank(ctx, "/v1/matches/startups/"+startupID+"/investors")
}

func (c *Client) rank(ctx context.Context, path string) ([]MatchResult, error) {
	var out matchList
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
