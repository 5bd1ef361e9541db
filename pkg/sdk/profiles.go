package matchd

import (
	"context"
	"net/http"
)

// SaveTalent upserts a talent profile under the given subject ID.
func (c *Client) SaveTalent(ctx context.Context, id string, p TalentProfile) (TalentProfile, error) {
	var out TalentProfile
	if err := c.do(ctx, http.MethodPut, "/v1/profiles/talent/"+id, p, &out); err != nil {
		return TalentProfile{}, err
	}
	return out, nil
}

// Talent fetches a talent profile.
func (c *Client) Talent(ctx context.Context, id string) (TalentProfile, error) {
	var out TalentProfile
	if err := c.do(ctx, http.MethodGet, "/v1/profiles/talent/"+id, nil, &out); err != nil {
		return TalentProfile{}, err
	}
	return out, nil
}

// SaveStartup upserts a startup profile under the given subject ID.
func (c *Client) SaveStartup(ctx context.Context, id string, p StartupProfile) (StartupProfile, error) {
	var out StartupProfile
	if err := c.do(ctx, http.MethodPut, "/v1/profiles/startup/"+id, p, &out); err != nil {
		return StartupProfile{}, err
	}
	return out, nil
}

// Startup fetches a startup profile.
func (c *Client) Startup(ctx context.Context, id string) (StartupProfile, error) {
	var out StartupProfile
	if err := c.do(ctx, http.MethodGet, "/v1/profiles/startup/"+id, nil, &out); err != nil {
		return StartupProfile{}, err
	}
	return out, nil
}

// SaveInvestor upserts an investor profile under the given subject ID.
func (c *Client) SaveInvestor(ctx context.Context, id string, p InvestorProfile) (InvestorProfile, error) {
	var out InvestorProfile
	if err := c.do(ctx, http.MethodPut, "/v1/profiles/investor/"+id, p, &out); err != nil {
		return InvestorProfile{}, err
	}
	return out, nil
}

// Investor fetches an investor profile.
func (c *Client) Investor(ctx context.Context, id string) (InvestorProfile, error) {
	var out InvestorProfile
	if err := c.do(ctx, http.MethodGet, "/v1/profiles/investor/"+id, nil, &out); err != nil {
		return InvestorProfile{}, err
	}
	return out, nil
}
