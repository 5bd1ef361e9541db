package matchd

import (
	"context"
	"net/http"
	"net/url"
)

// CreateJob creates a job posting for the owning startup.
func (c *Client) CreateJob(ctx context.Context, posting JobPosting) (JobPosting, error) {
	var out JobPosting
	if err := c.do(ctx, http.MethodPost, "/v1/jobs", posting, &out); err != nil {
		return JobPosting{}, err
	}
	return out, nil
}

// Job fetches a posting by ID.
func (c *Client) Job(ctx context.Context, id string) (JobPosting, error) {
	var out JobPosting
	if err := c.do(ctx, http.MethodGet, "/v1/jobs/"+id, nil, &out); err != nil {
		return JobPosting{}, err
	}
	return out, nil
}

// Jobs lists every posting in creation order.
func (c *Client) Jobs(ctx context.Context) ([]JobPosting, error) {
	var out jobList
	if err := c.do(ctx, http.MethodGet, "/v1/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// JobsByStartup lists one startup's postings.
func (c *Client) JobsByStartup(ctx context.Context, startupID string) ([]JobPosting, error) {
	var out jobList
	path := "/v1/jobs?startup_id=" + url.QueryEscape(startupID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
