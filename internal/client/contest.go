package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wallet-ledger/internal/model"
)

// ContestClient resolves contest and match ids to display details.
type ContestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewContestClient(baseURL string, timeout time.Duration) *ContestClient {
	return &ContestClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(timeout),
	}
}

func (c *ContestClient) ContestsByIDs(ctx context.Context, ids []string) (map[string]model.ContestDetails, error) {
	out := make(map[string]model.ContestDetails, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var contests []model.ContestDetails
	u := c.baseURL + "/api/contest/details-by-ids?ids=" + url.QueryEscape(strings.Join(ids, ","))
	if err := getJSON(ctx, c.httpClient, "contest", u, &contests); err != nil {
		return nil, err
	}
	for _, ct := range contests {
		out[ct.ID] = ct
	}
	return out, nil
}

func (c *ContestClient) MatchesByIDs(ctx context.Context, ids []string) (map[string]model.MatchDetails, error) {
	out := make(map[string]model.MatchDetails, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var matches []model.MatchDetails
	u := c.baseURL + "/api/contest/match/details-by-ids?ids=" + url.QueryEscape(strings.Join(ids, ","))
	if err := getJSON(ctx, c.httpClient, "match", u, &matches); err != nil {
		return nil, err
	}
	for _, m := range matches {
		if m.MatchID != "" {
			out[m.MatchID] = m
		}
		out[m.ID] = m
	}
	return out, nil
}
