package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wallet-ledger/internal/model"
)

// UserClient looks users up in the identity service.
type UserClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(timeout),
	}
}

// GetUser returns model.ErrUserNotFound for unknown users and
// model.ErrUpstreamUnavailable when the identity service cannot answer.
func (c *UserClient) GetUser(ctx context.Context, userID string) (*model.UserIdentity, error) {
	user := &model.UserIdentity{}
	err := getJSON(ctx, c.httpClient, "user", c.baseURL+"/api/v1/user/by-id/"+url.PathEscape(userID), user)
	if err != nil {
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) && statusErr.status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", model.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: %s", model.ErrUserNotFound, userID)
	}
	return user, nil
}
