package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferClient_ActiveDepositOffer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/offerRoutes/deposit-offer/active", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tiers":[{"minDeposit":100,"bonusPercentage":10},{"minDeposit":1000,"bonusPercentage":"25"}],"maxBonusAmount":500}`))
	}))
	defer srv.Close()

	offer, err := NewOfferClient(srv.URL+"/", time.Second).ActiveDepositOffer(context.Background())
	require.NoError(t, err)
	require.NotNil(t, offer)
	require.Len(t, offer.Tiers, 2)
	assert.Equal(t, "1000", offer.Tiers[1].MinDeposit.String())
	assert.Equal(t, "25", offer.Tiers[1].BonusPercentage.String())
	assert.Equal(t, "500", offer.MaxBonusAmount.String())
}

func TestOfferClient_NoActiveOffer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	offer, err := NewOfferClient(srv.URL, time.Second).ActiveDepositOffer(context.Background())
	require.NoError(t, err)
	assert.Nil(t, offer)
}

func TestOfferClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewOfferClient(srv.URL, time.Second).ActiveDepositOffer(context.Background())
	assert.Error(t, err)
}

func TestOfferClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewOfferClient(srv.URL, 20*time.Millisecond).ActiveDepositOffer(context.Background())
	assert.Error(t, err)
}

func TestContestClient_ByIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/contest/details-by-ids":
			assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaa,bbbbbbbbbbbbbbbbbbbbbbbb", r.URL.Query().Get("ids"))
			_, _ = w.Write([]byte(`[{"_id":"aaaaaaaaaaaaaaaaaaaaaaaa","name":"Mega","prizePool":10000}]`))
		case "/api/contest/match/details-by-ids":
			_, _ = w.Write([]byte(`[{"_id":"m1","matchId":"123e4567-e89b-12d3-a456-426614174000","name":"IND vs AUS"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewContestClient(srv.URL, time.Second)

	contests, err := c.ContestsByIDs(context.Background(), []string{"aaaaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbbbb"})
	require.NoError(t, err)
	assert.Equal(t, "Mega", contests["aaaaaaaaaaaaaaaaaaaaaaaa"].Name)

	matches, err := c.MatchesByIDs(context.Background(), []string{"123e4567-e89b-12d3-a456-426614174000"})
	require.NoError(t, err)
	assert.Equal(t, "IND vs AUS", matches["123e4567-e89b-12d3-a456-426614174000"].Name)
	assert.Equal(t, "IND vs AUS", matches["m1"].Name)
}

func TestContestClient_EmptyIDsSkipsCall(t *testing.T) {
	c := NewContestClient("http://127.0.0.1:1", time.Second)

	contests, err := c.ContestsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, contests)
}

func TestUserClient_GetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/user/by-id/u1":
			_, _ = w.Write([]byte(`{"_id":"u1","name":"Asha"}`))
		case "/api/v1/user/by-id/empty":
			_, _ = w.Write([]byte(`{}`))
		case "/api/v1/user/by-id/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)
	ctx := context.Background()

	user, err := c.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)

	_, err = c.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = c.GetUser(ctx, "empty")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = c.GetUser(ctx, "broken")
	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
}
