package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"wallet-ledger/internal/ledger"
)

// OfferClient reads the active promotional deposit offer.
type OfferClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOfferClient(baseURL string, timeout time.Duration) *OfferClient {
	return &OfferClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(timeout),
	}
}

// ActiveDepositOffer returns nil without error when no offer is running.
func (c *OfferClient) ActiveDepositOffer(ctx context.Context) (*ledger.DepositOffer, error) {
	offer := &ledger.DepositOffer{}
	err := getJSON(ctx, c.httpClient, "offer", c.baseURL+"/api/offerRoutes/deposit-offer/active", offer)
	if err != nil {
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) && statusErr.status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if len(offer.Tiers) == 0 {
		return nil, nil
	}
	return offer, nil
}
