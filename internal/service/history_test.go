package service

import (
	"context"
	"testing"

	"wallet-ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testContestID = "65a1b2c3d4e5f6a7b8c9d0e1"
	testMatchID   = "3f2b8c1e-9a4d-4e2f-8b1a-7c6d5e4f3a2b"
)

func joinReason() string {
	return "Deducted for contest join: Contest(" + testContestID + ") Match(" + testMatchID + ")"
}

func TestNormalizeHistoryQuery(t *testing.T) {
	q := normalizeHistoryQuery(model.HistoryQuery{UserID: "u1", Page: -2, Limit: 500})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, maxPageLimit, q.Limit)
	assert.Equal(t, model.SortByCreatedAt, q.SortBy)
	assert.Equal(t, model.SortDesc, q.SortOrder)

	q = normalizeHistoryQuery(model.HistoryQuery{UserID: "u1", SortBy: model.SortByAmount, SortOrder: model.SortAsc})
	assert.Equal(t, defaultPageLimit, q.Limit)
	assert.Equal(t, model.SortByAmount, q.SortBy)
	assert.Equal(t, model.SortAsc, q.SortOrder)
}

func TestCollectReferences_Deduplicates(t *testing.T) {
	contests, matches := collectReferences([]*model.LedgerEntry{
		{Reason: joinReason()},
		{Reason: "Refund for contest " + testContestID},
		{Reason: "Deposit ₹100.00, GST ₹28.00, Bonus ₹0.00 (No bonus)"},
	})

	assert.Equal(t, []string{testContestID}, contests)
	assert.Equal(t, []string{testMatchID}, matches)
}

func TestEnrichReason(t *testing.T) {
	contests := map[string]model.ContestDetails{
		testContestID: {ID: testContestID, Name: "Mega Contest", PrizePool: d("10000")},
	}
	matches := map[string]model.MatchDetails{
		testMatchID: {MatchID: testMatchID, Name: "IND vs AUS"},
	}

	tests := []struct {
		name     string
		reason   string
		contests map[string]model.ContestDetails
		matches  map[string]model.MatchDetails
		want     string
	}{
		{
			name:     "contest and match resolved",
			reason:   joinReason(),
			contests: contests,
			matches:  matches,
			want:     "Deducted for contest join: Contest(Mega Contest (₹10000)) Match(IND vs AUS)",
		},
		{
			name:   "unknown ids left untouched",
			reason: joinReason(),
			want:   joinReason(),
		},
		{
			name:   "contest without prize pool shows entry fee",
			reason: "Joined " + testContestID,
			contests: map[string]model.ContestDetails{
				testContestID: {Name: "Head to Head", EntryFee: d("49")},
			},
			want: "Joined Head to Head (₹49)",
		},
		{
			name:    "unnamed match gets short label",
			reason:  "Winning for " + testMatchID,
			matches: map[string]model.MatchDetails{testMatchID: {MatchID: testMatchID}},
			want:    "Winning for Match 3f2b8c...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enrichReason(tt.reason, tt.contests, tt.matches))
		})
	}
}

func TestListTransactions_EnrichesAndPaginates(t *testing.T) {
	f := newFixture(t)

	f.ledgerRepo.On("List", mock.Anything, mock.MatchedBy(func(q model.HistoryQuery) bool {
		return q.UserID == "u1" && q.Page == 2 && q.Limit == 10 && q.SortBy == model.SortByCreatedAt
	})).Return([]*model.LedgerEntry{
		{ID: "e1", UserID: "u1", Type: model.EntryDeduct, Amount: d("49"), Reason: joinReason()},
		{ID: "e2", UserID: "u1", Type: model.EntryDeposit, Amount: d("100"), Reason: "Deposit"},
	}, 25, nil)
	f.contests.On("ContestsByIDs", mock.Anything, []string{testContestID}).Return(map[string]model.ContestDetails{
		testContestID: {Name: "Mega Contest", PrizePool: d("10000")},
	}, nil)
	f.contests.On("MatchesByIDs", mock.Anything, []string{testMatchID}).Return(map[string]model.MatchDetails{
		testMatchID: {Name: "IND vs AUS"},
	}, nil)

	resp, err := f.svc.ListTransactions(context.Background(), model.HistoryQuery{UserID: "u1", Page: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.TotalTransactions)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.True(t, resp.HasNextPage)
	assert.True(t, resp.HasPrevPage)
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, "Deducted for contest join: Contest(Mega Contest (₹10000)) Match(IND vs AUS)", resp.Transactions[0].Reason)
	assert.Equal(t, "Deposit", resp.Transactions[1].Reason)
}

func TestListTransactions_LookupFailureKeepsRawReason(t *testing.T) {
	f := newFixture(t)

	f.ledgerRepo.On("List", mock.Anything, mock.Anything).Return([]*model.LedgerEntry{
		{ID: "e1", UserID: "u1", Type: model.EntryDeduct, Amount: d("49"), Reason: joinReason()},
	}, 1, nil)
	f.contests.On("ContestsByIDs", mock.Anything, mock.Anything).Return(nil, model.ErrUpstreamUnavailable)
	f.contests.On("MatchesByIDs", mock.Anything, mock.Anything).Return(nil, model.ErrUpstreamUnavailable)

	resp, err := f.svc.ListTransactions(context.Background(), model.HistoryQuery{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, joinReason(), resp.Transactions[0].Reason)
	assert.Equal(t, 1, resp.TotalPages)
	assert.False(t, resp.HasNextPage)
	assert.False(t, resp.HasPrevPage)
}

func TestListTransactions_EmptyPageSkipsLookups(t *testing.T) {
	f := newFixture(t)
	deposit := model.EntryDeposit

	f.ledgerRepo.On("List", mock.Anything, mock.MatchedBy(func(q model.HistoryQuery) bool {
		return q.Type != nil && *q.Type == model.EntryDeposit
	})).Return([]*model.LedgerEntry{}, 0, nil)

	resp, err := f.svc.ListTransactions(context.Background(), model.HistoryQuery{UserID: "u1", Type: &deposit})

	require.NoError(t, err)
	assert.Empty(t, resp.Transactions)
	assert.Equal(t, 0, resp.TotalPages)
}
