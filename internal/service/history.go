package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"wallet-ledger/internal/model"

	"golang.org/x/sync/errgroup"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100

	contestIDLength = 24
	matchIDLength   = 36
)

// Contest ids are 24-hex document ids, match ids are UUIDs.
var referencePattern = regexp.MustCompile(`(?i)[0-9a-f]{24}|[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

func normalizeHistoryQuery(q model.HistoryQuery) model.HistoryQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	if q.SortBy == "" {
		q.SortBy = model.SortByCreatedAt
	}
	if q.SortOrder == "" {
		q.SortOrder = model.SortDesc
	}
	return q
}

func collectReferences(entries []*model.LedgerEntry) (contestIDs, matchIDs []string) {
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, id := range referencePattern.FindAllString(e.Reason, -1) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			switch len(id) {
			case contestIDLength:
				contestIDs = append(contestIDs, id)
			case matchIDLength:
				matchIDs = append(matchIDs, id)
			}
		}
	}
	return contestIDs, matchIDs
}

func matchLabel(id string, m model.MatchDetails) string {
	if m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("Match %s...", id[:6])
}

// enrichReason replaces known contest and match ids with display names.
// Unknown ids are left as they are.
func enrichReason(reason string, contests map[string]model.ContestDetails, matches map[string]model.MatchDetails) string {
	return referencePattern.ReplaceAllStringFunc(reason, func(id string) string {
		switch len(id) {
		case contestIDLength:
			if c, ok := contests[id]; ok {
				name := c.Name
				if name == "" {
					name = "Contest"
				}
				value := c.PrizePool
				if value.IsZero() {
					value = c.EntryFee
				}
				return fmt.Sprintf("%s (₹%s)", name, value.String())
			}
			if m, ok := matches[id]; ok {
				return matchLabel(id, m)
			}
		case matchIDLength:
			if m, ok := matches[id]; ok {
				return matchLabel(id, m)
			}
		}
		return id
	})
}

// resolveReferences looks contest and match ids up concurrently. A failing
// lookup only leaves its ids unresolved.
func (s *WalletServiceImpl) resolveReferences(ctx context.Context, contestIDs, matchIDs []string) (map[string]model.ContestDetails, map[string]model.MatchDetails) {
	contests := map[string]model.ContestDetails{}
	matches := map[string]model.MatchDetails{}

	var g errgroup.Group
	if len(contestIDs) > 0 {
		g.Go(func() error {
			found, err := s.contests.ContestsByIDs(ctx, contestIDs)
			if err != nil {
				s.logger.Warn().Err(err).Int("ids", len(contestIDs)).Msg("contest lookup failed")
				return nil
			}
			contests = found
			return nil
		})
	}
	if len(matchIDs) > 0 {
		g.Go(func() error {
			found, err := s.contests.MatchesByIDs(ctx, matchIDs)
			if err != nil {
				s.logger.Warn().Err(err).Int("ids", len(matchIDs)).Msg("match lookup failed")
				return nil
			}
			matches = found
			return nil
		})
	}
	_ = g.Wait()

	return contests, matches
}

func (s *WalletServiceImpl) ListTransactions(ctx context.Context, q model.HistoryQuery) (*model.TransactionListResponse, error) {
	q = normalizeHistoryQuery(q)
	if strings.TrimSpace(q.UserID) == "" {
		return nil, model.ErrWalletNotFound
	}

	entries, total, err := s.ledgerRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	contestIDs, matchIDs := collectReferences(entries)
	if len(contestIDs) > 0 || len(matchIDs) > 0 {
		contests, matches := s.resolveReferences(ctx, contestIDs, matchIDs)
		for _, e := range entries {
			e.Reason = enrichReason(e.Reason, contests, matches)
		}
	}

	totalPages := (total + q.Limit - 1) / q.Limit
	return &model.TransactionListResponse{
		Transactions:      entries,
		TotalTransactions: int64(total),
		TotalPages:        totalPages,
		CurrentPage:       q.Page,
		HasNextPage:       q.Page < totalPages,
		HasPrevPage:       q.Page > 1,
	}, nil
}
