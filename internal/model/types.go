package model

type EntryType string

const (
	EntryDeposit    EntryType = "deposit"
	EntryWithdraw   EntryType = "withdraw"
	EntryDeduct     EntryType = "deduct"
	EntryWinning    EntryType = "winning"
	EntryCashback   EntryType = "cashback"
	EntryBonus      EntryType = "bonus"
	EntryRefund     EntryType = "refund"
	EntryConversion EntryType = "conversion"
	EntryTDS        EntryType = "tds"
)

func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case EntryDeposit, EntryWithdraw, EntryDeduct, EntryWinning, EntryCashback,
		EntryBonus, EntryRefund, EntryConversion, EntryTDS:
		return t, nil
	default:
		return "", ErrInvalidEntryType
	}
}

// ParseCreditType accepts only the entry types that the generic credit
// operation may produce.
func ParseCreditType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case EntryWinning, EntryCashback, EntryBonus:
		return t, nil
	default:
		return "", ErrInvalidEntryType
	}
}

func (t EntryType) String() string {
	return string(t)
}

type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "Pending"
	WithdrawalProcessing WithdrawalStatus = "Processing"
	WithdrawalCompleted  WithdrawalStatus = "Completed"
	WithdrawalFailed     WithdrawalStatus = "Failed"
	WithdrawalRejected   WithdrawalStatus = "Rejected"
)

func ParseWithdrawalStatus(s string) (WithdrawalStatus, error) {
	switch st := WithdrawalStatus(s); st {
	case WithdrawalPending, WithdrawalProcessing, WithdrawalCompleted, WithdrawalFailed, WithdrawalRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s WithdrawalStatus) String() string {
	return string(s)
}

// Terminal reports whether no further transition is allowed out of s.
func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalCompleted || s == WithdrawalFailed || s == WithdrawalRejected
}

// Compensated reports whether reaching s gives the withdrawn amount back to the user.
func (s WithdrawalStatus) Compensated() bool {
	return s == WithdrawalFailed || s == WithdrawalRejected
}

type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByAmount    SortField = "amount"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case "":
		return SortByCreatedAt, nil
	case SortByCreatedAt, SortByAmount:
		return f, nil
	default:
		return "", ErrInvalidSort
	}
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case "":
		return SortDesc, nil
	case SortAsc, SortDesc:
		return o, nil
	default:
		return "", ErrInvalidSort
	}
}
