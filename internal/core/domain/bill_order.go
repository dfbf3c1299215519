package domain

// BillOrder is the user's manual ordering of the upcoming-bills view. It is a
// display-only preference layered over the canonical due-date ordering and
// must never influence balance calculation. The version supports optimistic
// concurrency on updates.
type BillOrder struct {
	TransactionIDs []string `json:"transactionIDs"`
	Version        int64    `json:"version"`
	AuditFields
}
