package models

// BillOrderPreference is the DB representation of the manual bill ordering.
// It lives in the single-row preferences table; the ID list is stored as a
// JSONB array and the version guards concurrent writers.
type BillOrderPreference struct {
	PreferenceKey  string   `db:"preference_key"`
	TransactionIDs []string `db:"transaction_ids"`
	Version        int64    `db:"version"`
	AuditFields
}
