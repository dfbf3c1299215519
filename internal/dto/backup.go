package dto

import "time"

// BackupResponse is the full JSON dump of every collection, for manual
// export/import.
type BackupResponse struct {
	ExportedAt    time.Time              `json:"exportedAt"`
	Transactions  []TransactionResponse  `json:"transactions"`
	FixedExpenses []FixedExpenseResponse `json:"fixedExpenses"`
	Goals         []GoalResponse         `json:"goals"`
	Investments   []InvestmentResponse   `json:"investments"`
	Jobs          []JobResponse          `json:"jobs"`
}
