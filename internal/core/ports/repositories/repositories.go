package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	TransactionRepo  TransactionRepository
	FixedExpenseRepo FixedExpenseRepository
	GoalRepo         GoalRepository
	InvestmentRepo   InvestmentRepository
	JobRepo          JobRepository
	BillOrderRepo    BillOrderRepository
}
