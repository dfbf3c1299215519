package services

import (
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	portssvc "github.com/emersonvf/centavo/internal/core/ports/services"
)

// NewServiceContainer creates the service container with all dependencies
// wired.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.BillOrderRepo)
	container.FixedExpense = NewFixedExpenseService(repos.FixedExpenseRepo, repos.TransactionRepo)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Investment = NewInvestmentService(repos.InvestmentRepo)
	container.Job = NewJobService(repos.JobRepo, repos.TransactionRepo)
	container.BillOrder = NewBillOrderService(repos.BillOrderRepo)

	return container
}
