package pgsql

import (
	portsrepo "github.com/emersonvf/centavo/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		FixedExpenseRepo: newPgxFixedExpenseRepository(dbPool),
		GoalRepo:         newPgxGoalRepository(dbPool),
		InvestmentRepo:   newPgxInvestmentRepository(dbPool),
		JobRepo:          newPgxJobRepository(dbPool),
		BillOrderRepo:    newPgxBillOrderRepository(dbPool),
	}
}
