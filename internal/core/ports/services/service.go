package services

// ServiceContainer holds instances of all the application services. It is
// the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Transaction  TransactionSvcFacade
	FixedExpense FixedExpenseSvcFacade
	Goal         GoalSvcFacade
	Investment   InvestmentSvcFacade
	Job          JobSvcFacade
	BillOrder    BillOrderSvcFacade
}
