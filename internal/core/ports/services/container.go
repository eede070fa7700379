package services

// ServiceContainer bundles the service interfaces the HTTP layer depends on.
type ServiceContainer struct {
	EERR     EERRService
	CashFlow CashFlowService
	Balance  BalanceService
}
