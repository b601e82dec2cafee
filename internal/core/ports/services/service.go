package services

// ServiceContainer aggregates the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Ledger       LedgerSvcFacade
	Reporting    ReportingSvcFacade
	Counterparty CounterpartySvcFacade
	Document     DocumentSvcFacade
	Token        TokenSvcFacade
}
