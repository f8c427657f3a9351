package services

import (
	portsrepo "github.com/beanflow/beanflow/internal/core/ports/repositories"
	portssvc "github.com/beanflow/beanflow/internal/core/ports/services"
	"github.com/beanflow/beanflow/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.CurrencyRepo)
	container.Offset = NewOffsetService(repos.OffsetRepo, repos.JournalRepo, repos.AccountRepo, repos.CurrencyRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo, repos.CurrencyRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
	_ portssvc.JournalSvcFacade  = (*journalService)(nil)
	_ portssvc.OffsetSvcFacade   = (*offsetService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
)
