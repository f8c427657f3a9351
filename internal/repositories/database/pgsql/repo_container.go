package pgsql

import (
	portsrepo "github.com/beanflow/beanflow/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	offsetRepo := newPgxOffsetRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		CurrencyRepo:  currencyRepo,
		JournalRepo:   journalRepo,
		OffsetRepo:    offsetRepo,
		ReportingRepo: reportingRepo,
	}
}
