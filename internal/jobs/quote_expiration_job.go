package jobs

import (
	"context"
	"log/slog"
	"time"

	"workshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// QuoteExpirationJob periodically lists work orders awaiting approval whose
// quote expired, so the front desk can chase the customer or re-propose.
// The sweep only reads: the Quote entity rejects approval of an expired
// quote on its own.
type QuoteExpirationJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewQuoteExpirationJob creates a job that sweeps for expired quotes every
// ten minutes.
func NewQuoteExpirationJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *QuoteExpirationJob {
	return &QuoteExpirationJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "quote_expiration_job"),
	}
}

// Start begins the expiration sweep on a ten minute schedule.
func (j *QuoteExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiration job started (running every 10 minutes)")
	return nil
}

// Stop stops the expiration sweep.
func (j *QuoteExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote expiration job stopped")
}

func (j *QuoteExpirationJob) sweep(ctx context.Context) {
	uow := j.uowFactory.Create()

	expired, err := uow.WorkOrderRepository().GetWithExpiredQuotes(ctx, time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Quote expiration sweep failed", "error", err)
		return
	}

	for _, workOrder := range expired {
		j.logger.WarnContext(ctx, "work order quote expired",
			"work_order_id", workOrder.ID().String(),
			"customer_id", workOrder.CustomerID().String(),
			"expired_at", workOrder.Quote().ExpiresAt(),
			"days_overdue", -workOrder.Quote().DaysUntilExpiration(),
		)
	}
}
