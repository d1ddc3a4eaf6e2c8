package scheduler

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"research_hub/internal/usecase"

	"github.com/robfig/cron/v3"
)

const defaultExpirySchedule = "@hourly"

// InvoiceExpirer runs the overdue-invoice sweep on a cron schedule.
//
// Schedule comes from INVOICE_EXPIRY_CRON (robfig/cron syntax, default
// hourly). The sweep itself is idempotent, so overlapping or missed runs are
// harmless.

type InvoiceExpirer struct {
	cron   *cron.Cron
	ledger usecase.ILedgerUseCase
}

func NewInvoiceExpirer(ledger usecase.ILedgerUseCase) *InvoiceExpirer {
	return &InvoiceExpirer{cron: cron.New(), ledger: ledger}
}

func (e *InvoiceExpirer) Start() error {
	schedule := strings.TrimSpace(os.Getenv("INVOICE_EXPIRY_CRON"))
	if schedule == "" {
		schedule = defaultExpirySchedule
	}

	if _, err := e.cron.AddFunc(schedule, e.runSweep); err != nil {
		return err
	}
	e.cron.Start()
	log.Printf("[scheduler][expirer] started schedule=%q", schedule)
	return nil
}

func (e *InvoiceExpirer) Stop() {
	<-e.cron.Stop().Done()
	log.Printf("[scheduler][expirer] stopped")
}

func (e *InvoiceExpirer) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	n, err := e.ledger.ExpireOverdueInvoices(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("[scheduler][expirer] sweep failed err=%v", err)
		return
	}
	if n > 0 {
		log.Printf("[scheduler][expirer] sweep done expired=%d", n)
	}
}
