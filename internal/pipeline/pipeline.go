// Package pipeline chains enrichment and contact resolution for one report.
package pipeline

import (
	"context"
	"time"

	"phishabuser/internal/logger"
	"phishabuser/internal/structs"

	"go.uber.org/zap"
)

type Enricher interface {
	EnrichReport(ctx context.Context, report structs.Report) (structs.Report, error)
}

type Notifier interface {
	Resolve(report structs.Report) []structs.Notification
}

type Pipeline struct {
	Enricher Enricher
	Notifier Notifier
	// Timeout bounds the enrichment of one report, zero means no deadline
	Timeout time.Duration
}

// Run enriches report and resolves its notifications. The only error is an
// invalid entity in report.
func (p *Pipeline) Run(ctx context.Context, report structs.Report) (structs.Result, error) {
	start := time.Now()

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	enriched, err := p.Enricher.EnrichReport(ctx, report)
	if err != nil {
		return structs.Result{}, err
	}

	notifications := p.Notifier.Resolve(enriched)
	if notifications == nil {
		notifications = []structs.Notification{}
	}

	logger.Info(ctx, "report processed",
		zap.Int("email_addresses", len(enriched.EmailAddresses)),
		zap.Int("fulfillment_nodes", len(enriched.FulfillmentNodes)),
		zap.Int("delivery_nodes", len(enriched.DeliveryNodes)),
		zap.Int("notifications", len(notifications)),
		zap.Duration("duration", time.Since(start)),
	)

	return structs.Result{Report: enriched, Notifications: notifications}, nil
}
