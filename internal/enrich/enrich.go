// Package enrich attaches registry data (registrar, registration date and
// network operator) to the entities of a phishing report.
//
// Lookups are best effort. A missing server, a not-found answer, an
// unparseable identifier or a transport failure all leave the entity as it
// was; only structurally invalid input is reported to the caller.
package enrich

import (
	"context"
	"errors"
	"net/netip"
	"time"

	"phishabuser/internal/logger"
	"phishabuser/internal/metrics"
	"phishabuser/internal/queryerror"
	"phishabuser/internal/queryrdap"

	"go.uber.org/zap"
)

// ASNResolver names the organisation announcing an address.
type ASNResolver interface {
	IPAddrToAS(ip netip.Addr) (uint, string, bool)
}

type Options struct {
	// Registry is shared by every concurrent lookup
	Registry queryrdap.Registry
	// ASN fills provider names the registry left empty, optional
	ASN ASNResolver
	// Metrics is optional
	Metrics *metrics.Metrics
}

type Enricher struct {
	registry queryrdap.Registry
	asn      ASNResolver
	metrics  *metrics.Metrics
}

func New(opts Options) *Enricher {
	return &Enricher{
		registry: opts.Registry,
		asn:      opts.ASN,
		metrics:  opts.Metrics,
	}
}

// observe records the outcome of one lookup and logs failures at debug level.
func (e *Enricher) observe(ctx context.Context, kind string, start time.Time, err error, subject zap.Field) {
	outcome := outcomeOf(err)
	e.metrics.ObserveLookup(kind, outcome, time.Since(start))

	if err != nil {
		logger.Debug(ctx, "registry lookup yielded no record",
			zap.String("kind", kind), subject, zap.String("outcome", outcome), zap.Error(err))
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeFound
	case errors.Is(err, queryerror.ErrNoServer):
		return metrics.OutcomeNoServer
	case errors.Is(err, queryerror.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, queryerror.ErrMalformedInput):
		return metrics.OutcomeMalformed
	default:
		return metrics.OutcomeTransport
	}
}

func optional(s string, ok bool) *string {
	if !ok {
		return nil
	}

	return &s
}
