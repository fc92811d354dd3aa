package enrich

import (
	"context"
	"strings"
	"time"

	"phishabuser/internal/extract"
	"phishabuser/internal/metrics"
	"phishabuser/internal/queryerror"
	"phishabuser/internal/queryrdap"
	"phishabuser/internal/structs"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ResolveDomain finds the registry record for name, generalizing it one label
// at a time until a registry knows it. The bare top-level label is never
// queried on its own. It returns nil when no candidate yields a record.
func (e *Enricher) ResolveDomain(ctx context.Context, name string) *queryrdap.Record {
	start := time.Now()
	record, err := e.resolveDomain(ctx, name)
	e.observe(ctx, metrics.KindDomain, start, err, zap.String("domain", name))

	return record
}

func (e *Enricher) resolveDomain(ctx context.Context, name string) (*queryrdap.Record, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")

	labels := strings.Split(name, ".")
	for _, label := range labels {
		if label == "" {
			return nil, eris.Wrapf(queryerror.ErrMalformedInput, "%q is not a domain name", name)
		}
	}
	if len(labels) < 2 {
		return nil, eris.Wrapf(queryerror.ErrNoServer, "%q has no registrable suffix", name)
	}

	// servers are those valid for the full name, every candidate is a suffix of it
	servers, err := e.registry.FindDNSServers(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 || servers[0] == nil {
		return nil, eris.Wrapf(queryerror.ErrNoServer, "no registry serves %s", name)
	}

	var lastErr error
	for start := 0; start < len(labels)-1; start++ {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrapf(queryerror.ErrTransport, "domain lookup of %s interrupted: %s", name, err)
		}

		candidate := strings.Join(labels[start:], ".")

		record, err := e.registry.QueryDomain(ctx, servers[0], candidate)
		if err == nil && record != nil {
			return record, nil
		}

		lastErr = err
		if lastErr == nil {
			lastErr = eris.Wrapf(queryerror.ErrNotFound, "%s returned no record for %s", servers[0], candidate)
		}
	}

	return nil, lastErr
}

// enrichDomain returns a fresh Domain and Registrar built from the registry,
// or the inputs themselves when no lookup is due or the lookup fails.
func (e *Enricher) enrichDomain(
	ctx context.Context,
	domain *structs.Domain,
	registrar *structs.Registrar,
) (*structs.Domain, *structs.Registrar) {
	if domain == nil {
		return domain, registrar
	}

	if !domain.NeedsLookup(registrar) {
		e.metrics.ObserveLookup(metrics.KindDomain, metrics.OutcomeSkipped, 0)
		return domain, registrar
	}

	record := e.ResolveDomain(ctx, domain.Name)
	if record == nil {
		return domain, registrar
	}

	enriched := *domain
	enriched.RegistrationDate = nil
	if at, ok := extract.RegistrationDate(record.Events); ok {
		enriched.RegistrationDate = &at
	}

	return &enriched, &structs.Registrar{
		Name:              optional(extract.RegistrarName(record.Entities)),
		AbuseEmailAddress: optional(extract.AbuseEmail(record.Entities)),
	}
}

// EnrichEmailAddress looks up the domain of an address unless it belongs to an
// open email provider or already carries a registrar.
func (e *Enricher) EnrichEmailAddress(ctx context.Context, address structs.EmailAddressData) structs.EmailAddressData {
	enriched := address
	enriched.Domain, enriched.Registrar = e.enrichDomain(ctx, address.Domain, address.Registrar)

	return enriched
}

// EnrichNode looks up the domain of one redirect chain side.
func (e *Enricher) EnrichNode(ctx context.Context, node structs.Node) structs.Node {
	enriched := node
	enriched.Domain, enriched.Registrar = e.enrichDomain(ctx, node.Domain, node.Registrar)

	return enriched
}
