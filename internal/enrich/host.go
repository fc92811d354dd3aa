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
	"phishabuser/internal/utils"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ResolveIP returns the registry record of the network containing ip, or nil.
// Strings that are neither IPv4 nor IPv6 yield nil without any query.
func (e *Enricher) ResolveIP(ctx context.Context, ip string) *queryrdap.Record {
	start := time.Now()
	record, err := e.resolveIP(ctx, ip)
	e.observe(ctx, metrics.KindIP, start, err, zap.String("ip", ip))

	return record
}

func (e *Enricher) resolveIP(ctx context.Context, raw string) (*queryrdap.Record, error) {
	ip, ok := utils.ParseIpAddr(strings.TrimSpace(raw))
	if !ok {
		return nil, eris.Wrapf(queryerror.ErrMalformedInput, "%q is not an ip address", raw)
	}

	servers, err := e.registry.FindIPServers(ctx, ip)
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 || servers[0] == nil {
		return nil, eris.Wrapf(queryerror.ErrNoServer, "no registry serves %s", ip)
	}

	record, err := e.registry.QueryIP(ctx, servers[0], ip)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, eris.Wrapf(queryerror.ErrNotFound, "%s returned no record for %s", servers[0], ip)
	}

	return record, nil
}

// enrichInfrastructure builds the provider operating the network of ip. An
// already known provider is kept as is.
func (e *Enricher) enrichInfrastructure(
	ctx context.Context,
	ip *string,
	provider *structs.InfrastructureProvider,
) *structs.InfrastructureProvider {
	if provider != nil || ip == nil || *ip == "" {
		if provider != nil {
			e.metrics.ObserveLookup(metrics.KindIP, metrics.OutcomeSkipped, 0)
		}
		return provider
	}

	record := e.ResolveIP(ctx, *ip)
	if record == nil {
		return provider
	}

	enriched := &structs.InfrastructureProvider{
		Name:              optional(extract.ProviderName(record.Entities)),
		AbuseEmailAddress: optional(extract.AbuseEmail(record.Entities)),
	}

	if enriched.Name == nil && e.asn != nil {
		if addr, ok := utils.ParseIpAddr(*ip); ok {
			if _, organization, ok := e.asn.IPAddrToAS(addr); ok && organization != "" {
				enriched.Name = &organization
			}
		}
	}

	return enriched
}

// EnrichHost runs the domain lookup and the network lookup of one relay
// concurrently and merges both results into a copy of host.
func (e *Enricher) EnrichHost(ctx context.Context, host structs.HostNode) structs.HostNode {
	var (
		domain    *structs.Domain
		registrar *structs.Registrar
		provider  *structs.InfrastructureProvider
		g         errgroup.Group
	)

	g.Go(func() error {
		domain, registrar = e.enrichDomain(ctx, host.Domain, host.Registrar)
		return nil
	})
	g.Go(func() error {
		provider = e.enrichInfrastructure(ctx, host.IPAddress, host.InfrastructureProvider)
		return nil
	})
	_ = g.Wait()

	enriched := host
	enriched.Domain = domain
	enriched.Registrar = registrar
	enriched.InfrastructureProvider = provider

	return enriched
}
