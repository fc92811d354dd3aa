package queryrdap

import (
	"context"
	"net/netip"
	"net/url"

	"github.com/openrdap/rdap"
)

// Record is the part of a registry object the enrichment stage reads.
type Record struct {
	Events   []rdap.Event
	Entities []rdap.Entity
}

//go:generate mockgen -package mockqueryrdap -source=interface.go -destination=mock/mockqueryrdap.go *

// Discovery finds the registry servers authoritative for a name or address.
type Discovery interface {
	FindDNSServers(ctx context.Context, domain string) ([]*url.URL, error)
	FindIPServers(ctx context.Context, ip netip.Addr) ([]*url.URL, error)
}

// Querier fetches a record from one registry server.
type Querier interface {
	QueryDomain(ctx context.Context, server *url.URL, domain string) (*Record, error)
	QueryIP(ctx context.Context, server *url.URL, ip netip.Addr) (*Record, error)
}

// Registry is safe for concurrent use and shared by every lookup.
type Registry interface {
	Discovery
	Querier
}
