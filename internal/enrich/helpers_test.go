package enrich_test

import (
	"context"
	"net/netip"
	"net/url"
	"sync"
	"testing"

	"phishabuser/internal/queryerror"
	"phishabuser/internal/queryrdap"
	"phishabuser/internal/structs"

	"github.com/openrdap/rdap"
)

var registryServer = &url.URL{Scheme: "https", Host: "rdap.example", Path: "/"}

func ptr[T any](v T) *T {
	return &v
}

func contact(roles []string, props ...*rdap.VCardProperty) rdap.Entity {
	return rdap.Entity{Roles: roles, VCard: &rdap.VCard{Properties: props}}
}

func fn(name string) *rdap.VCardProperty {
	return &rdap.VCardProperty{Name: "fn", Type: "text", Value: name, Parameters: map[string][]string{}}
}

func email(address string) *rdap.VCardProperty {
	return &rdap.VCardProperty{Name: "email", Type: "text", Value: address, Parameters: map[string][]string{}}
}

func domainRecord(registrar, abuse, registered string) *queryrdap.Record {
	entity := contact([]string{"registrar"}, fn(registrar))
	entity.Entities = []rdap.Entity{contact([]string{"abuse"}, email(abuse))}

	return &queryrdap.Record{
		Events:   []rdap.Event{{Action: "registration", Date: registered}},
		Entities: []rdap.Entity{entity},
	}
}

func networkRecord(provider, abuse string) *queryrdap.Record {
	var entities []rdap.Entity
	if provider != "" {
		entities = append(entities, contact([]string{"registrant"}, fn(provider)))
	}
	entities = append(entities, contact([]string{"abuse"}, email(abuse)))

	return &queryrdap.Record{Entities: entities}
}

func otherDomain(name string) *structs.Domain {
	return &structs.Domain{Name: name, Category: structs.DomainCategoryOther}
}

// fakeRegistry answers from maps. hook, when set, runs before every query.
type fakeRegistry struct {
	domains map[string]*queryrdap.Record
	ips     map[string]*queryrdap.Record
	hook    func(kind, query string)

	mu      sync.Mutex
	queries []string
}

func (f *fakeRegistry) FindDNSServers(_ context.Context, _ string) ([]*url.URL, error) {
	return []*url.URL{registryServer}, nil
}

func (f *fakeRegistry) FindIPServers(_ context.Context, _ netip.Addr) ([]*url.URL, error) {
	return []*url.URL{registryServer}, nil
}

func (f *fakeRegistry) QueryDomain(_ context.Context, _ *url.URL, domain string) (*queryrdap.Record, error) {
	f.record("domain:" + domain)
	if f.hook != nil {
		f.hook("domain", domain)
	}
	if record, ok := f.domains[domain]; ok {
		return record, nil
	}

	return nil, queryerror.ErrNotFound
}

func (f *fakeRegistry) QueryIP(_ context.Context, _ *url.URL, ip netip.Addr) (*queryrdap.Record, error) {
	f.record("ip:" + ip.String())
	if f.hook != nil {
		f.hook("ip", ip.String())
	}
	if record, ok := f.ips[ip.String()]; ok {
		return record, nil
	}

	return nil, queryerror.ErrTransport
}

func (f *fakeRegistry) record(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
}

func (f *fakeRegistry) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.queries...)
}

type fakeASN map[string]string

func (f fakeASN) IPAddrToAS(ip netip.Addr) (uint, string, bool) {
	organization, ok := f[ip.String()]
	return 64500, organization, ok
}

func requireNoQueries(t *testing.T, f *fakeRegistry) {
	t.Helper()
	if queries := f.Queries(); len(queries) != 0 {
		t.Fatalf("expected no registry queries, got %v", queries)
	}
}
