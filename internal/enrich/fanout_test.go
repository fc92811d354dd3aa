package enrich_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"phishabuser/internal/enrich"
	"phishabuser/internal/metrics"
	"phishabuser/internal/queryerror"
	"phishabuser/internal/queryrdap"
	"phishabuser/internal/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestEnrichEmailAddressesIsolatesFailures(t *testing.T) {
	const n = 8

	registry := &fakeRegistry{domains: map[string]*queryrdap.Record{}}
	addresses := make([]structs.EmailAddressData, n)
	for i := range addresses {
		name := fmt.Sprintf("sender%d.example", i)
		addresses[i] = structs.EmailAddressData{Address: "info@" + name, Domain: otherDomain(name)}
		if i != 3 {
			registry.domains[name] = domainRecord(fmt.Sprintf("Registrar %d", i), "abuse@registrar.example", "2022-01-01T00:00:00Z")
		}
	}
	e := enrich.New(enrich.Options{Registry: registry})

	enriched, err := e.EnrichEmailAddresses(context.Background(), addresses)
	require.NoError(t, err)
	require.Len(t, enriched, n)

	for i, address := range enriched {
		require.Equal(t, addresses[i].Address, address.Address)
		if i == 3 {
			require.Equal(t, addresses[i], address)
			continue
		}
		require.Equal(t, fmt.Sprintf("Registrar %d", i), *address.Registrar.Name)
	}
}

func TestEnrichEmailAddressesRunConcurrently(t *testing.T) {
	const n = 4

	var (
		mu       sync.Mutex
		inFlight int
		all      = make(chan struct{})
	)
	registry := &fakeRegistry{
		hook: func(string, string) {
			mu.Lock()
			inFlight++
			if inFlight == n {
				close(all)
			}
			mu.Unlock()

			select {
			case <-all:
			case <-time.After(5 * time.Second):
			}
		},
	}
	e := enrich.New(enrich.Options{Registry: registry})

	addresses := make([]structs.EmailAddressData, n)
	for i := range addresses {
		name := fmt.Sprintf("sender%d.example", i)
		addresses[i] = structs.EmailAddressData{Address: "info@" + name, Domain: otherDomain(name)}
	}

	_, err := e.EnrichEmailAddresses(context.Background(), addresses)
	require.NoError(t, err)

	select {
	case <-all:
	default:
		t.Fatalf("lookups did not overlap")
	}
}

func TestEnrichEmailAddressesEmpty(t *testing.T) {
	e := enrich.New(enrich.Options{Registry: &fakeRegistry{}})

	enriched, err := e.EnrichEmailAddresses(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, enriched)
}

func TestEnrichRejectsInvalidEntities(t *testing.T) {
	registry := &fakeRegistry{}
	e := enrich.New(enrich.Options{Registry: registry})
	ctx := context.Background()

	_, err := e.EnrichEmailAddresses(ctx, []structs.EmailAddressData{
		{Address: "ok@example.com", Domain: otherDomain("example.com")},
		{Address: "bad@example.com", Domain: &structs.Domain{Name: "example.com", Category: "parked"}},
	})
	require.ErrorIs(t, err, queryerror.ErrInvalidEntity)

	_, err = e.EnrichFulfillmentNodes(ctx, []structs.FulfillmentNode{
		{Visible: structs.Node{URL: "https://example.com", Domain: &structs.Domain{}}},
	})
	require.ErrorIs(t, err, queryerror.ErrInvalidEntity)

	_, err = e.EnrichDeliveryNodes(ctx, []structs.DeliveryNode{{Position: -1}})
	require.ErrorIs(t, err, queryerror.ErrInvalidEntity)

	_, err = e.EnrichReport(ctx, structs.Report{DeliveryNodes: []structs.DeliveryNode{{Position: -2}}})
	require.ErrorIs(t, err, queryerror.ErrInvalidEntity)

	requireNoQueries(t, registry)
}

func TestEnrichFulfillmentNodes(t *testing.T) {
	registry := &fakeRegistry{
		domains: map[string]*queryrdap.Record{
			"short.example":   domainRecord("Shortener Registrar", "abuse@shortener.example", "2019-01-01T00:00:00Z"),
			"landing.example": domainRecord("Landing Registrar", "abuse@landing.example", "2024-09-01T00:00:00Z"),
		},
	}
	e := enrich.New(enrich.Options{Registry: registry})

	nodes := []structs.FulfillmentNode{
		{
			Visible: structs.Node{URL: "https://short.example/x", Domain: otherDomain("short.example")},
			Hidden:  &structs.Node{URL: "https://landing.example/", Domain: otherDomain("landing.example")},
		},
		{
			Visible: structs.Node{URL: "https://unknown.example/", Domain: otherDomain("unknown.example")},
		},
	}

	enriched, err := e.EnrichFulfillmentNodes(context.Background(), nodes)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	require.Equal(t, "Shortener Registrar", *enriched[0].Visible.Registrar.Name)
	require.Equal(t, "https://landing.example/", enriched[0].Hidden.URL)
	require.Equal(t, "Landing Registrar", *enriched[0].Hidden.Registrar.Name)
	require.Equal(t, nodes[1], enriched[1])
	require.Nil(t, nodes[0].Hidden.Registrar)
}

func TestEnrichDeliveryNodes(t *testing.T) {
	registry := &fakeRegistry{
		domains: map[string]*queryrdap.Record{
			"relay.example": domainRecord("Relay Registrar", "abuse@relay-registrar.example", "2023-05-06T07:08:09Z"),
		},
		ips: map[string]*queryrdap.Record{
			"203.0.113.5": networkRecord("Relay Hosting", "abuse@relay-hosting.example"),
		},
	}
	e := enrich.New(enrich.Options{Registry: registry})

	nodes := []structs.DeliveryNode{
		{
			AdvertisedSender: &structs.HostNode{Host: "helo.relay.example", Domain: otherDomain("relay.example")},
			ObservedSender: &structs.HostNode{
				Host:      "mx.relay.example",
				IPAddress: ptr("203.0.113.5"),
				Domain:    otherDomain("relay.example"),
			},
			Position: 1,
		},
		{Position: 0, Trusted: true},
	}

	enriched, err := e.EnrichDeliveryNodes(context.Background(), nodes)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	require.Equal(t, 1, enriched[0].Position)
	require.Equal(t, "helo.relay.example", enriched[0].AdvertisedSender.Host)
	require.Equal(t, "Relay Registrar", *enriched[0].AdvertisedSender.Registrar.Name)
	require.Equal(t, "mx.relay.example", enriched[0].ObservedSender.Host)
	require.Equal(t, "Relay Hosting", *enriched[0].ObservedSender.InfrastructureProvider.Name)
	require.Equal(t, nodes[1], enriched[1])
}

func TestEnrichReport(t *testing.T) {
	registry := &fakeRegistry{
		domains: map[string]*queryrdap.Record{
			"paypa1-secure.net": domainRecord("Sender Registrar", "abuse@sender-registrar.example", "2024-10-01T00:00:00Z"),
			"landing.example":   domainRecord("Landing Registrar", "abuse@landing.example", "2024-09-01T00:00:00Z"),
		},
		ips: map[string]*queryrdap.Record{
			"203.0.113.5": networkRecord("Relay Hosting", "abuse@relay-hosting.example"),
		},
	}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	e := enrich.New(enrich.Options{Registry: registry, Metrics: m})

	report := structs.Report{
		EmailAddresses: []structs.EmailAddressData{
			{Address: "service@paypa1-secure.net", Domain: otherDomain("paypa1-secure.net")},
			{
				Address: "someone@gmail.com",
				Domain:  &structs.Domain{Name: "gmail.com", Category: structs.DomainCategoryOpenEmailProvider},
			},
		},
		FulfillmentNodes: []structs.FulfillmentNode{
			{Visible: structs.Node{URL: "https://landing.example/", Domain: otherDomain("landing.example")}},
		},
		DeliveryNodes: []structs.DeliveryNode{
			{ObservedSender: &structs.HostNode{Host: "203.0.113.5", IPAddress: ptr("203.0.113.5")}},
		},
	}

	enriched, err := e.EnrichReport(context.Background(), report)
	require.NoError(t, err)

	require.Equal(t, "Sender Registrar", *enriched.EmailAddresses[0].Registrar.Name)
	require.Equal(t, report.EmailAddresses[1], enriched.EmailAddresses[1])
	require.Equal(t, "Landing Registrar", *enriched.FulfillmentNodes[0].Visible.Registrar.Name)
	require.Equal(t, "Relay Hosting", *enriched.DeliveryNodes[0].ObservedSender.InfrastructureProvider.Name)

	require.InDelta(t, 2, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.KindDomain, metrics.OutcomeFound)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.KindDomain, metrics.OutcomeSkipped)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.KindIP, metrics.OutcomeFound)), 0)
}

func TestEnrichReportCancelledContext(t *testing.T) {
	registry := &fakeRegistry{
		domains: map[string]*queryrdap.Record{
			"example.com": domainRecord("R", "abuse@r.example", "2020-01-01T00:00:00Z"),
		},
	}
	e := enrich.New(enrich.Options{Registry: registry})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := structs.Report{
		EmailAddresses: []structs.EmailAddressData{
			{Address: "a@sub.example.com", Domain: otherDomain("sub.example.com")},
		},
	}

	enriched, err := e.EnrichReport(ctx, report)
	require.NoError(t, err)
	require.Equal(t, report.EmailAddresses, enriched.EmailAddresses)
}

func TestEnrichReportEmptyCollections(t *testing.T) {
	e := enrich.New(enrich.Options{Registry: &fakeRegistry{}})

	enriched, err := e.EnrichReport(context.Background(), structs.Report{})
	require.NoError(t, err)
	require.NotNil(t, enriched.EmailAddresses)
	require.NotNil(t, enriched.FulfillmentNodes)
	require.NotNil(t, enriched.DeliveryNodes)

	body, err := json.Marshal(enriched)
	require.NoError(t, err)
	require.JSONEq(t, `{"email_addresses":[],"fulfillment_nodes":[],"delivery_nodes":[]}`, string(body))
}
