package enrich

import (
	"context"
	"fmt"

	"phishabuser/internal/structs"

	"golang.org/x/sync/errgroup"
)

// fanOut applies fn to every item in its own goroutine and waits for all of
// them. Results keep the position of their input.
func fanOut[T any](ctx context.Context, items []T, fn func(context.Context, T) T) []T {
	if items == nil {
		return nil
	}

	out := make([]T, len(items))

	var g errgroup.Group
	for i := range items {
		g.Go(func() error {
			out[i] = fn(ctx, items[i])
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// EnrichEmailAddresses enriches every address concurrently.
func (e *Enricher) EnrichEmailAddresses(
	ctx context.Context,
	addresses []structs.EmailAddressData,
) ([]structs.EmailAddressData, error) {
	for i := range addresses {
		if err := addresses[i].Validate(); err != nil {
			return nil, fmt.Errorf("email address #%d: %w", i, err)
		}
	}

	return fanOut(ctx, addresses, e.EnrichEmailAddress), nil
}

// EnrichFulfillmentNodes enriches the visible and the hidden side of every
// node as separate units of work.
func (e *Enricher) EnrichFulfillmentNodes(
	ctx context.Context,
	nodes []structs.FulfillmentNode,
) ([]structs.FulfillmentNode, error) {
	for i := range nodes {
		if err := nodes[i].Validate(); err != nil {
			return nil, fmt.Errorf("fulfillment node #%d: %w", i, err)
		}
	}

	return e.enrichFulfillmentNodes(ctx, nodes), nil
}

func (e *Enricher) enrichFulfillmentNodes(ctx context.Context, nodes []structs.FulfillmentNode) []structs.FulfillmentNode {
	if nodes == nil {
		return nil
	}

	sides := make([]structs.Node, 0, 2*len(nodes))
	for _, node := range nodes {
		sides = append(sides, node.Visible)
		if node.Hidden != nil {
			sides = append(sides, *node.Hidden)
		}
	}

	sides = fanOut(ctx, sides, e.EnrichNode)

	out := make([]structs.FulfillmentNode, len(nodes))
	next := 0
	for i, node := range nodes {
		out[i] = node
		out[i].Visible = sides[next]
		next++

		if node.Hidden != nil {
			hidden := sides[next]
			out[i].Hidden = &hidden
			next++
		}
	}

	return out
}

// EnrichDeliveryNodes enriches the advertised and the observed sender of every
// hop as separate units of work.
func (e *Enricher) EnrichDeliveryNodes(
	ctx context.Context,
	nodes []structs.DeliveryNode,
) ([]structs.DeliveryNode, error) {
	for i := range nodes {
		if err := nodes[i].Validate(); err != nil {
			return nil, fmt.Errorf("delivery node #%d: %w", i, err)
		}
	}

	return e.enrichDeliveryNodes(ctx, nodes), nil
}

func (e *Enricher) enrichDeliveryNodes(ctx context.Context, nodes []structs.DeliveryNode) []structs.DeliveryNode {
	if nodes == nil {
		return nil
	}

	var hosts []structs.HostNode
	for _, node := range nodes {
		if node.AdvertisedSender != nil {
			hosts = append(hosts, *node.AdvertisedSender)
		}
		if node.ObservedSender != nil {
			hosts = append(hosts, *node.ObservedSender)
		}
	}

	hosts = fanOut(ctx, hosts, e.EnrichHost)

	out := make([]structs.DeliveryNode, len(nodes))
	next := 0
	for i, node := range nodes {
		out[i] = node

		if node.AdvertisedSender != nil {
			advertised := hosts[next]
			out[i].AdvertisedSender = &advertised
			next++
		}
		if node.ObservedSender != nil {
			observed := hosts[next]
			out[i].ObservedSender = &observed
			next++
		}
	}

	return out
}

// EnrichReport validates the report, then enriches its three collections
// concurrently. It returns only once every lookup has finished. Collections
// of the result are never nil.
func (e *Enricher) EnrichReport(ctx context.Context, report structs.Report) (structs.Report, error) {
	if err := report.Validate(); err != nil {
		return report, err
	}

	var (
		enriched structs.Report
		g        errgroup.Group
	)

	g.Go(func() error {
		enriched.EmailAddresses = fanOut(ctx, report.EmailAddresses, e.EnrichEmailAddress)
		return nil
	})
	g.Go(func() error {
		enriched.FulfillmentNodes = e.enrichFulfillmentNodes(ctx, report.FulfillmentNodes)
		return nil
	})
	g.Go(func() error {
		enriched.DeliveryNodes = e.enrichDeliveryNodes(ctx, report.DeliveryNodes)
		return nil
	})
	_ = g.Wait()

	// absent collections come back empty
	if enriched.EmailAddresses == nil {
		enriched.EmailAddresses = []structs.EmailAddressData{}
	}
	if enriched.FulfillmentNodes == nil {
		enriched.FulfillmentNodes = []structs.FulfillmentNode{}
	}
	if enriched.DeliveryNodes == nil {
		enriched.DeliveryNodes = []structs.DeliveryNode{}
	}

	return enriched, nil
}
