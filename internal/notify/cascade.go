// Package notify decides who receives an abuse report about each entity of an
// enriched report.
package notify

import (
	"phishabuser/internal/structs"
)

// Notifier turns enriched entities into notifications. The zero value is ready
// to use.
type Notifier struct {
	// Counter is optional
	Counter Counter
}

type Counter interface {
	IncrementNotification(kind string)
}

// Contact returns the abuse address responsible for a domain. A curated
// address on the domain outranks the registrar's.
func Contact(domain *structs.Domain, registrar *structs.Registrar) (string, bool) {
	if domain != nil && domain.AbuseEmailAddress != nil && *domain.AbuseEmailAddress != "" {
		return *domain.AbuseEmailAddress, true
	}
	if registrar != nil && registrar.AbuseEmailAddress != nil && *registrar.AbuseEmailAddress != "" {
		return *registrar.AbuseEmailAddress, true
	}

	return "", false
}

// Resolve lists the notifications of a report in entity order: addresses,
// then fulfillment nodes, then delivery hops. Repeated recipients are kept.
func (n Notifier) Resolve(report structs.Report) []structs.Notification {
	var out []structs.Notification

	add := func(kind structs.SubjectKind, subject, recipient string) {
		out = append(out, structs.Notification{Kind: kind, Subject: subject, RecipientAddress: recipient})
		if n.Counter != nil {
			n.Counter.IncrementNotification(string(kind))
		}
	}

	for _, address := range report.EmailAddresses {
		if recipient, ok := Contact(address.Domain, address.Registrar); ok {
			add(structs.SubjectEmailAddress, address.Address, recipient)
		}
	}

	for _, node := range report.FulfillmentNodes {
		sides := []*structs.Node{&node.Visible, node.Hidden}
		for _, side := range sides {
			if side == nil {
				continue
			}
			if recipient, ok := Contact(side.Domain, side.Registrar); ok {
				add(structs.SubjectNode, side.URL, recipient)
			}
		}
	}

	for _, hop := range report.DeliveryNodes {
		// the advertised sender is whatever the previous relay claimed to be
		host := hop.ObservedSender
		if host == nil {
			continue
		}

		if recipient, ok := Contact(host.Domain, host.Registrar); ok {
			add(structs.SubjectHost, hostSubject(host), recipient)
		}

		provider := host.InfrastructureProvider
		if host.IPAddress != nil && *host.IPAddress != "" &&
			provider != nil && provider.AbuseEmailAddress != nil && *provider.AbuseEmailAddress != "" {
			add(structs.SubjectIPAddress, *host.IPAddress, *provider.AbuseEmailAddress)
		}
	}

	return out
}

// hostSubject names a relay by host, then domain, then address.
func hostSubject(host *structs.HostNode) string {
	switch {
	case host.Host != "":
		return host.Host
	case host.Domain != nil && host.Domain.Name != "":
		return host.Domain.Name
	case host.IPAddress != nil:
		return *host.IPAddress
	default:
		return ""
	}
}
