package structs

import (
	"time"
)

type DomainCategory string

const (
	DomainCategoryOther             DomainCategory = "other"
	DomainCategoryOpenEmailProvider DomainCategory = "open_email_provider"
)

// Domain is a registrable name seen in a report. AbuseEmailAddress is a curated
// override: nothing in the enrichment stage writes it, but when present it wins
// over registry data.
type Domain struct {
	Name              string         `json:"name"`
	Category          DomainCategory `json:"category"`
	RegistrationDate  *time.Time     `json:"registration_date,omitempty"`
	AbuseEmailAddress *string        `json:"abuse_email_address,omitempty"`
}

type Registrar struct {
	Name              *string `json:"name,omitempty"`
	AbuseEmailAddress *string `json:"abuse_email_address,omitempty"`
}

// InfrastructureProvider is the operator of the IP network a host lives in.
type InfrastructureProvider struct {
	Name              *string `json:"name,omitempty"`
	AbuseEmailAddress *string `json:"abuse_email_address,omitempty"`
}

type EmailAddressData struct {
	Address   string     `json:"address"`
	Domain    *Domain    `json:"domain,omitempty"`
	Registrar *Registrar `json:"registrar,omitempty"`
}

// Node is one side of a redirect chain.
type Node struct {
	URL       string     `json:"url"`
	Domain    *Domain    `json:"domain,omitempty"`
	Registrar *Registrar `json:"registrar,omitempty"`
}

type FulfillmentNode struct {
	Visible Node  `json:"visible"`
	Hidden  *Node `json:"hidden,omitempty"`
}

// HostNode is the sender of one delivery hop.
type HostNode struct {
	Host                   string                  `json:"host,omitempty"`
	IPAddress              *string                 `json:"ip_address,omitempty"`
	Domain                 *Domain                 `json:"domain,omitempty"`
	Registrar              *Registrar              `json:"registrar,omitempty"`
	InfrastructureProvider *InfrastructureProvider `json:"infrastructure_provider,omitempty"`
}

// DeliveryNode is one relay hop taken from the transport header chain. The
// advertised sender is whatever the previous hop claimed to be, the observed
// sender is what the receiving relay actually saw.
type DeliveryNode struct {
	AdvertisedSender *HostNode `json:"advertised_sender,omitempty"`
	ObservedSender   *HostNode `json:"observed_sender,omitempty"`
	Position         int       `json:"position"`
	Trusted          bool      `json:"trusted"`
}

// Report groups the entities extracted from one suspect message.
type Report struct {
	EmailAddresses   []EmailAddressData `json:"email_addresses"`
	FulfillmentNodes []FulfillmentNode  `json:"fulfillment_nodes"`
	DeliveryNodes    []DeliveryNode     `json:"delivery_nodes"`
}

// NeedsLookup reports whether a registry lookup is warranted for the domain
// given the registrar currently attached to the same entity.
func (d *Domain) NeedsLookup(registrar *Registrar) bool {
	return d != nil && registrar == nil && d.Category == DomainCategoryOther
}
