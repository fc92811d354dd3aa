package structs

import (
	"fmt"

	"phishabuser/internal/queryerror"
)

func (d *Domain) Validate() error {
	if d == nil {
		return nil
	}
	if d.Name == "" {
		return fmt.Errorf("%w: domain without name", queryerror.ErrInvalidEntity)
	}

	switch d.Category {
	case DomainCategoryOther, DomainCategoryOpenEmailProvider:
		return nil
	default:
		return fmt.Errorf("%w: domain %q has unknown category %q", queryerror.ErrInvalidEntity, d.Name, d.Category)
	}
}

func (e *EmailAddressData) Validate() error {
	if e.Address == "" {
		return fmt.Errorf("%w: email address is empty", queryerror.ErrInvalidEntity)
	}

	return e.Domain.Validate()
}

func (n *Node) Validate() error {
	if n.URL == "" {
		return fmt.Errorf("%w: node without url", queryerror.ErrInvalidEntity)
	}

	return n.Domain.Validate()
}

func (f *FulfillmentNode) Validate() error {
	if err := f.Visible.Validate(); err != nil {
		return fmt.Errorf("visible: %w", err)
	}
	if f.Hidden != nil {
		if err := f.Hidden.Validate(); err != nil {
			return fmt.Errorf("hidden: %w", err)
		}
	}

	return nil
}

func (h *HostNode) Validate() error {
	if h == nil {
		return nil
	}

	return h.Domain.Validate()
}

func (d *DeliveryNode) Validate() error {
	if d.Position < 0 {
		return fmt.Errorf("%w: negative hop position %d", queryerror.ErrInvalidEntity, d.Position)
	}
	if err := d.AdvertisedSender.Validate(); err != nil {
		return fmt.Errorf("advertised sender: %w", err)
	}
	if err := d.ObservedSender.Validate(); err != nil {
		return fmt.Errorf("observed sender: %w", err)
	}

	return nil
}

// Validate checks every entity of the report and names the first offending one.
func (r *Report) Validate() error {
	for i := range r.EmailAddresses {
		if err := r.EmailAddresses[i].Validate(); err != nil {
			return fmt.Errorf("email address #%d: %w", i, err)
		}
	}
	for i := range r.FulfillmentNodes {
		if err := r.FulfillmentNodes[i].Validate(); err != nil {
			return fmt.Errorf("fulfillment node #%d: %w", i, err)
		}
	}
	for i := range r.DeliveryNodes {
		if err := r.DeliveryNodes[i].Validate(); err != nil {
			return fmt.Errorf("delivery node #%d: %w", i, err)
		}
	}

	return nil
}
