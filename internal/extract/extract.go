// Package extract reduces RDAP records to the contact data an abuse report
// needs. Nothing here performs I/O or modifies its input.
package extract

import (
	"strings"
	"time"

	"phishabuser/internal/utils"

	"github.com/gammazero/deque"
	"github.com/openrdap/rdap"
)

const (
	roleRegistrar  = "registrar"
	roleRegistrant = "registrant"
	roleAbuse      = "abuse"

	actionRegistration = "registration"
	actionLastChanged  = "last changed"
)

// Flatten lists the entity tree in pre-order: every entity is followed by all
// of its descendants before its next sibling.
func Flatten(entities []rdap.Entity) []*rdap.Entity {
	var (
		stack  deque.Deque[*rdap.Entity]
		entity *rdap.Entity
		out    []*rdap.Entity
	)

	for i := len(entities) - 1; i >= 0; i-- {
		stack.PushBack(&entities[i])
	}

	for stack.Len() != 0 {
		entity = stack.PopBack()
		out = append(out, entity)
		for i := len(entity.Entities) - 1; i >= 0; i-- {
			stack.PushBack(&entity.Entities[i])
		}
	}

	return out
}

// RegistrarName returns the full name of the last top-level registrar entity.
// A later registrar entry overrides earlier ones even when its name is empty.
func RegistrarName(entities []rdap.Entity) (string, bool) {
	i := utils.LastIndexFunc(entities, func(e rdap.Entity) bool {
		return hasRole(&e, roleRegistrar)
	})
	if i == -1 {
		return "", false
	}

	name := fullName(&entities[i])
	return name, name != ""
}

// AbuseEmail returns the address of the most recently changed abuse contact
// anywhere in the entity tree.
func AbuseEmail(entities []rdap.Entity) (string, bool) {
	var candidates []*rdap.Entity
	for _, entity := range Flatten(entities) {
		if hasRole(entity, roleAbuse) && emailAddress(entity) != "" {
			candidates = append(candidates, entity)
		}
	}

	best := mostRecentlyChanged(candidates)
	if best == nil {
		return "", false
	}

	return emailAddress(best), true
}

// ProviderName returns the name of the most recently changed top-level
// registrant of a network record.
func ProviderName(entities []rdap.Entity) (string, bool) {
	var candidates []*rdap.Entity
	for i := range entities {
		if hasRole(&entities[i], roleRegistrant) && fullName(&entities[i]) != "" {
			candidates = append(candidates, &entities[i])
		}
	}

	best := mostRecentlyChanged(candidates)
	if best == nil {
		return "", false
	}

	return fullName(best), true
}

// RegistrationDate returns the date of the first parseable registration event.
func RegistrationDate(events []rdap.Event) (time.Time, bool) {
	for _, event := range events {
		if !strings.EqualFold(event.Action, actionRegistration) {
			continue
		}
		if at, ok := parseDate(event.Date); ok {
			return at, true
		}
	}

	return time.Time{}, false
}

// LastChanged returns the latest "last changed" event date of the entity.
func LastChanged(entity *rdap.Entity) (time.Time, bool) {
	var (
		latest time.Time
		found  bool
	)

	for _, event := range entity.Events {
		if !strings.EqualFold(event.Action, actionLastChanged) {
			continue
		}
		if at, ok := parseDate(event.Date); ok && (!found || at.After(latest)) {
			latest, found = at, true
		}
	}

	return latest, found
}

// IsOlder orders entities by recency. Entities without a "last changed" event
// are older than any entity that has one.
func IsOlder(a, b *rdap.Entity) bool {
	aAt, aOk := LastChanged(a)
	bAt, bOk := LastChanged(b)

	switch {
	case !aOk:
		return bOk
	case !bOk:
		return false
	default:
		return aAt.Before(bAt)
	}
}

// mostRecentlyChanged picks the newest entity; among equally recent ones the
// later entry wins.
func mostRecentlyChanged(entities []*rdap.Entity) *rdap.Entity {
	var best *rdap.Entity
	for _, entity := range entities {
		if best == nil || !IsOlder(entity, best) {
			best = entity
		}
	}

	return best
}

func hasRole(entity *rdap.Entity, role string) bool {
	return utils.Index(entity.Roles, role) != -1
}

func fullName(entity *rdap.Entity) string {
	return firstValue(entity.VCard, "fn")
}

func emailAddress(entity *rdap.Entity) string {
	return strings.ToLower(firstValue(entity.VCard, "email"))
}

// firstValue scans every property with the given name, multi-valued ones
// included, and returns the first non-blank value.
func firstValue(vcard *rdap.VCard, name string) string {
	if vcard == nil {
		return ""
	}

	for _, property := range vcard.Get(name) {
		if property == nil {
			continue
		}
		for _, value := range property.Values() {
			if value = strings.TrimSpace(value); value != "" {
				return value
			}
		}
	}

	return ""
}

func parseDate(raw string) (time.Time, bool) {
	at, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}

	return at, true
}
