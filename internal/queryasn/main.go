// Package queryasn resolves the organisation announcing an IP address from a
// local GeoLite2-ASN database.
package queryasn

import (
	"net"
	"net/netip"
	"strings"

	"github.com/oschwald/geoip2-golang"
	"github.com/rotisserie/eris"
)

// Database is the subset of *geoip2.Reader used here.
type Database interface {
	ASN(ip net.IP) (*geoip2.ASN, error)
}

type Resolver struct {
	db     Database
	closer func() error
}

// Open loads a GeoLite2-ASN database from disk.
func Open(path string) (*Resolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "could not open ASN database %s", path)
	}

	return &Resolver{db: reader, closer: reader.Close}, nil
}

func New(db Database) *Resolver {
	return &Resolver{db: db}
}

// IPAddrToAS returns the AS number and organisation announcing ip.
func (r *Resolver) IPAddrToAS(ip netip.Addr) (uint, string, bool) {
	if r == nil || r.db == nil || !ip.IsValid() {
		return 0, "", false
	}

	record, err := r.db.ASN(net.IP(ip.AsSlice()))
	if err != nil || record == nil {
		return 0, "", false
	}

	organization := strings.TrimSpace(record.AutonomousSystemOrganization)
	if record.AutonomousSystemNumber == 0 && organization == "" {
		return 0, "", false
	}

	return record.AutonomousSystemNumber, organization, true
}

func (r *Resolver) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}

	return r.closer()
}
