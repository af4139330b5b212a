package status

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// domainConfig holds the settings applied when a domain is registered.
type domainConfig struct {
	id    DomainID
	fixed bool
}

func newDomainConfig() *domainConfig {
	return &domainConfig{}
}

// DomainOption configures a domain at creation time.
type DomainOption func(*domainConfig)

// WithID gives the domain a fixed identity instead of one allocated by the
// process. Separately built modules exchanging erased codes must agree on it.
func WithID(id DomainID) DomainOption {
	return func(c *domainConfig) {
		c.id = id
		c.fixed = true
	}
}

// WithUUID derives the domain identity from a UUID string by folding its two
// 64-bit halves together. It panics if s is not a valid UUID.
//
// Example:
//
//	status.NewDomain[Errno]("posix", posixSemantics{},
//	    status.WithUUID("a9c2b1f4-0d2e-4c8a-9f61-2b7de3a04c55"))
func WithUUID(s string) DomainOption {
	return WithID(IDFromUUID(uuid.MustParse(s)))
}

// IDFromUUID folds a UUID into a DomainID.
func IDFromUUID(u uuid.UUID) DomainID {
	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])
	return DomainID(hi ^ lo)
}
