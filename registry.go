package status

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// domainRegistry maps identities to the domains created in this process.
type domainRegistry struct {
	mu     sync.RWMutex
	byID   map[DomainID]Domain
	order  []Domain
	nextID atomic.Uint64
}

var registry = &domainRegistry{
	byID: make(map[DomainID]Domain),
}

// autoIDBase keeps allocated IDs in a range that folded UUIDs are unlikely to hit.
const autoIDBase = 1 << 63

func (r *domainRegistry) add(d interface {
	Domain
	setID(DomainID)
}, cfg *domainConfig,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := cfg.id
	if !cfg.fixed {
		id = DomainID(autoIDBase | r.nextID.Add(1))
	}
	if id == 0 {
		return fmt.Errorf("domain %q: %w", d.Name(), ErrReservedID)
	}
	if existing, ok := r.byID[id]; ok {
		return fmt.Errorf("domain %q: %w: %s already registered as %q",
			d.Name(), ErrDuplicateDomain, id, existing.Name())
	}

	d.setID(id)
	r.byID[id] = d
	r.order = append(r.order, d)
	return nil
}

func (r *domainRegistry) lookup(id DomainID) (Domain, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// LookupDomain returns the domain registered under id.
func LookupDomain(id DomainID) (Domain, bool) {
	return registry.lookup(id)
}

// FindDomain returns the first registered domain with the given name.
func FindDomain(name string) (Domain, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	for _, d := range registry.order {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// Domains returns every registered domain in registration order.
func Domains() []Domain {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	out := make([]Domain, len(registry.order))
	copy(out, registry.order)
	return out
}

// SameDomain reports whether a and b are the same domain. Two nil domains are
// the same; a nil and a non-nil domain are not.
func SameDomain(a, b Domain) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
