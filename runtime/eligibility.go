package runtime

import (
	"chat-archive/domain"
	"sort"
	"strings"
	"sync"
)

// Eligibility decides which addresses take part in archived conversations.
// Gateways can be registered and unregistered while the node runs.
type Eligibility struct {
	mu       sync.RWMutex
	domain   string
	gateways map[string]struct{}
}

func NewEligibility(serverDomain string, gateways ...string) *Eligibility {
	e := &Eligibility{
		domain:   strings.ToLower(serverDomain),
		gateways: make(map[string]struct{}),
	}
	for _, g := range gateways {
		e.AddGateway(g)
	}
	return e
}

func (e *Eligibility) AddGateway(domain string) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gateways[domain] = struct{}{}
}

func (e *Eligibility) RemoveGateway(domain string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.gateways, strings.ToLower(strings.TrimSpace(domain)))
}

// Gateways lists the registered gateway domains.
func (e *Eligibility) Gateways() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	gateways := make([]string, 0, len(e.gateways))
	for g := range e.gateways {
		gateways = append(gateways, g)
	}
	sort.Strings(gateways)
	return gateways
}

func (e *Eligibility) IsGateway(domain string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.gateways[strings.ToLower(domain)]
	return ok
}

// IsEligible applies the archiving rule to one address:
// no local part means a service, never archived; local users and gateway
// users always are; other addresses are archived unless they live on a
// subdomain of this deployment (components, group chat, pubsub).
func (e *Eligibility) IsEligible(a domain.Address) bool {
	if !a.HasLocal() {
		return false
	}
	if a.Domain == e.domain || e.IsGateway(a.Domain) {
		return true
	}
	return !strings.HasSuffix(a.Domain, "."+e.domain)
}

// IsConversation reports whether both ends of an exchange are eligible.
func (e *Eligibility) IsConversation(sender, receiver domain.Address) bool {
	return e.IsEligible(sender) && e.IsEligible(receiver)
}
