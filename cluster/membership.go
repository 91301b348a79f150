// Package cluster tracks which node owns the conversation directory.
// Authority is decided outside the archive (configuration, or a PUT on the
// /authority endpoint of the debug server) and may move at any time.
package cluster

import (
	"chat-archive/contract"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// AuthorityListener is called after the authoritative node changed.
// local is true when this node just became the authority.
type AuthorityListener func(authority contract.NodeInfo, local bool)

type Membership struct {
	mu          sync.RWMutex
	local       contract.NodeInfo
	nodes       map[string]contract.NodeInfo
	authorityID string
	listeners   []AuthorityListener
}

// NewMembership registers the local node and its peers. The local node is always a member.
func NewMembership(local contract.NodeInfo, peers []contract.NodeInfo, authorityID string) *Membership {
	m := &Membership{
		local:       local,
		nodes:       map[string]contract.NodeInfo{local.ID: local},
		authorityID: authorityID,
	}
	for _, p := range peers {
		m.nodes[p.ID] = p
	}
	return m
}

func (m *Membership) LocalNodeID() string { return m.local.ID }

func (m *Membership) IsAuthoritative() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authorityID == m.local.ID
}

// Authority returns the authoritative node, false when it is unknown.
func (m *Membership) Authority() (contract.NodeInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[m.authorityID]
	return n, ok
}

// Nodes lists the members ordered by id.
func (m *Membership) Nodes() []contract.NodeInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	nodes := make([]contract.NodeInfo, 0, len(m.nodes))
	for _, n := range m.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

func (m *Membership) Subscribe(l AuthorityListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// SetAuthority moves the authority to the given member and notifies the listeners.
func (m *Membership) SetAuthority(id string) error {
	m.mu.Lock()
	node, ok := m.nodes[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("unknown cluster node %q", id)
	}
	if m.authorityID == id {
		m.mu.Unlock()
		return nil
	}
	m.authorityID = id
	listeners := append([]AuthorityListener(nil), m.listeners...)
	m.mu.Unlock()

	for _, l := range listeners {
		l(node, id == m.local.ID)
	}
	return nil
}

// ParsePeers reads a list of id=host:port pairs separated by commas.
func ParsePeers(raw string) ([]contract.NodeInfo, error) {
	var peers []contract.NodeInfo
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, addr, ok := strings.Cut(part, "=")
		if !ok || id == "" || addr == "" {
			return nil, fmt.Errorf("invalid peer %q, expected id=host:port", part)
		}
		peers = append(peers, contract.NodeInfo{ID: strings.TrimSpace(id), Addr: strings.TrimSpace(addr)})
	}
	return peers, nil
}
