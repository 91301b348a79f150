package runtime

import (
	"chat-archive/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEligibility_IsEligible(t *testing.T) {
	eligibility := NewEligibility("example.com", "icq.example.com")

	tests := []struct {
		name     string
		address  string
		eligible bool
	}{
		{"local user", "alice@example.com/phone", true},
		{"remote user", "bob@other.org", true},
		{"gateway user", "12345@icq.example.com", true},
		{"component subdomain", "room@conference.example.com", false},
		{"bare domain", "example.com", false},
		{"remote service", "other.org", false},
		{"domain is case insensitive", "carol@EXAMPLE.com", true},
		{"lookalike remote domain", "dave@notexample.com", true},
		{"nested component subdomain", "bot@a.b.example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.eligible, eligibility.IsEligible(domain.MustParseAddress(tt.address)))
		})
	}
}

func TestEligibility_Gateways(t *testing.T) {
	req := require.New(t)
	eligibility := NewEligibility("example.com")
	user := domain.MustParseAddress("42@msn.example.com")
	local := domain.MustParseAddress("alice@example.com")

	req.False(eligibility.IsConversation(local, user))

	// When the gateway is registered
	eligibility.AddGateway("MSN.example.com")
	req.True(eligibility.IsGateway("msn.example.com"))
	req.True(eligibility.IsConversation(local, user))
	req.Equal([]string{"msn.example.com"}, eligibility.Gateways())

	// When it is unregistered
	eligibility.RemoveGateway("msn.example.com")
	req.False(eligibility.IsConversation(local, user))
}
