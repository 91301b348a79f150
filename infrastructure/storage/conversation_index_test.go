package storage

import (
	"chat-archive/domain"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConversationIndex_Search(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	ab := conversation("alice@x.org", "bob@x.org", base)
	ac := conversation("alice@x.org", "carol@x.org", base.Add(time.Hour))
	bc := conversation("bob@x.org", "carol@x.org", base.Add(2*time.Hour))
	req.NoError(f.index.Index(ab, ac, bc))

	testCases := []struct {
		name   string
		search domain.ArchiveSearch
		want   []string
	}{
		{"everything in creation order", domain.ArchiveSearch{}, []string{ab.ID, ac.ID, bc.ID}},
		{"one participant", domain.ArchiveSearch{Participants: []string{"alice@x.org"}}, []string{ab.ID, ac.ID}},
		{"two participants", domain.ArchiveSearch{Participants: []string{"carol@x.org", "bob@x.org"}}, []string{bc.ID}},
		{"created up to a cutoff", domain.ArchiveSearch{CreatedTo: ac.CreatedAt}, []string{ab.ID, ac.ID}},
		{"created from", domain.ArchiveSearch{CreatedFrom: ac.CreatedAt}, []string{ac.ID, bc.ID}},
		{"participant and window", domain.ArchiveSearch{
			Participants: []string{"carol@x.org"}, CreatedFrom: base, CreatedTo: base.Add(90 * time.Minute),
		}, []string{ac.ID}},
		{"paged", domain.ArchiveSearch{StartIndex: 1, NumResults: 1}, []string{ac.ID}},
		{"unknown participant", domain.ArchiveSearch{Participants: []string{"zed@x.org"}}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids, err := f.index.Search(ctx, tc.search)
			require.NoError(t, err)
			require.Equal(t, tc.want, ids)
		})
	}
}

func TestConversationIndex_UpdateKeepsOneDocument(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	c := conversation("alice@x.org", "bob@x.org", base)
	req.NoError(f.index.Index(c))
	c.MessageReceived(base.Add(time.Minute))
	req.NoError(f.index.Index(c))

	ids, err := f.index.Search(context.Background(), domain.ArchiveSearch{})
	req.NoError(err)
	req.Equal([]string{c.ID}, ids)

	req.NoError(f.index.Delete(c.ID))
	ids, err = f.index.Search(context.Background(), domain.ArchiveSearch{})
	req.NoError(err)
	req.Empty(ids)
}
