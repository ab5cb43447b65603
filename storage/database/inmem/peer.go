package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/getgradient/gradient/core/peer"
)

type peerRepository struct {
	db *peerTable
}

var _ peer.Repository = (*peerRepository)(nil)

func NewPeerRepository(db *DB) peer.Repository {
	return &peerRepository{db: db.peer}
}

func (repo *peerRepository) CreatePeer(ctx context.Context, p *peer.Peer) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	stored := *p
	repo.db.table[p.ID] = &stored
	return nil
}

func (repo *peerRepository) QueryPeersByUserID(ctx context.Context, uid string) ([]peer.Peer, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	peers := make([]peer.Peer, 0)
	for _, p := range repo.db.table {
		if p.UserID == uid {
			peers = append(peers, *p)
		}
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i].CreatedAt.Before(peers[j].CreatedAt) })
	return peers, nil
}

func (repo *peerRepository) DeletePeer(ctx context.Context, uid, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if p, ok := repo.db.table[id]; ok && p.UserID == uid {
		delete(repo.db.table, id)
		return nil
	}
	return peer.ErrNotFound
}
