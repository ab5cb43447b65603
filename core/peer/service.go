package peer

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a peer does not exist or belongs to
	// another user.
	ErrNotFound = errors.New("peer not found")
)

type Repository interface {
	CreatePeer(ctx context.Context, p *Peer) error
	QueryPeersByUserID(ctx context.Context, uid string) ([]Peer, error)
	DeletePeer(ctx context.Context, uid, id string) error
}

type Service interface {
	Create(ctx context.Context, uid string, np NewPeer) (Peer, error)
	Query(ctx context.Context, uid string) ([]Peer, error)
	Delete(ctx context.Context, uid, id string) error
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, uid string, np NewPeer) (Peer, error) {
	p := Peer{
		UserID:    uid,
		Name:      np.Name,
		CGPA:      np.CGPA,
		Semesters: np.Semesters,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.repo.CreatePeer(ctx, &p); err != nil {
		return Peer{}, err
	}
	return p, nil
}

func (svc *service) Query(ctx context.Context, uid string) ([]Peer, error) {
	return svc.repo.QueryPeersByUserID(ctx, uid)
}

func (svc *service) Delete(ctx context.Context, uid, id string) error {
	return svc.repo.DeletePeer(ctx, uid, id)
}
