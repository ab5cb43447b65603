package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/getgradient/gradient/core/session"
)

type sessionRepository struct {
	db *sessionTable
}

var _ session.Repository = (*sessionRepository)(nil)

func NewSessionRepository(db *DB) session.Repository {
	return &sessionRepository{db: db.session}
}

func (repo *sessionRepository) GetSessionByUserID(ctx context.Context, uid string) (session.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sess, ok := repo.db.table[uid]; ok {
		return *sess, nil
	}
	return session.Session{}, session.ErrNotFound
}

func (repo *sessionRepository) UpsertSession(ctx context.Context, sess *session.Session) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	stored := *sess
	repo.db.table[sess.UserID] = &stored
	return nil
}

func (repo *sessionRepository) DeleteSessionByUserID(ctx context.Context, uid string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	delete(repo.db.table, uid)
	return nil
}
