package session

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/getgradient/gradient/core"
)

var (
	// ErrNotFound is returned when a user has no saved session.
	ErrNotFound = errors.New("session not found")
)

type Repository interface {
	GetSessionByUserID(ctx context.Context, uid string) (Session, error)
	UpsertSession(ctx context.Context, sess *Session) error
	DeleteSessionByUserID(ctx context.Context, uid string) error
}

type Service interface {
	Get(ctx context.Context, uid string) (Session, error)
	Save(ctx context.Context, uid string, ss SaveSession) (Session, Result, error)
	Delete(ctx context.Context, uid string) error
}

type service struct {
	repo Repository
	log  core.Logger
}

var _ Service = (*service)(nil)

func NewService(repo Repository, log core.Logger) Service {
	return &service{repo: repo, log: log}
}

func (svc *service) Get(ctx context.Context, uid string) (Session, error) {
	sess, err := svc.repo.GetSessionByUserID(ctx, uid)
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Save replaces the user's gradebook and recomputes all derived values before
// persisting. Client-supplied GPA/CGPA values are never trusted.
func (svc *service) Save(ctx context.Context, uid string, ss SaveSession) (Session, Result, error) {
	res := Compute(ss.Semesters, ss.Metadata, ss.CustomMappings)

	now := time.Now().UTC()
	sess := Session{
		UserID:         uid,
		Semesters:      res.Semesters,
		Metadata:       ss.Metadata,
		CustomMappings: ss.CustomMappings,
		CGPA:           res.CGPA,
		UpdatedAt:      now,
	}

	if prev, err := svc.repo.GetSessionByUserID(ctx, uid); err == nil {
		sess.ID = prev.ID
		sess.CreatedAt = prev.CreatedAt
	} else if errors.Cause(err) != ErrNotFound {
		return Session{}, Result{}, err
	} else {
		sess.CreatedAt = now
	}

	if err := svc.repo.UpsertSession(ctx, &sess); err != nil {
		return Session{}, Result{}, err
	}
	svc.log.Debug("session saved: " + summarize(res))
	return sess, res, nil
}

func (svc *service) Delete(ctx context.Context, uid string) error {
	return svc.repo.DeleteSessionByUserID(ctx, uid)
}
