package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/getgradient/gradient/core/grading"
	"github.com/getgradient/gradient/core/session"
)

type sessionRow struct {
	ID             string       `db:"id"`
	UserID         string       `db:"user_id"`
	Semesters      []byte       `db:"semesters"`
	Metadata       []byte       `db:"metadata"`
	CustomMappings []byte       `db:"custom_mappings"`
	CGPA           null.Float64 `db:"cgpa"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

func (r sessionRow) session() (session.Session, error) {
	sess := session.Session{
		ID:        r.ID,
		UserID:    r.UserID,
		CGPA:      r.CGPA,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if err := json.Unmarshal(r.Semesters, &sess.Semesters); err != nil {
		return session.Session{}, errors.Wrap(err, "decoding semesters")
	}
	if err := json.Unmarshal(r.Metadata, &sess.Metadata); err != nil {
		return session.Session{}, errors.Wrap(err, "decoding metadata")
	}
	if len(r.CustomMappings) > 0 {
		if err := json.Unmarshal(r.CustomMappings, &sess.CustomMappings); err != nil {
			return session.Session{}, errors.Wrap(err, "decoding custom mappings")
		}
	}
	return sess, nil
}

type sessionRepository struct {
	db *sqlx.DB
}

var _ session.Repository = (*sessionRepository)(nil)

func NewSessionRepository(db *sql.DB) session.Repository {
	return &sessionRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *sessionRepository) GetSessionByUserID(ctx context.Context, uid string) (session.Session, error) {
	var row sessionRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM user_session WHERE user_id = $1`, uid); err != nil {
		if err == sql.ErrNoRows {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, errors.Wrap(err, "getting session")
	}
	return row.session()
}

func (repo *sessionRepository) UpsertSession(ctx context.Context, sess *session.Session) error {
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.Semesters == nil {
		sess.Semesters = []grading.Semester{}
	}

	semesters, err := json.Marshal(sess.Semesters)
	if err != nil {
		return errors.Wrap(err, "encoding semesters")
	}
	metadata, err := json.Marshal(sess.Metadata)
	if err != nil {
		return errors.Wrap(err, "encoding metadata")
	}
	var customMappings []byte
	if len(sess.CustomMappings) > 0 {
		if customMappings, err = json.Marshal(sess.CustomMappings); err != nil {
			return errors.Wrap(err, "encoding custom mappings")
		}
	}

	const query = `
		INSERT INTO user_session (id, user_id, semesters, metadata, custom_mappings, cgpa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET semesters = EXCLUDED.semesters, metadata = EXCLUDED.metadata,
		    custom_mappings = EXCLUDED.custom_mappings, cgpa = EXCLUDED.cgpa,
		    updated_at = EXCLUDED.updated_at`
	if _, err = repo.db.ExecContext(ctx, query,
		sess.ID, sess.UserID, semesters, metadata, customMappings, sess.CGPA, sess.CreatedAt, sess.UpdatedAt,
	); err != nil {
		return errors.Wrap(err, "upserting session")
	}
	return nil
}

func (repo *sessionRepository) DeleteSessionByUserID(ctx context.Context, uid string) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM user_session WHERE user_id = $1`, uid); err != nil {
		return errors.Wrap(err, "deleting session")
	}
	return nil
}
