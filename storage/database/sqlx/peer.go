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

	"github.com/getgradient/gradient/core/peer"
)

type peerRow struct {
	ID        string      `db:"id"`
	UserID    string      `db:"user_id"`
	Name      string      `db:"name"`
	CGPA      null.String `db:"cgpa"`
	Semesters []byte      `db:"semesters"`
	CreatedAt time.Time   `db:"created_at"`
}

func (r peerRow) peer() (peer.Peer, error) {
	p := peer.Peer{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		CGPA:      r.CGPA,
		CreatedAt: r.CreatedAt,
	}
	if len(r.Semesters) > 0 {
		if err := json.Unmarshal(r.Semesters, &p.Semesters); err != nil {
			return peer.Peer{}, errors.Wrap(err, "decoding semesters")
		}
	}
	return p, nil
}

type peerRepository struct {
	db *sqlx.DB
}

var _ peer.Repository = (*peerRepository)(nil)

func NewPeerRepository(db *sql.DB) peer.Repository {
	return &peerRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *peerRepository) CreatePeer(ctx context.Context, p *peer.Peer) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	var semesters []byte
	if len(p.Semesters) > 0 {
		var err error
		if semesters, err = json.Marshal(p.Semesters); err != nil {
			return errors.Wrap(err, "encoding semesters")
		}
	}

	const query = `
		INSERT INTO peer (id, user_id, name, cgpa, semesters, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := repo.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Name, p.CGPA, semesters, p.CreatedAt,
	); err != nil {
		return errors.Wrap(err, "creating peer")
	}
	return nil
}

func (repo *peerRepository) QueryPeersByUserID(ctx context.Context, uid string) ([]peer.Peer, error) {
	var rows []peerRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM peer WHERE user_id = $1 ORDER BY created_at`, uid); err != nil {
		return nil, errors.Wrap(err, "querying peers")
	}
	peers := make([]peer.Peer, 0, len(rows))
	for _, r := range rows {
		p, err := r.peer()
		if err != nil {
			return nil, err
		}
		peers = append(peers, p)
	}
	return peers, nil
}

func (repo *peerRepository) DeletePeer(ctx context.Context, uid, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM peer WHERE id = $1 AND user_id = $2`, id, uid)
	if err != nil {
		return errors.Wrap(err, "deleting peer")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return peer.ErrNotFound
	}
	return nil
}
