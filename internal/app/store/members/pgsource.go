// internal/app/store/members/pgsource.go
package memberstore

import (
	"context"
	"errors"

	"github.com/dalemusser/freelancehub/internal/domain/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads members and their work history from Postgres.
type PostgresSource struct {
	Pool *pgxpool.Pool
}

func (s PostgresSource) Name() string { return SourcePostgres }

// PostgresSchema creates the tables read by PostgresSource.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS members (
	id         TEXT PRIMARY KEY,
	position   INTEGER NOT NULL DEFAULT 0,
	name       TEXT NOT NULL,
	photo      TEXT NOT NULL DEFAULT '',
	expertise  TEXT[] NOT NULL DEFAULT '{}',
	tech_stack TEXT[] NOT NULL DEFAULT '{}',
	portfolio  TEXT NOT NULL DEFAULT '',
	education  TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	available  BOOLEAN NOT NULL DEFAULT FALSE,
	bio        TEXT
);

CREATE TABLE IF NOT EXISTS member_work_history (
	member_id    TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL DEFAULT 0,
	project_name TEXT NOT NULL,
	company      TEXT NOT NULL DEFAULT '',
	duration     TEXT NOT NULL DEFAULT '',
	description  TEXT NOT NULL DEFAULT '',
	link         TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (member_id, position)
);
`

// EnsurePostgresSchema applies PostgresSchema.
func EnsurePostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := pool.Exec(ctx, PostgresSchema)
	return err
}

func (s PostgresSource) Load(ctx context.Context) ([]models.Member, error) {
	if s.Pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	rows, err := s.Pool.Query(ctx, `
		SELECT id, name, photo, expertise, tech_stack, portfolio,
		       education, email, available, bio
		FROM members
		ORDER BY position, id
	`)
	if err != nil {
		return nil, err
	}
	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Member, error) {
		var m models.Member
		err := row.Scan(&m.ID, &m.Name, &m.Photo, &m.Expertise, &m.TechStack,
			&m.Portfolio, &m.Education, &m.Email, &m.Available, &m.Bio)
		return m, err
	})
	if err != nil {
		return nil, err
	}

	history, err := s.loadWorkHistory(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].WorkHistory = history[members[i].ID]
	}
	return members, nil
}

func (s PostgresSource) loadWorkHistory(ctx context.Context) (map[string][]models.WorkHistoryEntry, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT member_id, project_name, company, duration, description, link
		FROM member_work_history
		ORDER BY member_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]models.WorkHistoryEntry)
	for rows.Next() {
		var memberID string
		var e models.WorkHistoryEntry
		if err := rows.Scan(&memberID, &e.ProjectName, &e.Company, &e.Duration, &e.Description, &e.Link); err != nil {
			return nil, err
		}
		out[memberID] = append(out[memberID], e)
	}
	return out, rows.Err()
}
