package firstadmin

import (
	"context"
	"database/sql"
)

// bootstrapLockKey serializes concurrent bootstrap attempts via a postgres
// advisory lock held for the transaction. Two requests that both observed
// zero roles cannot both pass the count check: the second blocks on the lock
// and re-reads the count after the first commits.
const bootstrapLockKey = 784312001

//go:generate mockgen -source=firstadmin_repo.go -destination=mock/firstadmin_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	AcquireBootstrapLock(ctx context.Context) error
	CountRoles(ctx context.Context) (int64, error)
	CreateAuthUser(ctx context.Context, id, email, passwordHash string) error
	AssignRole(ctx context.Context, userID, role string) error
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) AcquireBootstrapLock(ctx context.Context) error {
	// pg_advisory_xact_lock releases automatically on commit/rollback
	_, err := r.execer().ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, bootstrapLockKey)
	return err
}

func (r *repository) CountRoles(ctx context.Context) (int64, error) {
	var count int64
	err := r.queryer().QueryRowContext(ctx, `SELECT COUNT(*) FROM user_roles`).Scan(&count)
	return count, err
}

func (r *repository) CreateAuthUser(ctx context.Context, id, email, passwordHash string) error {
	query := `
        INSERT INTO auth_users (id, email, password_hash, email_confirmed, is_active)
        VALUES ($1, $2, $3, TRUE, TRUE)
    `
	_, err := r.execer().ExecContext(ctx, query, id, email, passwordHash)
	return err
}

func (r *repository) AssignRole(ctx context.Context, userID, role string) error {
	query := `
        INSERT INTO user_roles (id, user_id, role)
        VALUES (gen_random_uuid(), $1, $2)
    `
	_, err := r.execer().ExecContext(ctx, query, userID, role)
	return err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) queryer() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
