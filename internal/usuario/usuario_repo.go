package usuario

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

//go:generate mockgen -source=usuario_repo.go -destination=mock/usuario_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *Usuario) error
	FindAll(ctx context.Context, empresaID string) ([]Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Usuario, error)
	EmpresaExists(ctx context.Context, empresaID uuid.UUID) (bool, error)
	Update(ctx context.Context, u *Usuario) error
	SetActivo(ctx context.Context, id uuid.UUID, activo bool) error
	Delete(ctx context.Context, id uuid.UUID) error
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

const usuarioColumns = `
    u.id, u.empresa_id, u.numero_documento, u.nombre_completo,
    COALESCE(u.celular, ''), COALESCE(u.email, ''), COALESCE(u.codigo_unico, ''),
    COALESCE(u.activo, TRUE), COALESCE(u.datos_adicionales, 'null'::jsonb),
    u.created_at, u.updated_at, e.nombre
`

func scanUsuario(row interface{ Scan(...any) error }) (*Usuario, error) {
	var u Usuario
	err := row.Scan(
		&u.ID, &u.EmpresaID, &u.NumeroDocumento, &u.NombreCompleto,
		&u.Celular, &u.Email, &u.CodigoUnico,
		&u.Activo, &u.DatosAdicionales,
		&u.CreatedAt, &u.UpdatedAt, &u.EmpresaNombre,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, u *Usuario) error {
	query := `
        INSERT INTO usuarios_finales
            (id, empresa_id, numero_documento, nombre_completo, celular, email,
             codigo_unico, activo, datos_adicionales)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9)
    `
	_, err := r.execer().ExecContext(ctx, query,
		u.ID, u.EmpresaID, u.NumeroDocumento, u.NombreCompleto, u.Celular, u.Email,
		u.CodigoUnico, u.Activo, nullableJSON(u.DatosAdicionales),
	)
	return err
}

func (r *repository) FindAll(ctx context.Context, empresaID string) ([]Usuario, error) {
	query := `
        SELECT ` + usuarioColumns + `
        FROM usuarios_finales u
        JOIN empresas e ON e.id = u.empresa_id
    `
	args := []any{}
	if empresaID != "" {
		query += ` WHERE u.empresa_id = $1`
		args = append(args, empresaID)
	}
	query += ` ORDER BY u.created_at DESC`

	rows, err := r.queryer().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	return result, rows.Err()
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Usuario, error) {
	query := `
        SELECT ` + usuarioColumns + `
        FROM usuarios_finales u
        JOIN empresas e ON e.id = u.empresa_id
        WHERE u.id = $1
    `
	return scanUsuario(r.queryer().QueryRowContext(ctx, query, id))
}

func (r *repository) EmpresaExists(ctx context.Context, empresaID uuid.UUID) (bool, error) {
	var exists bool
	err := r.queryer().
		QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM empresas WHERE id = $1)`, empresaID).
		Scan(&exists)
	return exists, err
}

func (r *repository) Update(ctx context.Context, u *Usuario) error {
	query := `
        UPDATE usuarios_finales
        SET numero_documento = $2, nombre_completo = $3, celular = NULLIF($4, ''),
            email = NULLIF($5, ''), datos_adicionales = $6, updated_at = now()
        WHERE id = $1
    `
	result, err := r.execer().ExecContext(ctx, query,
		u.ID, u.NumeroDocumento, u.NombreCompleto, u.Celular, u.Email,
		nullableJSON(u.DatosAdicionales),
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *repository) SetActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	result, err := r.execer().ExecContext(ctx,
		`UPDATE usuarios_finales SET activo = $2, updated_at = now() WHERE id = $1`,
		id, activo,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.execer().ExecContext(ctx, `DELETE FROM usuarios_finales WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
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
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
