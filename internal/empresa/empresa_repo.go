package empresa

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

//go:generate mockgen -source=empresa_repo.go -destination=mock/empresa_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Empresa) error
	FindAll(ctx context.Context) ([]Empresa, error)
	FindOptions(ctx context.Context) ([]EmpresaOption, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Empresa, error)
	Update(ctx context.Context, emp *Empresa) error
	SetActiva(ctx context.Context, id uuid.UUID, activa bool) error
	CountUsuarios(ctx context.Context, id uuid.UUID) (int64, error)
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

const empresaColumns = `
    id, nombre, COALESCE(nit, ''), COALESCE(direccion, ''), COALESCE(telefono, ''),
    COALESCE(email, ''), COALESCE(activa, TRUE), created_at, updated_at
`

func scanEmpresa(row interface{ Scan(...any) error }) (*Empresa, error) {
	var emp Empresa
	err := row.Scan(
		&emp.ID, &emp.Nombre, &emp.NIT, &emp.Direccion, &emp.Telefono,
		&emp.Email, &emp.Activa, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) Create(ctx context.Context, emp *Empresa) error {
	query := `
        INSERT INTO empresas (id, nombre, nit, direccion, telefono, email, activa)
        VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7)
    `
	_, err := r.execer().ExecContext(ctx, query,
		emp.ID, emp.Nombre, emp.NIT, emp.Direccion, emp.Telefono, emp.Email, emp.Activa,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context) ([]Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas ORDER BY created_at DESC`
	rows, err := r.queryer().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Empresa
	for rows.Next() {
		emp, err := scanEmpresa(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *emp)
	}
	return result, rows.Err()
}

func (r *repository) FindOptions(ctx context.Context) ([]EmpresaOption, error) {
	query := `SELECT id, nombre FROM empresas WHERE COALESCE(activa, TRUE) ORDER BY nombre`
	rows, err := r.queryer().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EmpresaOption
	for rows.Next() {
		var opt EmpresaOption
		if err := rows.Scan(&opt.ID, &opt.Nombre); err != nil {
			return nil, err
		}
		result = append(result, opt)
	}
	return result, rows.Err()
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE id = $1`
	return scanEmpresa(r.queryer().QueryRowContext(ctx, query, id))
}

func (r *repository) Update(ctx context.Context, emp *Empresa) error {
	query := `
        UPDATE empresas
        SET nombre = $2, nit = NULLIF($3, ''), direccion = NULLIF($4, ''),
            telefono = NULLIF($5, ''), email = NULLIF($6, ''), activa = $7,
            updated_at = now()
        WHERE id = $1
    `
	result, err := r.execer().ExecContext(ctx, query,
		emp.ID, emp.Nombre, emp.NIT, emp.Direccion, emp.Telefono, emp.Email, emp.Activa,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *repository) SetActiva(ctx context.Context, id uuid.UUID, activa bool) error {
	result, err := r.execer().ExecContext(ctx,
		`UPDATE empresas SET activa = $2, updated_at = now() WHERE id = $1`,
		id, activa,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *repository) CountUsuarios(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.queryer().
		QueryRowContext(ctx, `SELECT COUNT(*) FROM usuarios_finales WHERE empresa_id = $1`, id).
		Scan(&count)
	return count, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.execer().ExecContext(ctx, `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
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
