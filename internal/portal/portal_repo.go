package portal

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type UsuarioRow struct {
	ID              uuid.UUID
	NombreCompleto  string
	NumeroDocumento string
	Celular         string
	Email           string
	CodigoUnico     string
	Activo          bool
	EmpresaNombre   string
}

//go:generate mockgen -source=portal_repo.go -destination=mock/portal_repo_mock.go -package=mock
type Repository interface {
	FindByCodigo(ctx context.Context, codigo string) (*UsuarioRow, error)
	FindAplicativos(ctx context.Context, usuarioID uuid.UUID) ([]PortalAplicativo, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByCodigo(ctx context.Context, codigo string) (*UsuarioRow, error) {
	query := `
        SELECT u.id, u.nombre_completo, u.numero_documento,
               COALESCE(u.celular, ''), COALESCE(u.email, ''),
               u.codigo_unico, COALESCE(u.activo, TRUE), e.nombre
        FROM usuarios_finales u
        JOIN empresas e ON e.id = u.empresa_id
        WHERE u.codigo_unico = $1
    `
	var row UsuarioRow
	err := r.db.QueryRowContext(ctx, query, codigo).Scan(
		&row.ID, &row.NombreCompleto, &row.NumeroDocumento, &row.Celular, &row.Email,
		&row.CodigoUnico, &row.Activo, &row.EmpresaNombre,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindAplicativos resolves both assignment branches in one pass. datos_acceso
// is intentionally not selected.
func (r *repository) FindAplicativos(ctx context.Context, usuarioID uuid.UUID) ([]PortalAplicativo, error) {
	query := `
        SELECT
            COALESCE(g.nombre, c.nombre),
            COALESCE(g.icono, c.icono, ''),
            CASE WHEN g.id IS NOT NULL THEN 'global' ELSE 'empresa' END
        FROM asignaciones_aplicativos a
        LEFT JOIN aplicativos_globales g ON g.id = a.aplicativo_global_id
        LEFT JOIN aplicativos_empresa c ON c.id = a.aplicativo_empresa_id
        WHERE a.usuario_final_id = $1
        ORDER BY 1
    `
	rows, err := r.db.QueryContext(ctx, query, usuarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PortalAplicativo
	for rows.Next() {
		var app PortalAplicativo
		if err := rows.Scan(&app.Nombre, &app.Icono, &app.Origen); err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}
