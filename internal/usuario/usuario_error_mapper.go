package usuario

import (
	"database/sql"
	"errors"
	"strings"

	usuarioerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/usuario/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return usuarioerrors.ErrUsuarioNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return usuarioerrors.ErrCodigoUnicoConflict
		case "23503":
			return usuarioerrors.ErrEmpresaNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return usuarioerrors.ErrCodigoUnicoConflict
	}
	if strings.Contains(errMsg, "violates foreign key constraint") {
		return usuarioerrors.ErrEmpresaNotFound
	}

	return err
}
