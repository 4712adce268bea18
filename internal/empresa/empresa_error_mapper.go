package empresa

import (
	"database/sql"
	"errors"
	"strings"

	empresaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/empresa/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return empresaerrors.ErrEmpresaNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return empresaerrors.ErrEmpresaNombreTaken
		case "23503":
			// Foreign key violation on delete means dependents still exist
			return empresaerrors.ErrEmpresaHasUsuarios
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return empresaerrors.ErrEmpresaNombreTaken
	}
	if strings.Contains(errMsg, "violates foreign key constraint") {
		return empresaerrors.ErrEmpresaHasUsuarios
	}

	return err
}
