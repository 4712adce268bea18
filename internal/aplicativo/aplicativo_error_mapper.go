package aplicativo

import (
	"errors"
	"strings"

	aplicativoerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return aplicativoerrors.ErrAplicativoNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return aplicativoerrors.ErrReferenciaNoExiste
	}
	if strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint") {
		return aplicativoerrors.ErrReferenciaNoExiste
	}

	return err
}
