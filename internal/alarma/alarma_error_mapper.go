package alarma

import (
	"errors"
	"strings"

	alarmaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/alarma/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return alarmaerrors.ErrAlarmaNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return alarmaerrors.ErrUsuarioNoExiste
	}
	if strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint") {
		return alarmaerrors.ErrUsuarioNoExiste
	}
	return err
}
