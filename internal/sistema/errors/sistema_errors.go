package sistemaerrors

import (
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"
)

var (
	ErrConfiguracionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Configuración no encontrada",
		http.StatusNotFound,
	)

	ErrClaveRequired = apperror.New(
		apperror.CodeInvalidInput,
		"La clave de configuración es requerida",
		http.StatusBadRequest,
	)
)
