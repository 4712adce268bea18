package portalerrors

import (
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"
)

var (
	// An unknown code is an expected outcome, surfaced as informational 404.
	ErrCodigoNotFound = apperror.New(
		apperror.CodeNotFound,
		"El código ingresado no existe",
		http.StatusNotFound,
	)

	ErrCodigoRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Debe ingresar un código",
		http.StatusBadRequest,
	)
)
