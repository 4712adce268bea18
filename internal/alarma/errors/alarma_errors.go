package alarmaerrors

import (
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"
)

var (
	ErrAlarmaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Alarma no encontrada",
		http.StatusNotFound,
	)

	ErrInvalidAlarmaID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de alarma inválido",
		http.StatusBadRequest,
	)

	ErrInvalidUsuarioID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de usuario inválido",
		http.StatusBadRequest,
	)

	ErrUsuarioNoExiste = apperror.New(
		apperror.CodeInvalidInput,
		"El usuario referenciado no existe",
		http.StatusBadRequest,
	)
)
