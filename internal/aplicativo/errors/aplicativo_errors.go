package aplicativoerrors

import (
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"
)

var (
	ErrAplicativoNotFound = apperror.New(
		apperror.CodeNotFound,
		"Aplicativo no encontrado",
		http.StatusNotFound,
	)

	ErrInvalidAplicativoID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de aplicativo inválido",
		http.StatusBadRequest,
	)

	ErrInvalidEmpresaID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de empresa inválido",
		http.StatusBadRequest,
	)

	ErrAsignacionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asignación no encontrada",
		http.StatusNotFound,
	)

	ErrInvalidUsuarioID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de usuario inválido",
		http.StatusBadRequest,
	)

	// Exactly one of the two application references must be present.
	ErrAsignacionReferencia = apperror.New(
		apperror.CodeInvalidInput,
		"La asignación debe referenciar exactamente un aplicativo",
		http.StatusBadRequest,
	)

	ErrReferenciaNoExiste = apperror.New(
		apperror.CodeInvalidInput,
		"El usuario o aplicativo referenciado no existe",
		http.StatusBadRequest,
	)
)
