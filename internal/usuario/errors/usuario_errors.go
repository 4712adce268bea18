package usuarioerrors

import (
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"
)

var (
	ErrUsuarioNotFound = apperror.New(
		apperror.CodeNotFound,
		"Usuario no encontrado",
		http.StatusNotFound,
	)

	ErrInvalidUsuarioID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de usuario inválido",
		http.StatusBadRequest,
	)

	ErrInvalidEmpresaID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de empresa inválido",
		http.StatusBadRequest,
	)

	ErrEmpresaNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"La empresa indicada no existe",
		http.StatusBadRequest,
	)

	// Collisions are rejected, never silently suffixed.
	ErrCodigoUnicoConflict = apperror.New(
		apperror.CodeConflict,
		"Ya existe un usuario con ese código único",
		http.StatusConflict,
	)
)
