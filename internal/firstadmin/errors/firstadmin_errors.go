package firstadminerrors

import (
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"
)

var (
	// The wire contract for this error is 400, not 409.
	ErrAlreadyBootstrapped = apperror.New(
		apperror.CodeInvalidState,
		"Ya existe un usuario administrador",
		http.StatusBadRequest,
	)

	ErrIdentityCreationFailed = apperror.New(
		apperror.CodeInternalError,
		"No se pudo crear la cuenta del administrador",
		http.StatusInternalServerError,
	)

	ErrRoleAssignmentFailed = apperror.New(
		apperror.CodeInternalError,
		"No se pudo asignar el rol de administrador",
		http.StatusInternalServerError,
	)

	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Email inválido",
		http.StatusBadRequest,
	)

	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"La contraseña debe tener al menos 6 caracteres",
		http.StatusBadRequest,
	)
)
