package empresaerrors

import (
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"
)

var (
	ErrEmpresaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Empresa no encontrada",
		http.StatusNotFound,
	)

	ErrInvalidEmpresaID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de empresa inválido",
		http.StatusBadRequest,
	)

	ErrEmpresaNombreTaken = apperror.New(
		apperror.CodeConflict,
		"Ya existe una empresa con ese nombre",
		http.StatusConflict,
	)

	// Delete policy is restrict: dependents must be removed first.
	ErrEmpresaHasUsuarios = apperror.New(
		apperror.CodeConflict,
		"No se puede eliminar la empresa porque tiene usuarios asociados",
		http.StatusConflict,
	)
)
