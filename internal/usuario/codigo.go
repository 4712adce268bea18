package usuario

import "strings"

// GenerateCodigoUnico derives the self-service lookup code from the document
// number and the first token of the full name. The derivation is
// deterministic so the same person always yields the same code; uniqueness is
// guaranteed by the database index, not by this function.
func GenerateCodigoUnico(numeroDocumento, nombreCompleto string) string {
	primerNombre := ""
	if tokens := strings.Fields(nombreCompleto); len(tokens) > 0 {
		primerNombre = strings.ToLower(tokens[0])
	}
	return strings.TrimSpace(numeroDocumento) + "_" + primerNombre
}
