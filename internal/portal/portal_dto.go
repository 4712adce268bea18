package portal

// PortalUsuarioResponse is the public self-service view. It deliberately
// carries no credentials: datos_acceso never leaves the database through this
// surface.
type PortalUsuarioResponse struct {
	NombreCompleto  string             `json:"nombre_completo"`
	NumeroDocumento string             `json:"numero_documento"`
	Celular         string             `json:"celular,omitempty"`
	Email           string             `json:"email,omitempty"`
	CodigoUnico     string             `json:"codigo_unico"`
	Activo          bool               `json:"activo"`
	EmpresaNombre   string             `json:"empresa_nombre"`
	Aplicativos     []PortalAplicativo `json:"aplicativos"`
}

// PortalAplicativo is one assigned application entry; Origen distinguishes
// catalog entries from per-empresa ones.
type PortalAplicativo struct {
	Nombre string `json:"nombre"`
	Icono  string `json:"icono,omitempty"`
	Origen string `json:"origen"`
}

const (
	OrigenGlobal  = "global"
	OrigenEmpresa = "empresa"
)
