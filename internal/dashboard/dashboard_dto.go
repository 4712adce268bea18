package dashboard

// StatsResponse is the admin landing page summary. Aplicativos counts both
// catalogs, global and per empresa.
type StatsResponse struct {
	Empresas    int64 `json:"empresas"`
	Usuarios    int64 `json:"usuarios"`
	Aplicativos int64 `json:"aplicativos"`
	Alarmas     int64 `json:"alarmas"`
}
