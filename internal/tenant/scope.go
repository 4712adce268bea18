package tenant

import "gorm.io/gorm"

// Scope filters a query to rows owned by one empresa.
func Scope(empresaID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("empresa_id = ?", empresaID)
	}
}
