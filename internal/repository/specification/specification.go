package specification

import "gorm.io/gorm"

// Specification is a composable query constraint. Repositories apply a
// variadic list of them to the base query, so callers express filtering,
// ordering and limits without touching gorm directly.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
