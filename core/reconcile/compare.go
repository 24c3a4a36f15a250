package reconcile

import (
	"asset-registry/core/utils"

	"github.com/shopspring/decimal"
)

// ValuesEqual compares a sheet value with a stored value.
// Blank markers count as empty. When both sides parse as decimals they are
// compared numerically, otherwise as trimmed strings.
func ValuesEqual(sheet, stored string) bool {
	a, b := utils.Clean(sheet), utils.Clean(stored)
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}

	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA == nil && errB == nil {
		return da.Equal(db)
	}
	return false
}
