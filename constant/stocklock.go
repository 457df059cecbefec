package constant

// LockScope separates business holds (released by a caller action) from
// operational holds (completed when a physical task finishes).
type LockScope string

const (
	LockScopeBusiness    LockScope = "business"
	LockScopeOperational LockScope = "operational"
)

func (s LockScope) Valid() bool {
	return s == LockScopeBusiness || s == LockScopeOperational
}

type LockStatus int

const (
	LockStatusActive    LockStatus = 1
	LockStatusReleased  LockStatus = 2
	LockStatusExpired   LockStatus = 3
	LockStatusCompleted LockStatus = 4
	LockStatusCancelled LockStatus = 5
)

func (s LockStatus) Terminal() bool {
	return s != LockStatusActive
}

type LockType string

// Business lock types.
const (
	LockTypeOrder     LockType = "order"
	LockTypePromotion LockType = "promotion"
	LockTypeSystem    LockType = "system"
	LockTypeManual    LockType = "manual"
)

// Operational lock types.
const (
	LockTypeInventory   LockType = "inventory"
	LockTypeAdjustment  LockType = "adjustment"
	LockTypeMaintenance LockType = "maintenance"
	LockTypeAudit       LockType = "audit"
)

// ValidFor reports whether the type belongs to the given scope's vocabulary.
func (t LockType) ValidFor(scope LockScope) bool {
	switch scope {
	case LockScopeBusiness:
		switch t {
		case LockTypeOrder, LockTypePromotion, LockTypeSystem, LockTypeManual:
			return true
		}
	case LockScopeOperational:
		switch t {
		case LockTypeInventory, LockTypeAdjustment, LockTypeMaintenance, LockTypeAudit:
			return true
		}
	}
	return false
}
