package constant

type ReservationStatus int

const (
	ReservationStatusPending   ReservationStatus = 1
	ReservationStatusConfirmed ReservationStatus = 2
	ReservationStatusReleased  ReservationStatus = 3
	ReservationStatusExpired   ReservationStatus = 4
)

// Terminal reports whether the reservation can no longer transition.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusReleased || s == ReservationStatusExpired
}

type ReservationType string

const (
	ReservationTypeOrder     ReservationType = "order"
	ReservationTypePromotion ReservationType = "promotion"
	ReservationTypeVIP       ReservationType = "vip"
	ReservationTypeSystem    ReservationType = "system"
)

func (t ReservationType) Valid() bool {
	switch t {
	case ReservationTypeOrder, ReservationTypePromotion, ReservationTypeVIP, ReservationTypeSystem:
		return true
	}
	return false
}

// SweepReleaseReason is recorded when the expiry sweep transitions a pending reservation.
const SweepReleaseReason = "expired by sweep"
