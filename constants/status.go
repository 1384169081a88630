package constants

// Room status
const (
	RoomStatusAvailable = "AVAILABLE"
	RoomStatusOccupied  = "OCCUPIED"
)

// Room stay status
const (
	StayStatusCheckedIn  = "CHECKED_IN"
	StayStatusCheckedOut = "CHECKED_OUT"
)

// Audit type
const (
	AuditTypeCheckIn  = "CHECK_IN"
	AuditTypeCheckOut = "CHECK_OUT"
)

// Audit comparison status
const (
	ComparisonPendingCheckout = "PENDING_CHECKOUT"
)
