package constants

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Application payment methods.
const (
	PaymentMethodCash    = "cash"
	PaymentMethodNonCash = "non_cash"
	PaymentMethodOnline  = "online"
)

// Application statuses.
const (
	ApplicationStatusPending    = "pending"
	ApplicationStatusDelivering = "delivering"
	ApplicationStatusCompleted  = "completed"
)

// Delivery statuses.
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusInTransit = "in_transit"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusCancelled = "cancelled"
)

// Queue names and task types.
const (
	QueueDefault            = "default"
	TaskSupplierStatsRecalc = "supplier:stats_recalc"
)

// PaymentMethodValid reports whether the value is a known payment method.
func PaymentMethodValid(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodNonCash, PaymentMethodOnline:
		return true
	}
	return false
}
