package reservation

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusForDelivery Status = "for_delivery"
	StatusForPickup   Status = "for_pickup"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusApproved,
		StatusForDelivery,
		StatusForPickup,
		StatusCompleted,
		StatusCancelled,
	}
}

// ActiveStatuses hold equipment units. Completed and cancelled
// reservations release their hold.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusForDelivery, StatusForPickup}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusForDelivery, StatusForPickup, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Label is the user-facing wording used in notifications.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusForDelivery:
		return "For Delivery"
	case StatusForPickup:
		return "For Pickup"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "not_required"
	PaymentPending     PaymentStatus = "pending"
	PaymentPaid        PaymentStatus = "paid"
	PaymentRejected    PaymentStatus = "reject"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentNotRequired, PaymentPending, PaymentPaid, PaymentRejected:
		return true
	default:
		return false
	}
}

type PaymentDecision string

const (
	DecisionPaid   PaymentDecision = "paid"
	DecisionReject PaymentDecision = "reject"
)

func (d PaymentDecision) String() string {
	return string(d)
}

func NewPaymentDecision(s string) (PaymentDecision, error) {
	switch d := PaymentDecision(s); d {
	case DecisionPaid, DecisionReject:
		return d, nil
	default:
		return "", ErrInvalidPaymentDecision
	}
}

// PaymentStatus maps the decision onto the payment_status it produces.
func (d PaymentDecision) PaymentStatus() PaymentStatus {
	if d == DecisionPaid {
		return PaymentPaid
	}
	return PaymentRejected
}
