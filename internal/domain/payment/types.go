package payment

type Status string

// Transitions past "pending" are driven by provider settlement webhooks and
// are outside this service; the full enum is kept for downstream readers.
const (
	StatusCreated   Status = "created"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}
