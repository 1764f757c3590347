package events

import "time"

const (
	SalaryPaidTopic = "payroll.salary.paid.v1"
	SalaryPaidType  = "salary.paid"
)

// SalaryPaidEvent is emitted once per settled employee. Amount is a
// decimal string so consumers never round through float64.
type SalaryPaidEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	PaymentID     string    `json:"payment_id"`
	EmployeeID    string    `json:"employee_id"`
	ReceiptNumber string    `json:"receipt_number"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Amount        string    `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
