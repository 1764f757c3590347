package events

import "time"

const (
	EmployeeCreatedTopic = "payroll.employee.lifecycle.v1"
	EmployeeCreatedType  = "employee.created"
)

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	EmployeeType string    `json:"employee_type"`
	DepartmentID string    `json:"department_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
