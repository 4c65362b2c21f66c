package commands

import "time"

// Notification payloads. Serialized as JSON by the publisher; consumers
// outside this process read them, so field names are part of the contract.

type orderEvent struct {
	OrderID   string  `json:"orderId"`
	StudentID string  `json:"studentId"`
	Status    string  `json:"status"`
	Refund    float64 `json:"refund,omitempty"`
}

type jobEvent struct {
	JobID         string    `json:"jobId"`
	OrderID       string    `json:"orderId"`
	JobType       string    `json:"jobType"`
	Price         float64   `json:"price"`
	ScheduledTime time.Time `json:"scheduledTime"`
}

type arrivalEvent struct {
	JobID     string `json:"jobId"`
	StudentID string `json:"studentId"`
	MoverID   string `json:"moverId"`
}
