package models

import "time"

// Payment records a tuition payment made by a student. PaymentID is
// generated by the database, so it is never part of an insert.
type Payment struct {
	PaymentID     int64     `json:"payment_id" db:"payment_id"`
	StudentID     int64     `json:"student_id" db:"student_id" binding:"required"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	PaymentDate   time.Time `json:"payment_date" db:"payment_date"`
	PaymentAmount float64   `json:"payment_amount" db:"payment_amount"`
}
