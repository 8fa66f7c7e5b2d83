package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzhan/uniregistry/internal/app/models"
)

// PaymentRepository handles database operations for payments. The payment
// id is generated by the store, so it is excluded from inserts.
type PaymentRepository = CrudRepository[models.Payment]

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return NewCrudRepository(db, paymentDefinition())
}

func paymentDefinition() Definition[models.Payment] {
	return Definition[models.Payment]{
		Resource: "Payment",
		Table:    "payments",
		PKColumn: "payment_id",
		Columns: []string{
			"payment_id", "student_id", "payment_status", "payment_method", "payment_date", "payment_amount",
		},
		InsertColumns: []string{
			"student_id", "payment_status", "payment_method", "payment_date", "payment_amount",
		},
		UpdateColumns: []string{
			"student_id", "payment_status", "payment_method", "payment_date", "payment_amount",
		},
		InsertValues: func(p *models.Payment) []any {
			return []any{p.StudentID, p.PaymentStatus, p.PaymentMethod, p.PaymentDate, p.PaymentAmount}
		},
		UpdateValues: func(p *models.Payment) []any {
			return []any{p.StudentID, p.PaymentStatus, p.PaymentMethod, p.PaymentDate, p.PaymentAmount}
		},
	}
}
