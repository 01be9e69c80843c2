package credit

import (
	"time"

	"github.com/google/uuid"
)

// Status of a credit request. A request is created PENDING and moves
// exactly once to APPROVED or REJECTED, terminal thereafter.
//
// REJECTED is a legal stored value but no operation currently produces
// it; the approval path is the only implemented transition.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// CreditRequest asks for the owning account to be credited. Once
// Processed is true the record is immutable.
type CreditRequest struct {
	ID         int64     `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Amount     int64     `db:"amount" json:"amount"`
	Status     Status    `db:"status" json:"status"`
	Processed  bool      `db:"processed" json:"processed"`
	AdminNotes string    `db:"admin_notes" json:"admin_notes"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
