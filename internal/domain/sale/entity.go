package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// Status mirrors the credit request state space. Sales are synchronous:
// a ChargeSale is created directly in APPROVED with processed=true and
// never observed PENDING.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ChargeSale records an atomic move of value from an account's credit
// to a phone number's accrued charge. Immutable after creation.
type ChargeSale struct {
	ID            int64              `db:"id" json:"id"`
	UserID        uuid.UUID          `db:"user_id" json:"user_id"`
	PhoneNumberID int64              `db:"phone_number_id" json:"phone_number_id"`
	Amount        int64              `db:"amount" json:"amount"`
	Status        Status             `db:"status" json:"status"`
	Processed     bool               `db:"processed" json:"processed"`
	APIResponse   types.NullJSONText `db:"api_response" json:"api_response,omitempty"`
	AdminNotes    string             `db:"admin_notes" json:"admin_notes"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at" json:"updated_at"`
}
