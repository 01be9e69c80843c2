package phone

import "time"

// PhoneNumber accrues value from charge sales. CurrentCharge never
// decreases under normal operation and never goes negative.
type PhoneNumber struct {
	ID            int64     `db:"id" json:"id"`
	Number        string    `db:"number" json:"number"`
	Title         string    `db:"title" json:"title"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CurrentCharge int64     `db:"current_charge" json:"current_charge"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
