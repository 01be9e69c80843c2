package phone

// CreateRequest is the payload for registering a phone number
type CreateRequest struct {
	Number   string `json:"number" validate:"required,phone"`
	Title    string `json:"title" validate:"max=255"`
	IsActive bool   `json:"is_active"`
}
