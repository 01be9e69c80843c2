package sale

// CreateRequest is the payload for creating a charge sale
type CreateRequest struct {
	Amount        int64 `json:"amount" validate:"required,gt=0"`
	PhoneNumberID int64 `json:"phone_number_id" validate:"required,gt=0"`
}
