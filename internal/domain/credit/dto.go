package credit

// CreateRequest is the payload for creating a credit request
type CreateRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}
