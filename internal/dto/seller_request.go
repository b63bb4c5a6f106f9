package dto

type SellerRequest struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	RichDescription  string   `json:"richDescription"`
	Brand            string   `json:"brand"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0"`
	Category         string   `json:"category" validate:"required"`
	CountInStock     *int     `json:"countInStock" validate:"required,gte=0,lte=255"`
	User             string   `json:"user" validate:"required"`
	Rating           *float64 `json:"rating" validate:"omitempty,gte=0"`
	NumReviews       *int     `json:"numReviews" validate:"omitempty,gte=0"`
	Status           string   `json:"status"`
	IsFeatured       bool     `json:"isFeatured"`
	PaymentAccountID string   `json:"bKash" validate:"required"`
	VoterID          string   `json:"VoterId" validate:"required"`
}

type SellerStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
