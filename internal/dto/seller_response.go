package dto

import (
	"time"

	"github.com/alimikegami/e-bazaar/internal/domain"
)

type SellerResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	RichDescription  string           `json:"richDescription"`
	Image            string           `json:"image"`
	Images           []string         `json:"images"`
	Brand            string           `json:"brand"`
	Price            float64          `json:"price"`
	Category         CategoryResponse `json:"category"`
	CountInStock     int              `json:"countInStock"`
	User             string           `json:"user"`
	Rating           float64          `json:"rating"`
	NumReviews       int              `json:"numReviews"`
	Status           string           `json:"status"`
	IsFeatured       bool             `json:"isFeatured"`
	DateCreated      time.Time        `json:"dateCreated"`
	PaymentAccountID string           `json:"bKash"`
	VoterID          string           `json:"VoterId"`
}

type SellerCountResponse struct {
	SellerCount int64 `json:"sellerCount"`
}

// NewSellerResponse maps a stored listing onto its public shape. The
// category is always an object; only its id is set when it was not populated.
func NewSellerResponse(seller domain.Seller) SellerResponse {
	category := CategoryResponse{ID: seller.Category.Hex()}
	if seller.CategoryDetail != nil {
		category = NewCategoryResponse(*seller.CategoryDetail)
	}

	images := seller.Images
	if images == nil {
		images = []string{}
	}

	return SellerResponse{
		ID:               seller.ID.Hex(),
		Name:             seller.Name,
		Description:      seller.Description,
		RichDescription:  seller.RichDescription,
		Image:            seller.Image,
		Images:           images,
		Brand:            seller.Brand,
		Price:            seller.Price,
		Category:         category,
		CountInStock:     seller.CountInStock,
		User:             seller.User.Hex(),
		Rating:           seller.Rating,
		NumReviews:       seller.NumReviews,
		Status:           seller.Status,
		IsFeatured:       seller.IsFeatured,
		DateCreated:      seller.DateCreated,
		PaymentAccountID: seller.PaymentAccountID,
		VoterID:          seller.VoterID,
	}
}

func NewSellerResponses(sellers []domain.Seller) []SellerResponse {
	res := make([]SellerResponse, 0, len(sellers))
	for _, seller := range sellers {
		res = append(res, NewSellerResponse(seller))
	}

	return res
}
