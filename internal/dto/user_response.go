package dto

import (
	"time"

	"github.com/alimikegami/e-bazaar/internal/domain"
)

type LoginResponse struct {
	User  string `json:"user"`
	Token string `json:"token"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	ExternalID  string    `json:"externalId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	IsAdmin     bool      `json:"isAdmin"`
	Street      string    `json:"street"`
	Apartment   string    `json:"apartment"`
	Zip         string    `json:"zip"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	DateCreated time.Time `json:"dateCreated"`
}

type UserCountResponse struct {
	UserCount int64 `json:"userCount"`
}

// NewUserResponse never carries the password hash.
func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID.Hex(),
		ExternalID:  user.ExternalID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		IsAdmin:     user.IsAdmin,
		Street:      user.Street,
		Apartment:   user.Apartment,
		Zip:         user.Zip,
		City:        user.City,
		Country:     user.Country,
		DateCreated: user.DateCreated,
	}
}

func NewUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, NewUserResponse(user))
	}

	return res
}
