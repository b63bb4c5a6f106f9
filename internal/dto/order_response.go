package dto

import (
	"time"

	"github.com/alimikegami/e-bazaar/internal/domain"
)

type OrderItemResponse struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Product  string `json:"product"`
}

type OrderUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type OrderResponse struct {
	ID               string              `json:"id"`
	OrderItems       []OrderItemResponse `json:"orderItems"`
	ShippingAddress1 string              `json:"shippingAddress1"`
	ShippingAddress2 string              `json:"shippingAddress2"`
	City             string              `json:"city"`
	Zip              string              `json:"zip"`
	Country          string              `json:"country"`
	Phone            string              `json:"phone"`
	Status           string              `json:"status"`
	TotalPrice       float64             `json:"totalPrice"`
	User             OrderUserResponse   `json:"user"`
	DateOrdered      time.Time           `json:"dateOrdered"`
}

type TotalSalesResponse struct {
	TotalSales float64 `json:"totalsales"`
}

type OrderCountResponse struct {
	OrderCount int64 `json:"orderCount"`
}

// NewOrderResponse maps an order onto its public shape. Items that were not
// populated are listed by id only.
func NewOrderResponse(order domain.Order) OrderResponse {
	user := OrderUserResponse{ID: order.User.Hex()}
	if order.UserDetail != nil {
		user.Name = order.UserDetail.Name
	}

	items := make([]OrderItemResponse, 0, len(order.OrderItems))
	if len(order.Items) > 0 {
		for _, item := range order.Items {
			items = append(items, OrderItemResponse{
				ID:       item.ID.Hex(),
				Quantity: item.Quantity,
				Product:  item.Product.Hex(),
			})
		}
	} else {
		for _, id := range order.OrderItems {
			items = append(items, OrderItemResponse{ID: id.Hex()})
		}
	}

	return OrderResponse{
		ID:               order.ID.Hex(),
		OrderItems:       items,
		ShippingAddress1: order.ShippingAddress1,
		ShippingAddress2: order.ShippingAddress2,
		City:             order.City,
		Zip:              order.Zip,
		Country:          order.Country,
		Phone:            order.Phone,
		Status:           order.Status,
		TotalPrice:       order.TotalPrice,
		User:             user,
		DateOrdered:      order.DateOrdered,
	}
}

func NewOrderResponses(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, NewOrderResponse(order))
	}

	return res
}
