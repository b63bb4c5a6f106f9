package dto

type OrderItemRequest struct {
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Product  string `json:"product" validate:"required"`
}

type OrderRequest struct {
	OrderItems       []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress1 string             `json:"shippingAddress1" validate:"required"`
	ShippingAddress2 string             `json:"shippingAddress2"`
	City             string             `json:"city" validate:"required"`
	Zip              string             `json:"zip" validate:"required"`
	Country          string             `json:"country" validate:"required"`
	Phone            string             `json:"phone" validate:"required"`
	User             string             `json:"user" validate:"required"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
