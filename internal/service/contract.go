package service

import (
	"context"
	"mime/multipart"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/internal/dto"
	pkgdto "github.com/alimikegami/e-bazaar/pkg/dto"
)

type SellerService interface {
	GetSellers(ctx context.Context, filter pkgdto.Filter) (res []dto.SellerResponse, err error)
	GetSellerByID(ctx context.Context, id string) (res dto.SellerResponse, err error)
	AddSeller(ctx context.Context, req dto.SellerRequest, image *multipart.FileHeader, baseURL string) (res dto.SellerResponse, err error)
	UpdateSellerStatus(ctx context.Context, id string, req dto.SellerStatusRequest) (res dto.SellerResponse, err error)
	UpdateGalleryImages(ctx context.Context, id string, images []*multipart.FileHeader, baseURL string) (res dto.SellerResponse, err error)
	DeleteSeller(ctx context.Context, id string) (err error)
	CountSellers(ctx context.Context) (res dto.SellerCountResponse, err error)
	GetFeaturedSellers(ctx context.Context, limit int64) (res []dto.SellerResponse, err error)
	GetSellersByUser(ctx context.Context, userID string) (res []dto.SellerResponse, err error)
}

type CategoryService interface {
	GetCategories(ctx context.Context) (res []dto.CategoryResponse, err error)
	GetCategoryByID(ctx context.Context, id string) (res dto.CategoryResponse, err error)
	AddCategory(ctx context.Context, req dto.CategoryRequest) (res dto.CategoryResponse, err error)
	UpdateCategory(ctx context.Context, id string, req dto.CategoryUpdateRequest) (res dto.CategoryResponse, err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type UserService interface {
	Register(ctx context.Context, req dto.UserRequest) (res dto.UserResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error)
	GetUsers(ctx context.Context) (res []dto.UserResponse, err error)
	GetUserByID(ctx context.Context, id string) (res dto.UserResponse, err error)
	UpdateUser(ctx context.Context, id string, req dto.UserUpdateRequest) (res dto.UserResponse, err error)
	DeleteUser(ctx context.Context, id string) (err error)
	CountUsers(ctx context.Context) (res dto.UserCountResponse, err error)
}

type OrderService interface {
	GetOrders(ctx context.Context) (res []dto.OrderResponse, err error)
	GetOrderByID(ctx context.Context, id string) (res dto.OrderResponse, err error)
	AddOrder(ctx context.Context, req dto.OrderRequest) (res dto.OrderResponse, err error)
	UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (res dto.OrderResponse, err error)
	DeleteOrder(ctx context.Context, id string) (err error)
	GetTotalSales(ctx context.Context) (res dto.TotalSalesResponse, err error)
	CountOrders(ctx context.Context) (res dto.OrderCountResponse, err error)
	GetUserOrders(ctx context.Context, userID string) (res []dto.OrderResponse, err error)
}

// EventPublisher emits domain events. Publishing is best effort: callers log
// a failure and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}

type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, user domain.User, order dto.OrderResponse) error
}
