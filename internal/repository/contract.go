package repository

import (
	"context"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SellerFilter narrows a listing query. Zero values disable a constraint and
// a zero Limit returns every match.
type SellerFilter struct {
	Categories []primitive.ObjectID
	User       *primitive.ObjectID
	Featured   bool
	Limit      int64
}

type OrderFilter struct {
	User *primitive.ObjectID
}

type SellerRepository interface {
	GetSellers(ctx context.Context, filter SellerFilter) (data []domain.Seller, err error)
	GetSellerByID(ctx context.Context, id primitive.ObjectID) (data domain.Seller, err error)
	AddSeller(ctx context.Context, data domain.Seller) (id primitive.ObjectID, err error)
	UpdateSellerStatus(ctx context.Context, id primitive.ObjectID, status string) (data domain.Seller, err error)
	UpdateSellerImages(ctx context.Context, id primitive.ObjectID, images []string) (data domain.Seller, err error)
	DeleteSeller(ctx context.Context, id primitive.ObjectID) (err error)
	CountSellers(ctx context.Context) (count int64, err error)
}

type CategoryRepository interface {
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id primitive.ObjectID) (data domain.Category, err error)
	AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, update domain.CategoryUpdate) (data domain.Category, err error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) (err error)
}

type UserRepository interface {
	GetUsers(ctx context.Context) (data []domain.User, err error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (data domain.User, err error)
	GetUserByEmail(ctx context.Context, email string) (data domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update domain.UserUpdate) (data domain.User, err error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (err error)
	CountUsers(ctx context.Context) (count int64, err error)
}

type OrderRepository interface {
	GetOrders(ctx context.Context, filter OrderFilter) (data []domain.Order, err error)
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (data domain.Order, err error)
	AddOrderItems(ctx context.Context, items []domain.OrderItem) (ids []primitive.ObjectID, err error)
	DeleteOrderItems(ctx context.Context, ids []primitive.ObjectID) (err error)
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (data domain.Order, err error)
	DeleteOrder(ctx context.Context, id primitive.ObjectID) (err error)
	GetTotalSales(ctx context.Context) (total float64, err error)
	CountOrders(ctx context.Context) (count int64, err error)
}
