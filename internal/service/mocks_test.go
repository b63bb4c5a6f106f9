package service

import (
	"context"
	"mime/multipart"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockSellerRepository struct {
	mock.Mock
}

func (m *mockSellerRepository) GetSellers(ctx context.Context, filter repository.SellerFilter) ([]domain.Seller, error) {
	args := m.Called(ctx, filter)
	data, _ := args.Get(0).([]domain.Seller)
	return data, args.Error(1)
}

func (m *mockSellerRepository) GetSellerByID(ctx context.Context, id primitive.ObjectID) (domain.Seller, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Seller), args.Error(1)
}

func (m *mockSellerRepository) AddSeller(ctx context.Context, data domain.Seller) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockSellerRepository) UpdateSellerStatus(ctx context.Context, id primitive.ObjectID, status string) (domain.Seller, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Seller), args.Error(1)
}

func (m *mockSellerRepository) UpdateSellerImages(ctx context.Context, id primitive.ObjectID, images []string) (domain.Seller, error) {
	args := m.Called(ctx, id, images)
	return args.Get(0).(domain.Seller), args.Error(1)
}

func (m *mockSellerRepository) DeleteSeller(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSellerRepository) CountSellers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]domain.Category)
	return data, args.Error(1)
}

func (m *mockCategoryRepository) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockCategoryRepository) UpdateCategory(ctx context.Context, id primitive.ObjectID, update domain.CategoryUpdate) (domain.Category, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]domain.User)
	return data, args.Error(1)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, update domain.UserUpdate) (domain.User, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) GetOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	data, _ := args.Get(0).([]domain.Order)
	return data, args.Error(1)
}

func (m *mockOrderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderRepository) AddOrderItems(ctx context.Context, items []domain.OrderItem) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, items)
	ids, _ := args.Get(0).([]primitive.ObjectID)
	return ids, args.Error(1)
}

func (m *mockOrderRepository) DeleteOrderItems(ctx context.Context, ids []primitive.ObjectID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *mockOrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockOrderRepository) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (domain.Order, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderRepository) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOrderRepository) GetTotalSales(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockOrderRepository) CountOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(ctx context.Context, baseURL string, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, baseURL, file)
	return args.String(0), args.Error(1)
}

func (m *mockStore) SaveAll(ctx context.Context, baseURL string, files []*multipart.FileHeader) ([]string, error) {
	args := m.Called(ctx, baseURL, files)
	urls, _ := args.Get(0).([]string)
	return urls, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	return m.Called(ctx, key, msg).Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendOrderConfirmation(ctx context.Context, user domain.User, order dto.OrderResponse) error {
	return m.Called(ctx, user, order).Error(0)
}
