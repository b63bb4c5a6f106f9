package controller

import (
	"context"
	"mime/multipart"

	"github.com/alimikegami/e-bazaar/internal/dto"
	pkgdto "github.com/alimikegami/e-bazaar/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type mockSellerService struct {
	mock.Mock
}

func (m *mockSellerService) GetSellers(ctx context.Context, filter pkgdto.Filter) ([]dto.SellerResponse, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]dto.SellerResponse)
	return res, args.Error(1)
}

func (m *mockSellerService) GetSellerByID(ctx context.Context, id string) (dto.SellerResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.SellerResponse), args.Error(1)
}

func (m *mockSellerService) AddSeller(ctx context.Context, req dto.SellerRequest, image *multipart.FileHeader, baseURL string) (dto.SellerResponse, error) {
	args := m.Called(ctx, req, image, baseURL)
	return args.Get(0).(dto.SellerResponse), args.Error(1)
}

func (m *mockSellerService) UpdateSellerStatus(ctx context.Context, id string, req dto.SellerStatusRequest) (dto.SellerResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(dto.SellerResponse), args.Error(1)
}

func (m *mockSellerService) UpdateGalleryImages(ctx context.Context, id string, images []*multipart.FileHeader, baseURL string) (dto.SellerResponse, error) {
	args := m.Called(ctx, id, images, baseURL)
	return args.Get(0).(dto.SellerResponse), args.Error(1)
}

func (m *mockSellerService) DeleteSeller(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSellerService) CountSellers(ctx context.Context) (dto.SellerCountResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.SellerCountResponse), args.Error(1)
}

func (m *mockSellerService) GetFeaturedSellers(ctx context.Context, limit int64) ([]dto.SellerResponse, error) {
	args := m.Called(ctx, limit)
	res, _ := args.Get(0).([]dto.SellerResponse)
	return res, args.Error(1)
}

func (m *mockSellerService) GetSellersByUser(ctx context.Context, userID string) ([]dto.SellerResponse, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).([]dto.SellerResponse)
	return res, args.Error(1)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]dto.CategoryResponse)
	return res, args.Error(1)
}

func (m *mockCategoryService) GetCategoryByID(ctx context.Context, id string) (dto.CategoryResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) AddCategory(ctx context.Context, req dto.CategoryRequest) (dto.CategoryResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id string, req dto.CategoryUpdateRequest) (dto.CategoryResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(dto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, req dto.UserRequest) (dto.UserResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.LoginResponse), args.Error(1)
}

func (m *mockUserService) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]dto.UserResponse)
	return res, args.Error(1)
}

func (m *mockUserService) GetUserByID(ctx context.Context, id string) (dto.UserResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id string, req dto.UserUpdateRequest) (dto.UserResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserService) CountUsers(ctx context.Context) (dto.UserCountResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.UserCountResponse), args.Error(1)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) GetOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]dto.OrderResponse)
	return res, args.Error(1)
}

func (m *mockOrderService) GetOrderByID(ctx context.Context, id string) (dto.OrderResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.OrderResponse), args.Error(1)
}

func (m *mockOrderService) AddOrder(ctx context.Context, req dto.OrderRequest) (dto.OrderResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.OrderResponse), args.Error(1)
}

func (m *mockOrderService) UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (dto.OrderResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(dto.OrderResponse), args.Error(1)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOrderService) GetTotalSales(ctx context.Context) (dto.TotalSalesResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.TotalSalesResponse), args.Error(1)
}

func (m *mockOrderService) CountOrders(ctx context.Context) (dto.OrderCountResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.OrderCountResponse), args.Error(1)
}

func (m *mockOrderService) GetUserOrders(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).([]dto.OrderResponse)
	return res, args.Error(1)
}
