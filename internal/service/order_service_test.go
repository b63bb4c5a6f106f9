package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/repository"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceSuite struct {
	suite.Suite
	orderRepo  *mockOrderRepository
	sellerRepo *mockSellerRepository
	userRepo   *mockUserRepository
	publisher  *mockPublisher
	mailer     *mockMailer
	service    OrderService
	user       domain.User
	chair      domain.Seller
	table      domain.Seller
}

func (s *OrderServiceSuite) SetupTest() {
	s.orderRepo = new(mockOrderRepository)
	s.sellerRepo = new(mockSellerRepository)
	s.userRepo = new(mockUserRepository)
	s.publisher = new(mockPublisher)
	s.mailer = new(mockMailer)
	s.service = CreateOrderService(s.orderRepo, s.sellerRepo, s.userRepo, s.publisher, s.mailer)

	s.user = domain.User{ID: primitive.NewObjectID(), Name: "Rahim", Email: "rahim@example.com"}
	s.chair = domain.Seller{ID: primitive.NewObjectID(), Name: "Chair", Price: 10}
	s.table = domain.Seller{ID: primitive.NewObjectID(), Name: "Table", Price: 25.5}
}

func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) orderRequest() dto.OrderRequest {
	return dto.OrderRequest{
		OrderItems: []dto.OrderItemRequest{
			{Quantity: 2, Product: s.chair.ID.Hex()},
			{Quantity: 1, Product: s.table.ID.Hex()},
		},
		ShippingAddress1: "House 1",
		City:             "Dhaka",
		Zip:              "1207",
		Country:          "Bangladesh",
		Phone:            "017",
		User:             s.user.ID.Hex(),
	}
}

func (s *OrderServiceSuite) expectReferences() {
	s.userRepo.On("GetUserByID", mock.Anything, s.user.ID).Return(s.user, nil)
	s.sellerRepo.On("GetSellerByID", mock.Anything, s.chair.ID).Return(s.chair, nil)
	s.sellerRepo.On("GetSellerByID", mock.Anything, s.table.ID).Return(s.table, nil)
}

func (s *OrderServiceSuite) TestAddOrder() {
	s.expectReferences()
	itemIDs := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	orderID := primitive.NewObjectID()
	s.orderRepo.On("AddOrderItems", mock.Anything, []domain.OrderItem{
		{Quantity: 2, Product: s.chair.ID},
		{Quantity: 1, Product: s.table.ID},
	}).Return(itemIDs, nil)
	s.orderRepo.On("AddOrder", mock.Anything, mock.MatchedBy(func(order domain.Order) bool {
		return order.TotalPrice == 45.5 &&
			order.Status == domain.DefaultOrderStatus &&
			order.User == s.user.ID &&
			len(order.OrderItems) == 2
	})).Return(orderID, nil)
	s.publisher.On("Publish", mock.Anything, orderID.Hex(), mock.MatchedBy(func(msg dto.KafkaMessage) bool {
		return msg.EventType == dto.EventOrderCreated
	})).Return(nil)
	s.mailer.On("SendOrderConfirmation", mock.Anything, s.user, mock.Anything).Return(errors.New("smtp down"))

	res, err := s.service.AddOrder(context.Background(), s.orderRequest())

	s.Require().NoError(err)
	s.Equal(orderID.Hex(), res.ID)
	s.Equal(45.5, res.TotalPrice)
	s.Equal("Rahim", res.User.Name)
	s.Require().Len(res.OrderItems, 2)
	s.Equal(s.chair.ID.Hex(), res.OrderItems[0].Product)
	s.mailer.AssertExpectations(s.T())
}

func (s *OrderServiceSuite) TestAddOrderUnknownProduct() {
	s.userRepo.On("GetUserByID", mock.Anything, s.user.ID).Return(s.user, nil)
	s.sellerRepo.On("GetSellerByID", mock.Anything, s.chair.ID).Return(domain.Seller{}, errs.ErrNotFound)

	_, err := s.service.AddOrder(context.Background(), s.orderRequest())

	s.ErrorIs(err, errs.ErrInvalidProduct)
	s.orderRepo.AssertNotCalled(s.T(), "AddOrderItems", mock.Anything, mock.Anything)
}

func (s *OrderServiceSuite) TestAddOrderUnknownUser() {
	s.userRepo.On("GetUserByID", mock.Anything, s.user.ID).Return(domain.User{}, errs.ErrNotFound)

	_, err := s.service.AddOrder(context.Background(), s.orderRequest())

	s.ErrorIs(err, errs.ErrInvalidUser)
}

func (s *OrderServiceSuite) TestAddOrderWithoutItems() {
	req := s.orderRequest()
	req.OrderItems = nil

	_, err := s.service.AddOrder(context.Background(), req)

	s.ErrorIs(err, errs.ErrValidation)
}

func (s *OrderServiceSuite) TestAddOrderDiscardsItemsWhenOrderFails() {
	s.expectReferences()
	itemIDs := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	storeErr := errors.New("write conflict")
	s.orderRepo.On("AddOrderItems", mock.Anything, mock.Anything).Return(itemIDs, nil)
	s.orderRepo.On("AddOrder", mock.Anything, mock.Anything).Return(primitive.NilObjectID, storeErr)
	s.orderRepo.On("DeleteOrderItems", mock.Anything, itemIDs).Return(nil)

	_, err := s.service.AddOrder(context.Background(), s.orderRequest())

	s.ErrorIs(err, storeErr)
	s.orderRepo.AssertCalled(s.T(), "DeleteOrderItems", mock.Anything, itemIDs)
	s.publisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (s *OrderServiceSuite) TestGetUserOrders() {
	s.orderRepo.On("GetOrders", mock.Anything, repository.OrderFilter{User: &s.user.ID}).Return([]domain.Order{{ID: primitive.NewObjectID(), User: s.user.ID}}, nil)

	res, err := s.service.GetUserOrders(context.Background(), s.user.ID.Hex())

	s.Require().NoError(err)
	s.Len(res, 1)

	_, err = s.service.GetUserOrders(context.Background(), "nope")
	s.ErrorIs(err, errs.ErrInvalidUser)
}

func (s *OrderServiceSuite) TestGetTotalSalesAndCount() {
	s.orderRepo.On("GetTotalSales", mock.Anything).Return(120.0, nil)
	s.orderRepo.On("CountOrders", mock.Anything).Return(int64(3), nil)

	sales, err := s.service.GetTotalSales(context.Background())
	s.Require().NoError(err)
	s.Equal(120.0, sales.TotalSales)

	count, err := s.service.CountOrders(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(3), count.OrderCount)
}

func (s *OrderServiceSuite) TestUpdateAndDeleteOrder() {
	orderID := primitive.NewObjectID()
	s.orderRepo.On("UpdateOrderStatus", mock.Anything, orderID, "Shipped").Return(domain.Order{ID: orderID, Status: "Shipped"}, nil)
	s.orderRepo.On("DeleteOrder", mock.Anything, orderID).Return(errs.ErrNotFound)

	res, err := s.service.UpdateOrderStatus(context.Background(), orderID.Hex(), dto.OrderStatusRequest{Status: "Shipped"})
	s.Require().NoError(err)
	s.Equal("Shipped", res.Status)

	s.ErrorIs(s.service.DeleteOrder(context.Background(), orderID.Hex()), errs.ErrNotFound)
	s.ErrorIs(s.service.DeleteOrder(context.Background(), "nope"), errs.ErrInvalidID)
}
