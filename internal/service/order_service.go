package service

import (
	"context"
	"time"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/repository"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceImpl struct {
	orderRepo  repository.OrderRepository
	sellerRepo repository.SellerRepository
	userRepo   repository.UserRepository
	publisher  EventPublisher
	mailer     OrderMailer
	now        func() time.Time
}

func CreateOrderService(orderRepo repository.OrderRepository, sellerRepo repository.SellerRepository, userRepo repository.UserRepository, publisher EventPublisher, mailer OrderMailer) OrderService {
	return &OrderServiceImpl{
		orderRepo:  orderRepo,
		sellerRepo: sellerRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		mailer:     mailer,
		now:        time.Now,
	}
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context) (res []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrders(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, err
	}

	return dto.NewOrderResponses(orders), nil
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	orderID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	return dto.NewOrderResponse(order), nil
}

// AddOrder resolves the ordering user and every listed product, prices the
// order from the stored listing prices and persists its items before the
// order itself.
func (s *OrderServiceImpl) AddOrder(ctx context.Context, req dto.OrderRequest) (res dto.OrderResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		return
	}

	userID, err := parseID(req.User, errs.ErrInvalidUser)
	if err != nil {
		return
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return res, resolveReference(err, errs.ErrInvalidUser)
	}

	items := make([]domain.OrderItem, 0, len(req.OrderItems))
	var totalPrice float64
	for _, itemReq := range req.OrderItems {
		productID, err := parseID(itemReq.Product, errs.ErrInvalidProduct)
		if err != nil {
			return res, err
		}

		product, err := s.sellerRepo.GetSellerByID(ctx, productID)
		if err != nil {
			return res, resolveReference(err, errs.ErrInvalidProduct)
		}

		totalPrice += product.Price * float64(itemReq.Quantity)
		items = append(items, domain.OrderItem{Quantity: itemReq.Quantity, Product: productID})
	}

	itemIDs, err := s.orderRepo.AddOrderItems(ctx, items)
	if err != nil {
		return
	}
	for i := range items {
		items[i].ID = itemIDs[i]
	}

	order := domain.Order{
		OrderItems:       itemIDs,
		ShippingAddress1: req.ShippingAddress1,
		ShippingAddress2: req.ShippingAddress2,
		City:             req.City,
		Zip:              req.Zip,
		Country:          req.Country,
		Phone:            req.Phone,
		Status:           domain.DefaultOrderStatus,
		TotalPrice:       totalPrice,
		User:             userID,
		DateOrdered:      s.now(),
	}

	order.ID, err = s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		s.discardItems(ctx, itemIDs)
		return
	}

	order.Items = items
	order.UserDetail = &user
	res = dto.NewOrderResponse(order)

	publish(ctx, s.publisher, res.ID, dto.EventOrderCreated, res)
	if err := s.mailer.SendOrderConfirmation(ctx, user, res); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "AddOrder").Msg("failed to send order confirmation")
	}

	return res, nil
}

func (s *OrderServiceImpl) discardItems(ctx context.Context, ids []primitive.ObjectID) {
	if err := s.orderRepo.DeleteOrderItems(ctx, ids); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("failed to discard order items")
	}
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (res dto.OrderResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		return
	}

	orderID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	order, err := s.orderRepo.UpdateOrderStatus(ctx, orderID, req.Status)
	if err != nil {
		return
	}

	return dto.NewOrderResponse(order), nil
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id string) (err error) {
	orderID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	return s.orderRepo.DeleteOrder(ctx, orderID)
}

func (s *OrderServiceImpl) GetTotalSales(ctx context.Context) (res dto.TotalSalesResponse, err error) {
	total, err := s.orderRepo.GetTotalSales(ctx)
	if err != nil {
		return
	}

	return dto.TotalSalesResponse{TotalSales: total}, nil
}

func (s *OrderServiceImpl) CountOrders(ctx context.Context) (res dto.OrderCountResponse, err error) {
	count, err := s.orderRepo.CountOrders(ctx)
	if err != nil {
		return
	}

	return dto.OrderCountResponse{OrderCount: count}, nil
}

func (s *OrderServiceImpl) GetUserOrders(ctx context.Context, userID string) (res []dto.OrderResponse, err error) {
	id, err := parseID(userID, errs.ErrInvalidUser)
	if err != nil {
		return
	}

	orders, err := s.orderRepo.GetOrders(ctx, repository.OrderFilter{User: &id})
	if err != nil {
		return nil, err
	}

	return dto.NewOrderResponses(orders), nil
}
