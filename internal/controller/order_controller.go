package controller

import (
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/service"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(g *echo.Group, service service.OrderService) {
	c := OrderController{
		service: service,
	}

	g.GET("", c.GetOrders)
	g.POST("", c.AddOrder)
	g.GET("/:id", c.GetOrderByID)
	g.PUT("/:id", c.UpdateOrderStatus)
	g.DELETE("/:id", c.DeleteOrder)
	g.GET("/get/totalsales", c.GetTotalSales)
	g.GET("/get/count", c.CountOrders)
	g.GET("/get/userorders/:userid", c.GetUserOrders)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	res, err := c.service.GetOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved orders", res)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	res, err := c.service.GetOrderByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved order", res)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	req := dto.OrderRequest{}
	if err := e.Bind(&req); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddOrder").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.AddOrder(e.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "successfully created order", res)
}

func (c *OrderController) UpdateOrderStatus(e echo.Context) error {
	req := dto.OrderStatusRequest{}
	if err := e.Bind(&req); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.UpdateOrderStatus(e.Request().Context(), e.Param("id"), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated order", res)
}

func (c *OrderController) DeleteOrder(e echo.Context) error {
	err := c.service.DeleteOrder(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "the order is deleted!", nil)
}

func (c *OrderController) GetTotalSales(e echo.Context) error {
	res, err := c.service.GetTotalSales(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved total sales", res)
}

func (c *OrderController) CountOrders(e echo.Context) error {
	res, err := c.service.CountOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully counted orders", res)
}

func (c *OrderController) GetUserOrders(e echo.Context) error {
	res, err := c.service.GetUserOrders(e.Request().Context(), e.Param("userid"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved user orders", res)
}
