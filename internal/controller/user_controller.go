package controller

import (
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/service"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(g *echo.Group, service service.UserService) {
	c := UserController{
		service: service,
	}

	g.POST("/register", c.Register)
	g.POST("/login", c.Login)
	g.GET("", c.GetUsers)
	g.POST("", c.Register)
	g.GET("/:id", c.GetUserByID)
	g.PUT("/:id", c.UpdateUser)
	g.DELETE("/:id", c.DeleteUser)
	g.GET("/get/count", c.CountUsers)
}

func (c *UserController) Register(e echo.Context) error {
	req := dto.UserRequest{}
	if err := e.Bind(&req); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Register").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.Register(e.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "successfully registered user", res)
}

func (c *UserController) Login(e echo.Context) error {
	req := dto.LoginRequest{}
	if err := e.Bind(&req); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.Login(e.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully logged in", res)
}

func (c *UserController) GetUsers(e echo.Context) error {
	res, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved users", res)
}

func (c *UserController) GetUserByID(e echo.Context) error {
	res, err := c.service.GetUserByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved user", res)
}

func (c *UserController) UpdateUser(e echo.Context) error {
	req := dto.UserUpdateRequest{}
	if err := e.Bind(&req); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateUser").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.UpdateUser(e.Request().Context(), e.Param("id"), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated user", res)
}

func (c *UserController) DeleteUser(e echo.Context) error {
	err := c.service.DeleteUser(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "the user is deleted!", nil)
}

func (c *UserController) CountUsers(e echo.Context) error {
	res, err := c.service.CountUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully counted users", res)
}
