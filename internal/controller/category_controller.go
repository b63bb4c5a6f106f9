package controller

import (
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/service"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(g *echo.Group, service service.CategoryService) {
	c := CategoryController{
		service: service,
	}

	g.GET("", c.GetCategories)
	g.POST("", c.AddCategory)
	g.GET("/:id", c.GetCategoryByID)
	g.PUT("/:id", c.UpdateCategory)
	g.DELETE("/:id", c.DeleteCategory)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	res, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved categories", res)
}

func (c *CategoryController) GetCategoryByID(e echo.Context) error {
	res, err := c.service.GetCategoryByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved category", res)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	req := dto.CategoryRequest{}
	if err := e.Bind(&req); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.AddCategory(e.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "successfully created category", res)
}

func (c *CategoryController) UpdateCategory(e echo.Context) error {
	req := dto.CategoryUpdateRequest{}
	if err := e.Bind(&req); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.UpdateCategory(e.Request().Context(), e.Param("id"), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated category", res)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	err := c.service.DeleteCategory(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "the category is deleted!", nil)
}
