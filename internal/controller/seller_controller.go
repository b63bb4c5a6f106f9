package controller

import (
	"strconv"

	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/service"
	pkgdto "github.com/alimikegami/e-bazaar/pkg/dto"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type SellerController struct {
	service service.SellerService
}

func CreateSellerController(g *echo.Group, service service.SellerService) {
	c := SellerController{
		service: service,
	}

	g.GET("", c.GetSellers)
	g.POST("", c.AddSeller)
	g.GET("/:id", c.GetSellerByID)
	g.PUT("/:id", c.UpdateSellerStatus)
	g.DELETE("/:id", c.DeleteSeller)
	g.GET("/get/count", c.CountSellers)
	g.GET("/get/featured/:count", c.GetFeaturedSellers)
	g.PUT("/gallery-images/:id", c.UpdateGalleryImages)
	g.GET("/get/sellerorders/:userid", c.GetSellersByUser)
}

func (c *SellerController) GetSellers(e echo.Context) error {
	filter := pkgdto.Filter{
		Categories: pkgdto.SplitIDs(e.QueryParam("categories")),
	}

	res, err := c.service.GetSellers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved sellers", res)
}

func (c *SellerController) GetSellerByID(e echo.Context) error {
	res, err := c.service.GetSellerByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved seller", res)
}

func (c *SellerController) AddSeller(e echo.Context) error {
	req, err := parseSellerForm(e)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddSeller").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	image, err := e.FormFile("image")
	if err != nil {
		log.Ctx(e.Request().Context()).Debug().Err(err).Str("component", "AddSeller").Msg("no image")
		image = nil
	}

	res, err := c.service.AddSeller(e.Request().Context(), req, image, baseURL(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "successfully created seller", res)
}

// parseSellerForm reads the multipart fields of a listing. Numeric fields
// that are present but unparsable are reported as validation failures.
func parseSellerForm(e echo.Context) (req dto.SellerRequest, err error) {
	req = dto.SellerRequest{
		Name:             e.FormValue("name"),
		Description:      e.FormValue("description"),
		RichDescription:  e.FormValue("richDescription"),
		Brand:            e.FormValue("brand"),
		Category:         e.FormValue("category"),
		User:             e.FormValue("user"),
		Status:           e.FormValue("status"),
		PaymentAccountID: e.FormValue("bKash"),
		VoterID:          e.FormValue("VoterId"),
	}

	var invalid []errs.FieldError

	if v := e.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			invalid = append(invalid, errs.FieldError{Field: "price", Tag: "number"})
		}
		req.Price = &price
	}
	if v := e.FormValue("countInStock"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			invalid = append(invalid, errs.FieldError{Field: "countInStock", Tag: "number"})
		}
		req.CountInStock = &count
	}
	if v := e.FormValue("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			invalid = append(invalid, errs.FieldError{Field: "rating", Tag: "number"})
		}
		req.Rating = &rating
	}
	if v := e.FormValue("numReviews"); v != "" {
		numReviews, err := strconv.Atoi(v)
		if err != nil {
			invalid = append(invalid, errs.FieldError{Field: "numReviews", Tag: "number"})
		}
		req.NumReviews = &numReviews
	}
	if v := e.FormValue("isFeatured"); v != "" {
		isFeatured, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, errs.FieldError{Field: "isFeatured", Tag: "boolean"})
		}
		req.IsFeatured = isFeatured
	}

	if len(invalid) > 0 {
		return req, &errs.ValidationError{Fields: invalid}
	}

	return req, nil
}

func (c *SellerController) UpdateSellerStatus(e echo.Context) error {
	req := dto.SellerStatusRequest{}
	if err := e.Bind(&req); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateSellerStatus").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.UpdateSellerStatus(e.Request().Context(), e.Param("id"), req)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated seller", res)
}

func (c *SellerController) UpdateGalleryImages(e echo.Context) error {
	form, err := e.MultipartForm()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateGalleryImages").Msg("")
		return response.WriteErrorResponse(e, errs.ErrMissingFile, nil)
	}

	res, err := c.service.UpdateGalleryImages(e.Request().Context(), e.Param("id"), form.File["images"], baseURL(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated gallery images", res)
}

func (c *SellerController) DeleteSeller(e echo.Context) error {
	err := c.service.DeleteSeller(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "the seller is deleted!", nil)
}

func (c *SellerController) CountSellers(e echo.Context) error {
	res, err := c.service.CountSellers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully counted sellers", res)
}

func (c *SellerController) GetFeaturedSellers(e echo.Context) error {
	limit, err := strconv.ParseInt(e.Param("count"), 10, 64)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetFeaturedSellers").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.GetFeaturedSellers(e.Request().Context(), limit)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved featured sellers", res)
}

func (c *SellerController) GetSellersByUser(e echo.Context) error {
	res, err := c.service.GetSellersByUser(e.Request().Context(), e.Param("userid"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved user sellers", res)
}
