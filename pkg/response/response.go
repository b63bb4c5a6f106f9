package response

import (
	"errors"
	"net/http"

	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return writeSuccess(c, http.StatusOK, message, data)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	return writeSuccess(c, http.StatusCreated, message, data)
}

func writeSuccess(c echo.Context, statusCode int, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Status = "success"
	resp.Data = data
	resp.Message = message

	return c.JSON(statusCode, resp)
}

// WriteErrorResponse renders err with the status registered in errs. Server
// faults are reported with a generic message so store details do not leak.
func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = errors

	if statusCode == http.StatusInternalServerError {
		resp.Message = errs.ErrInternalServer.Error()
	}

	if resp.Errors == nil {
		resp.Errors = validationDetails(err)
	}

	return c.JSON(statusCode, resp)
}

func validationDetails(err error) interface{} {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}

	return nil
}
