package response

import (
	"net/http"

	apperrors "hms/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody là shape lỗi duy nhất client nhìn thấy
type ErrorBody struct {
	Error string `json:"error"`
}

// Success trả về response 200 với payload thô
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created trả về response 201 với payload thô
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest trả về lỗi 400 với message cho trước
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Error map error về HTTP status theo Kind, lỗi lạ thành 500. Client
// không bao giờ thấy chi tiết lỗi hạ tầng.
func Error(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.Kind.HTTPStatus(), ErrorBody{Error: appErr.Message})
}
