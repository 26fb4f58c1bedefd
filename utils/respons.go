package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError maps the error to its HTTP status and category code, so every
// failure carries a stable machine-readable category next to the message.
func RespondError(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), JSONResponse{
		Status:  false,
		Message: err.Error(),
		Code:    ErrorCode(err),
		Data:    nil,
	})
}

// RespondErrorWithStatus keeps the explicit status for boundary errors that
// never reach the service layer (bad bindings, auth failures).
func RespondErrorWithStatus(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Code:    ErrorCode(err),
		Data:    nil,
	})
}
