package response

import (
	"github.com/gin-gonic/gin"

	"collection-backend/internal/shared/apperror"
	"collection-backend/pkg/logger"
)

// Status is the two-valued outcome tag of the envelope.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusError   Status = "Error"
)

// Body is the envelope wrapped around every API response. Clients depend
// on the exact field names and on message/data being present (null when
// unset), so none of the fields are omitempty.
type Body struct {
	Status  Status      `json:"status"`
	Code    int         `json:"code"`
	Message *string     `json:"message"`
	Data    interface{} `json:"data"`
}

// Success writes a success envelope. The transport status mirrors code.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Body{
		Status:  StatusSuccess,
		Code:    code,
		Message: &message,
		Data:    data,
	})
}

// Fail writes an error envelope with a nil payload.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Body{
		Status:  StatusError,
		Code:    code,
		Message: &message,
		Data:    nil,
	})
}

// Error maps a service error to the envelope. Storage failures are
// reported with their generic message only; the cause is logged here and
// never leaves the process.
func Error(c *gin.Context, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		Fail(c, 400, apperror.MessageOf(err))
	case apperror.KindNotFound:
		Fail(c, 404, apperror.MessageOf(err))
	case apperror.KindUpstream:
		logger.Error("upstream call failed", err)
		Fail(c, 502, apperror.MessageOf(err))
	default:
		logger.Error("storage operation failed", err)
		Fail(c, 500, apperror.MessageOf(err))
	}
}
