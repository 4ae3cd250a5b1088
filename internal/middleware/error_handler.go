package middleware

import (
	"net/http"

	"skyStop/pkg/logger"

	jsonres "skyStop/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler converts unhandled errors into the standard error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	errCode := "REQUEST_ERROR"
	if code >= http.StatusInternalServerError {
		errCode = "INTERNAL_ERROR"
	}

	_ = c.JSON(code, jsonres.Error(errCode, message, nil))
}
