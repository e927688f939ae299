package apperrors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// HTTPErrorHandler renders every failure as the uniform {"error": {...}}
// envelope. AppErrors keep their code and status; echo.HTTPErrors (routing,
// binding) are mapped onto the closest ErrorCode; anything else is a 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := errorBody{Code: CodeInternalError, Message: "internal error"}

	if appErr, ok := As(err); ok {
		status = appErr.HTTPCode
		body = errorBody{Code: appErr.Code, Message: appErr.Message}
	} else if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		body = errorBody{Code: codeForStatus(httpErr.Code), Message: messageOf(httpErr)}
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, echo.Map{"error": body})
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}

func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadRequest:
		return CodeValidationFailed
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusConflict:
		return CodeConflict
	default:
		return CodeInternalError
	}
}

func messageOf(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return http.StatusText(httpErr.Code)
}
