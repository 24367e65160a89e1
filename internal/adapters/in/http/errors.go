package http

import (
	"errors"
	"net/http"

	"wastepickup/internal/pkg/errs"
	"wastepickup/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an error category onto an HTTP status code.
func StatusFor(err error) int {
	switch errs.CategoryOf(err) {
	case errs.CategoryValidation:
		return http.StatusBadRequest
	case errs.CategoryUnauthenticated:
		return http.StatusUnauthorized
	case errs.CategoryForbidden:
		return http.StatusForbidden
	case errs.CategoryNotFound:
		return http.StatusNotFound
	case errs.CategoryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFor renders the caller-visible message. Store and unknown failures
// never expose their cause.
func messageFor(err error, status int) string {
	var (
		conflict  *errs.ConflictError
		forbidden *errs.ForbiddenError
	)
	switch {
	case status == http.StatusInternalServerError:
		return MsgInternalError
	case status == http.StatusNotFound:
		return MsgPickupNotFound
	case errors.As(err, &conflict):
		return conflict.Message
	case errors.As(err, &forbidden):
		return forbidden.Reason
	default:
		return err.Error()
	}
}

// ErrorHandler writes every error returned by a handler as {code, message}.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status int
			body   Error
		)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(status)
			}
			body = Error{Code: status, Message: msg}
		} else {
			status = StatusFor(err)
			body = Error{Code: status, Message: messageFor(err, status)}
		}

		ctx := c.Request().Context()
		if status >= http.StatusInternalServerError {
			log.Error(ctx, "request failed", err)
		} else {
			log.Debug(ctx, "request rejected: "+err.Error())
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			log.Error(ctx, "write error response", writeErr)
		}
	}
}
