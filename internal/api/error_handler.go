package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/constants"
	"github.com/ougirez/elections/internal/pkg/logger"
)

// errorCode finds the status and client message for err. Anything that is
// neither a CodedError nor an echo error is an internal failure.
func errorCode(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}

	msg := err.Error()
	for err != nil {
		if ce, ok := err.(*constants.CodedError); ok {
			return ce.Code(), msg
		}
		err = errors.Unwrap(err)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := errorCode(err)
	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Request().URL.Path, err.Error())
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
