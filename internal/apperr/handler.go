package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			body := map[string]any{"error": ve.Message, "title": "validation error"}
			if len(ve.Fields) > 0 {
				body["fields"] = ve.Fields
			}
			_ = c.JSON(http.StatusBadRequest, body)
			return
		}

		var nfe *NotFoundError
		if errors.As(err, &nfe) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": nfe.Error(), "title": "not found"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err, "kind", KindOf(err))
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
