// File: internal/handler/error_handler.go
package handler

import (
	"errors"

	"starwars-api/internal/api"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// HTTPErrorHandler 將 *api.APIError 轉為 JSON，其餘交給 echo 預設處理
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var apiErr *api.APIError
		if !errors.As(err, &apiErr) {
			var he *echo.HTTPError
			if !errors.As(err, &he) {
				log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
			}
			e.DefaultHTTPErrorHandler(err, c)
			return
		}
		if c.Response().Committed {
			return
		}
		if err := c.JSON(apiErr.StatusCode, apiErr.ToMap()); err != nil {
			log.WithError(err).Error("write error response")
		}
	}
}
