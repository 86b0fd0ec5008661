// File: internal/handler/hello.go
package handler

import (
	"net/http"

	"starwars-api/internal/api"

	"github.com/labstack/echo/v4"
)

// HelloHandler 固定問候訊息
// @Summary     Hello
// @Tags        users
// @Produce     json
// @Success     200 {object} api.MsgResponse
// @Router      /user [get]
func HelloHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MsgResponse{Msg: api.MsgHello})
	}
}
