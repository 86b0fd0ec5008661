// File: internal/handler/users.go
package handler

import (
	"net/http"

	"starwars-api/internal/api"
	"starwars-api/internal/database"
	"starwars-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// @Summary     List users
// @Description 列出所有使用者，不含密碼
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UsersResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewUsersResponse(users))
	}
}

// @Summary     List favorites of the current user
// @Tags        favorites
// @Produce     json
// @Success     200 {object} api.FavoritesResponse
// @Router      /users/favorites [get]
func ListFavoritesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return echo.ErrUnauthorized
		}
		favorites, err := listFavoritesByUser(c.Request().Context(), db, userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewFavoritesResponse(favorites))
	}
}
