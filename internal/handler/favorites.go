// File: internal/handler/favorites.go
package handler

import (
	"context"
	"net/http"

	"starwars-api/internal/api"
	"starwars-api/internal/database"
	"starwars-api/internal/middleware"
	"starwars-api/internal/model"

	"github.com/labstack/echo/v4"
)

// favoriteTarget 描述 planet 與 people 收藏路由的差異
type favoriteTarget struct {
	build      func(userID, id int) *model.Favorite
	remove     func(ctx context.Context, db database.DB, userID, id int) (bool, error)
	addedMsg   string
	deletedMsg string
	missingMsg string
}

var (
	planetTarget = favoriteTarget{
		build: func(userID, id int) *model.Favorite {
			return &model.Favorite{UserID: userID, PlanetID: &id}
		},
		remove:     func(ctx context.Context, db database.DB, u, id int) (bool, error) { return deleteFavoritePlanet(ctx, db, u, id) },
		addedMsg:   api.MsgFavoritePlanetAdded,
		deletedMsg: api.MsgFavoritePlanetDeleted,
		missingMsg: api.ErrPlanetNotFound,
	}
	personTarget = favoriteTarget{
		build: func(userID, id int) *model.Favorite {
			return &model.Favorite{UserID: userID, PeopleID: &id}
		},
		remove:     func(ctx context.Context, db database.DB, u, id int) (bool, error) { return deleteFavoritePerson(ctx, db, u, id) },
		addedMsg:   api.MsgFavoritePersonAdded,
		deletedMsg: api.MsgFavoritePersonDeleted,
		missingMsg: api.ErrFavoritePersonNotFound,
	}
)

// favoriteParams 取得目前使用者與路徑上的 id
func favoriteParams(c echo.Context) (userID, id int, inRange bool, err error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return 0, 0, false, echo.ErrUnauthorized
	}
	id, inRange, err = middleware.ParseID(c.Param("id"))
	if err != nil {
		return 0, 0, false, echo.ErrNotFound
	}
	return userID, id, inRange, nil
}

// addFavorite 不檢查目標是否存在
func addFavorite(db database.DB, t favoriteTarget) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, id, inRange, err := favoriteParams(c)
		if err != nil {
			return err
		}
		// 超出欄位範圍的 id 無法寫入
		if !inRange {
			return echo.ErrNotFound
		}
		if _, err := createFavorite(c.Request().Context(), db, t.build(userID, id)); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: t.addedMsg})
	}
}

func deleteFavorite(db database.DB, t favoriteTarget) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, id, inRange, err := favoriteParams(c)
		if err != nil {
			return err
		}
		deleted := false
		if inRange {
			if deleted, err = t.remove(c.Request().Context(), db, userID, id); err != nil {
				return err
			}
		}
		if !deleted {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: t.missingMsg})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: t.deletedMsg})
	}
}

// @Summary     Add a planet to favorites
// @Tags        favorites
// @Produce     json
// @Param       id   path      int  true  "星球 ID"
// @Success     200  {object}  api.MessageResponse
// @Router      /favorite/planet/{id} [post]
func AddFavoritePlanetHandler(db database.DB) echo.HandlerFunc {
	return addFavorite(db, planetTarget)
}

// @Summary     Add a person to favorites
// @Tags        favorites
// @Produce     json
// @Param       id   path      int  true  "角色 ID"
// @Success     200  {object}  api.MessageResponse
// @Router      /favorite/people/{id} [post]
func AddFavoritePersonHandler(db database.DB) echo.HandlerFunc {
	return addFavorite(db, personTarget)
}

// @Summary     Remove a planet from favorites
// @Tags        favorites
// @Produce     json
// @Param       id   path      int  true  "星球 ID"
// @Success     200  {object}  api.MessageResponse
// @Failure     404  {object}  api.ErrorResponse  "Planeta no encontrado"
// @Router      /favorite/planet/{id} [delete]
func DeleteFavoritePlanetHandler(db database.DB) echo.HandlerFunc {
	return deleteFavorite(db, planetTarget)
}

// @Summary     Remove a person from favorites
// @Tags        favorites
// @Produce     json
// @Param       id   path      int  true  "角色 ID"
// @Success     200  {object}  api.MessageResponse
// @Failure     404  {object}  api.ErrorResponse  "Personaje no se encontro"
// @Router      /favorite/people/{id} [delete]
func DeleteFavoritePersonHandler(db database.DB) echo.HandlerFunc {
	return deleteFavorite(db, personTarget)
}
