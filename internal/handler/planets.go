// File: internal/handler/planets.go
package handler

import (
	"net/http"
	"time"

	"starwars-api/internal/api"
	"starwars-api/internal/cache"
	"starwars-api/internal/database"
	"starwars-api/internal/middleware"
	"starwars-api/internal/model"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// @Summary     List planets
// @Description 列出所有星球，順序不保證
// @Tags        planets
// @Produce     json
// @Success     200 {object} api.PlanetsResponse
// @Failure     500 {object} api.APIErrorResponse
// @Router      /planets [get]
func ListPlanetsHandler(db database.DB, cch cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var resp api.PlanetsResponse
		hit, err := cache.GetJSON(ctx, cch, cache.KeyPlanets, &resp)
		if err != nil {
			log.WithError(err).Warn("planets cache read failed")
		}
		if hit {
			return c.JSON(http.StatusOK, resp)
		}

		planets, err := listPlanets(ctx, db)
		if err != nil {
			return err
		}
		resp = api.NewPlanetsResponse(planets)
		if err := cache.SetJSON(ctx, cch, cache.KeyPlanets, resp, ttl); err != nil {
			log.WithError(err).Warn("planets cache write failed")
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a planet by ID
// @Tags        planets
// @Produce     json
// @Param       id   path      int  true  "星球 ID"
// @Success     200  {object}  api.PlanetDetailResponse
// @Failure     404  {object}  api.ErrorResponse  "Planeta no encontrado"
// @Router      /planets/{id} [get]
func GetPlanetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, inRange, err := middleware.ParseID(c.Param("id"))
		if err != nil {
			return echo.ErrNotFound
		}
		var planet *model.Planet
		if inRange {
			if planet, err = getPlanetByID(c.Request().Context(), db, id); err != nil {
				return err
			}
		}
		if planet == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrPlanetNotFound})
		}
		return c.JSON(http.StatusOK, api.PlanetDetailResponse{
			Msg:    api.MsgCompleted,
			Planet: api.NewPlanetResponse(*planet),
		})
	}
}
