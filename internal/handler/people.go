// File: internal/handler/people.go
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

// @Summary     List people
// @Description 列出所有角色，順序不保證
// @Tags        people
// @Produce     json
// @Success     200 {object} api.PeopleResponse
// @Failure     500 {object} api.APIErrorResponse
// @Router      /people [get]
func ListPeopleHandler(db database.DB, cch cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var resp api.PeopleResponse
		hit, err := cache.GetJSON(ctx, cch, cache.KeyPeople, &resp)
		if err != nil {
			log.WithError(err).Warn("people cache read failed")
		}
		if hit {
			return c.JSON(http.StatusOK, resp)
		}

		people, err := listPeople(ctx, db)
		if err != nil {
			return err
		}
		resp = api.NewPeopleResponse(people)
		if err := cache.SetJSON(ctx, cch, cache.KeyPeople, resp, ttl); err != nil {
			log.WithError(err).Warn("people cache write failed")
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a person by ID
// @Tags        people
// @Produce     json
// @Param       id   path      int  true  "角色 ID"
// @Success     200  {object}  api.PersonDetailResponse
// @Failure     404  {object}  api.ErrorResponse  "Persona no encontrada"
// @Router      /people/{id} [get]
func GetPersonHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, inRange, err := middleware.ParseID(c.Param("id"))
		if err != nil {
			return echo.ErrNotFound
		}
		var person *model.Person
		if inRange {
			if person, err = getPersonByID(c.Request().Context(), db, id); err != nil {
				return err
			}
		}
		if person == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrPersonNotFound})
		}
		return c.JSON(http.StatusOK, api.PersonDetailResponse{
			Msg:    api.MsgCompleted,
			Person: api.NewPersonResponse(*person),
		})
	}
}
