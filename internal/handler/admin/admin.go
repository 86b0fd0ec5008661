// File: internal/handler/admin/admin.go
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"starwars-api/internal/api"
	"starwars-api/internal/cache"
	"starwars-api/internal/database"
	"starwars-api/internal/middleware"
	"starwars-api/internal/model"
	"starwars-api/internal/service"
	"starwars-api/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
	createPlanet = store.CreatePlanet
	createPerson = store.CreatePerson
	deleteUser   = store.DeleteUser
	deletePlanet = store.DeletePlanet
	deletePerson = store.DeletePerson
)

// Models 管理介面可操作的資料模型
var Models = []api.ModelInfo{
	{
		Name: "user", Table: "users", Endpoint: "/admin/users",
		Fields: []api.ModelField{
			{Name: "id", Type: "integer", Required: true},
			{Name: "email", Type: "string", Required: true, Unique: true},
			{Name: "password", Type: "string", Required: true, Hidden: true},
			{Name: "is_active", Type: "boolean", Required: true},
		},
	},
	{
		Name: "planet", Table: "planets", Endpoint: "/admin/planets",
		Fields: []api.ModelField{
			{Name: "id", Type: "integer", Required: true},
			{Name: "name", Type: "string", Required: true},
			{Name: "climate", Type: "string"},
			{Name: "terrain", Type: "string"},
			{Name: "population", Type: "string"},
		},
	},
	{
		Name: "person", Table: "people", Endpoint: "/admin/people",
		Fields: []api.ModelField{
			{Name: "id", Type: "integer", Required: true},
			{Name: "name", Type: "string", Required: true},
			{Name: "birth_year", Type: "string"},
			{Name: "gender", Type: "string"},
		},
	},
	{
		Name: "favorite", Table: "favorites",
		Fields: []api.ModelField{
			{Name: "id", Type: "integer", Required: true},
			{Name: "user_id", Type: "integer", Required: true},
			{Name: "planet_id", Type: "integer"},
			{Name: "people_id", Type: "integer"},
		},
	},
}

// bindAndValidate 綁定 JSON 並驗證，失敗時回傳 *api.APIError
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return api.NewAPIError("invalid request body", http.StatusBadRequest, nil)
	}
	if err := c.Validate(req); err != nil {
		return api.NewAPIError(err.Error(), http.StatusBadRequest, nil)
	}
	return nil
}

// uniqueViolation 為 PostgreSQL 的 unique_violation SQLSTATE
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func invalidate(ctx context.Context, cch cache.Cache, key string) {
	if err := cache.Invalidate(ctx, cch, key); err != nil {
		log.WithError(err).WithField("key", key).Warn("cache invalidation failed")
	}
}

// @Summary     Admin index
// @Description 列出管理介面可操作的資料模型
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.AdminIndexResponse
// @Security    ApiKeyAuth
// @Router      /admin [get]
func IndexHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.AdminIndexResponse{Msg: api.MsgCompleted, Models: Models})
	}
}

// @Summary     Create a user
// @Description 密碼以 bcrypt 雜湊後儲存
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.APIErrorResponse
// @Failure     409  {object} api.APIErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		hash, err := hashPassword(req.Password)
		if err != nil {
			return api.NewAPIError("failed to hash password", http.StatusBadRequest, nil)
		}
		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:    req.Email,
			Password: hash,
			IsActive: req.IsActive,
		})
		if isUniqueViolation(err) {
			return api.NewAPIError("email already registered", http.StatusConflict, map[string]any{"email": req.Email})
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(*user))
	}
}

// @Summary     Create a planet
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreatePlanetRequest true "星球資料"
// @Success     201  {object} api.PlanetResponse
// @Failure     400  {object} api.APIErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/planets [post]
func CreatePlanetHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePlanetRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		planet, err := createPlanet(c.Request().Context(), db, &model.Planet{
			Name:       req.Name,
			Climate:    req.Climate,
			Terrain:    req.Terrain,
			Population: req.Population,
		})
		if err != nil {
			return err
		}
		invalidate(c.Request().Context(), cch, cache.KeyPlanets)
		return c.JSON(http.StatusCreated, api.NewPlanetResponse(*planet))
	}
}

// @Summary     Create a person
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreatePersonRequest true "角色資料"
// @Success     201  {object} api.PersonResponse
// @Failure     400  {object} api.APIErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/people [post]
func CreatePersonHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePersonRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		person, err := createPerson(c.Request().Context(), db, &model.Person{
			Name:      req.Name,
			BirthYear: req.BirthYear,
			Gender:    req.Gender,
		})
		if err != nil {
			return err
		}
		invalidate(c.Request().Context(), cch, cache.KeyPeople)
		return c.JSON(http.StatusCreated, api.NewPersonResponse(*person))
	}
}

// deleteHandler 刪除成功回 204，不存在回 404
func deleteHandler(db database.DB, cch cache.Cache, del func(context.Context, database.DB, int) (bool, error), name string, cacheKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, inRange, err := middleware.ParseID(c.Param("id"))
		if err != nil {
			return echo.ErrNotFound
		}
		ok := false
		if inRange {
			if ok, err = del(c.Request().Context(), db, id); err != nil {
				return err
			}
		}
		if !ok {
			return api.NewAPIError(name+" not found", http.StatusNotFound, map[string]any{"id": json.Number(c.Param("id"))})
		}
		if cacheKey != "" {
			invalidate(c.Request().Context(), cch, cacheKey)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a user
// @Tags        admin
// @Param       id  path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.APIErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users/{id} [delete]
func DeleteUserHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return deleteHandler(db, cch, func(ctx context.Context, db database.DB, id int) (bool, error) {
		return deleteUser(ctx, db, id)
	}, "user", "")
}

// @Summary     Delete a planet
// @Tags        admin
// @Param       id  path int true "星球 ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.APIErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/planets/{id} [delete]
func DeletePlanetHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return deleteHandler(db, cch, func(ctx context.Context, db database.DB, id int) (bool, error) {
		return deletePlanet(ctx, db, id)
	}, "planet", cache.KeyPlanets)
}

// @Summary     Delete a person
// @Tags        admin
// @Param       id  path int true "角色 ID"
// @Success     204 "No Content"
// @Failure     404 {object} api.APIErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/people/{id} [delete]
func DeletePersonHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return deleteHandler(db, cch, func(ctx context.Context, db database.DB, id int) (bool, error) {
		return deletePerson(ctx, db, id)
	}, "person", cache.KeyPeople)
}
