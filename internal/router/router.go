// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"starwars-api/internal/cache"
	"starwars-api/internal/database"
	"starwars-api/internal/handler"
	"starwars-api/internal/handler/admin"
	"starwars-api/internal/identity"
	"starwars-api/internal/middleware"
)

// Options 路由所需的設定
type Options struct {
	Resolver   identity.Resolver
	CacheTTL   time.Duration
	AdminToken string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, opts Options) {
	intID := middleware.IntParams("id")
	currentUser := middleware.CurrentUser(opts.Resolver)

	// sitemap 與健康檢查
	e.GET("/", handler.SitemapHandler(e))
	e.GET("/ping", handler.PingHandler(db, cch))

	e.GET("/user", handler.HelloHandler())
	e.GET("/users", handler.ListUsersHandler(db))
	e.GET("/users/favorites", handler.ListFavoritesHandler(db), currentUser)

	// 目錄
	e.GET("/planets", handler.ListPlanetsHandler(db, cch, opts.CacheTTL))
	e.GET("/planets/:id", handler.GetPlanetHandler(db), intID)
	e.GET("/people", handler.ListPeopleHandler(db, cch, opts.CacheTTL))
	e.GET("/people/:id", handler.GetPersonHandler(db), intID)

	// 目前使用者的收藏
	// 中介層掛在個別路由上，避免 group 另外註冊 /favorite 的 catch-all
	fav := e.Group("/favorite")
	fav.POST("/planet/:id", handler.AddFavoritePlanetHandler(db), currentUser, intID)
	fav.DELETE("/planet/:id", handler.DeleteFavoritePlanetHandler(db), currentUser, intID)
	fav.POST("/people/:id", handler.AddFavoritePersonHandler(db), currentUser, intID)
	fav.DELETE("/people/:id", handler.DeleteFavoritePersonHandler(db), currentUser, intID)

	// 未設定 ADMIN_TOKEN 時不開放管理路由
	if opts.AdminToken == "" {
		return
	}
	adm := e.Group("/admin", middleware.AdminKeyAuth(opts.AdminToken))
	adm.GET("", admin.IndexHandler())
	adm.POST("/users", admin.CreateUserHandler(db))
	adm.DELETE("/users/:id", admin.DeleteUserHandler(db, cch), intID)
	adm.POST("/planets", admin.CreatePlanetHandler(db, cch))
	adm.DELETE("/planets/:id", admin.DeletePlanetHandler(db, cch), intID)
	adm.POST("/people", admin.CreatePersonHandler(db, cch))
	adm.DELETE("/people/:id", admin.DeletePersonHandler(db, cch), intID)
}
