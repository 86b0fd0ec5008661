package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"starwars-api/internal/identity"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const ContextUserKey = "user_id"

// ErrInvalidID 路徑 id 不是純數字
var ErrInvalidID = errors.New("invalid id")

// ParseID 只接受十進位數字（不含正負號）。
// 數字超出資料表 INTEGER 範圍時 inRange 為 false，這樣的 id 不可能存在
func ParseID(s string) (id int, inRange bool, err error) {
	if s == "" {
		return 0, false, ErrInvalidID
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false, ErrInvalidID
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		// 全為數字時只剩超出範圍一種錯誤
		return 0, false, nil
	}
	return int(n), true, nil
}

// CurrentUser 透過 resolver 取得目前使用者並存入 context
func CurrentUser(resolver identity.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := resolver.CurrentUserID(c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			c.Set(ContextUserKey, id)
			return next(c)
		}
	}
}

// UserID 取出 CurrentUser 存入的使用者 ID
func UserID(c echo.Context) (int, bool) {
	id, ok := c.Get(ContextUserKey).(int)
	return id, ok
}

// IntParams 路徑參數不是非負整數時直接回 404，不進入 handler
func IntParams(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, name := range names {
				if _, _, err := ParseID(c.Param(name)); err != nil {
					return echo.ErrNotFound
				}
			}
			return next(c)
		}
	}
}

// AdminKeyAuth 以 Authorization: Bearer <token> 保護管理路由
func AdminKeyAuth(token string) echo.MiddlewareFunc {
	return echomw.KeyAuth(func(key string, c echo.Context) (bool, error) {
		return token != "" && subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1, nil
	})
}
