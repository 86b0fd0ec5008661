// Package identity 決定請求所屬的使用者
package identity

import (
	"errors"
	"net/http"
)

var ErrNoUser = errors.New("no current user")

// Resolver 從請求取得目前使用者 ID
type Resolver interface {
	CurrentUserID(r *http.Request) (int, error)
}

// Static 一律回傳同一個使用者，在導入登入機制前使用
type Static struct {
	UserID int
}

func (s Static) CurrentUserID(*http.Request) (int, error) {
	if s.UserID <= 0 {
		return 0, ErrNoUser
	}
	return s.UserID, nil
}

// ResolverFunc 讓一般函式滿足 Resolver
type ResolverFunc func(r *http.Request) (int, error)

func (f ResolverFunc) CurrentUserID(r *http.Request) (int, error) {
	return f(r)
}
