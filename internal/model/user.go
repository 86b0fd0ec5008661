// File: internal/model/user.go
package model

// User 對應 users 資料表。Password 永遠不輸出
type User struct {
	ID       int    `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
