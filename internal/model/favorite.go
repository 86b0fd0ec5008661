// File: internal/model/favorite.go
package model

// Favorite 為 user 與 planet 或 person 的關聯，
// PlanetID 與 PeopleID 應只有一個有值，但資料表不強制
type Favorite struct {
	ID       int  `db:"id"`
	UserID   int  `db:"user_id"`
	PlanetID *int `db:"planet_id"`
	PeopleID *int `db:"people_id"`
}
