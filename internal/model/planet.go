// File: internal/model/planet.go
package model

type Planet struct {
	ID         int     `db:"id"`
	Name       string  `db:"name"`
	Climate    *string `db:"climate"`
	Terrain    *string `db:"terrain"`
	Population *string `db:"population"`
}
