// File: internal/model/person.go
package model

// Person 對應 people 資料表
type Person struct {
	ID        int     `db:"id"`
	Name      string  `db:"name"`
	BirthYear *string `db:"birth_year"`
	Gender    *string `db:"gender"`
}
