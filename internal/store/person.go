// File: internal/store/person.go
package store

import (
	"context"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"

	"github.com/jackc/pgx/v5"
)

func scanPerson(row pgx.Row, p *model.Person) error {
	return row.Scan(&p.ID, &p.Name, &p.BirthYear, &p.Gender)
}

func ListPeople(ctx context.Context, db database.DB) ([]model.Person, error) {
	return queryAll(ctx, db, "ListPeople",
		`SELECT id, name, birth_year, gender FROM people`,
		scanPerson,
	)
}

func GetPersonByID(ctx context.Context, db database.DB, personID int) (*model.Person, error) {
	return queryOne(ctx, db, "GetPersonByID",
		`SELECT id, name, birth_year, gender FROM people WHERE id = $1`,
		scanPerson, personID,
	)
}

func CreatePerson(ctx context.Context, db database.DB, p *model.Person) (*model.Person, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO people (name, birth_year, gender)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.Name,
		p.BirthYear,
		p.Gender,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreatePerson: %w", err)
	}
	return p, nil
}

func DeletePerson(ctx context.Context, db database.DB, ID int) (bool, error) {
	return execDelete(ctx, db, "DeletePerson", `DELETE FROM people WHERE id = $1`, ID)
}

func CountPeople(ctx context.Context, db database.DB) (int, error) {
	return count(ctx, db, "CountPeople", "people")
}
