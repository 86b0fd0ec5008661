// File: internal/store/planet.go
package store

import (
	"context"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"

	"github.com/jackc/pgx/v5"
)

func scanPlanet(row pgx.Row, p *model.Planet) error {
	return row.Scan(&p.ID, &p.Name, &p.Climate, &p.Terrain, &p.Population)
}

func ListPlanets(ctx context.Context, db database.DB) ([]model.Planet, error) {
	return queryAll(ctx, db, "ListPlanets",
		`SELECT id, name, climate, terrain, population FROM planets`,
		scanPlanet,
	)
}

func GetPlanetByID(ctx context.Context, db database.DB, planetID int) (*model.Planet, error) {
	return queryOne(ctx, db, "GetPlanetByID",
		`SELECT id, name, climate, terrain, population FROM planets WHERE id = $1`,
		scanPlanet, planetID,
	)
}

func CreatePlanet(ctx context.Context, db database.DB, p *model.Planet) (*model.Planet, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO planets (name, climate, terrain, population)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.Name,
		p.Climate,
		p.Terrain,
		p.Population,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreatePlanet: %w", err)
	}
	return p, nil
}

func DeletePlanet(ctx context.Context, db database.DB, ID int) (bool, error) {
	return execDelete(ctx, db, "DeletePlanet", `DELETE FROM planets WHERE id = $1`, ID)
}

func CountPlanets(ctx context.Context, db database.DB) (int, error) {
	return count(ctx, db, "CountPlanets", "planets")
}
