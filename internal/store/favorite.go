// File: internal/store/favorite.go
package store

import (
	"context"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"

	"github.com/jackc/pgx/v5"
)

func scanFavorite(row pgx.Row, f *model.Favorite) error {
	return row.Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID)
}

func ListFavoritesByUser(ctx context.Context, db database.DB, userID int) ([]model.Favorite, error) {
	return queryAll(ctx, db, "ListFavoritesByUser",
		`SELECT id, user_id, planet_id, people_id FROM favorites WHERE user_id = $1`,
		scanFavorite, userID,
	)
}

// CreateFavorite 不檢查 planet_id / people_id 是否存在
func CreateFavorite(ctx context.Context, db database.DB, f *model.Favorite) (*model.Favorite, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO favorites (user_id, planet_id, people_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		f.UserID,
		f.PlanetID,
		f.PeopleID,
	)
	if err := row.Scan(&f.ID); err != nil {
		return nil, fmt.Errorf("CreateFavorite: %w", err)
	}
	return f, nil
}

// DeleteFavoritePlanet 只刪除一筆符合的收藏
func DeleteFavoritePlanet(ctx context.Context, db database.DB, userID, planetID int) (bool, error) {
	return execDelete(ctx, db, "DeleteFavoritePlanet",
		`DELETE FROM favorites WHERE id = (
		     SELECT id FROM favorites WHERE user_id = $1 AND planet_id = $2 LIMIT 1
		 )`,
		userID, planetID,
	)
}

// DeleteFavoritePerson 只刪除一筆符合的收藏
func DeleteFavoritePerson(ctx context.Context, db database.DB, userID, personID int) (bool, error) {
	return execDelete(ctx, db, "DeleteFavoritePerson",
		`DELETE FROM favorites WHERE id = (
		     SELECT id FROM favorites WHERE user_id = $1 AND people_id = $2 LIMIT 1
		 )`,
		userID, personID,
	)
}
