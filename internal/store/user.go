// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"

	"github.com/jackc/pgx/v5"
)

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive)
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	return queryAll(ctx, db, "ListUsers",
		`SELECT id, email, password, is_active FROM users`,
		scanUser,
	)
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	return queryOne(ctx, db, "GetUserByID",
		`SELECT id, email, password, is_active FROM users WHERE id = $1`,
		scanUser, userID,
	)
}

// CreateUser 寫入使用者，Password 需由呼叫端先雜湊
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password, is_active)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		u.Email,
		u.Password,
		u.IsActive,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func DeleteUser(ctx context.Context, db database.DB, ID int) (bool, error) {
	return execDelete(ctx, db, "DeleteUser", `DELETE FROM users WHERE id = $1`, ID)
}

func CountUsers(ctx context.Context, db database.DB) (int, error) {
	return count(ctx, db, "CountUsers", "users")
}
