// File: internal/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"

	"starwars-api/internal/database"

	"github.com/jackc/pgx/v5"
)

// queryAll 執行查詢並逐列掃描。未排序，呼叫端不可假設順序
func queryAll[T any](ctx context.Context, db database.DB, op, sql string, scan func(pgx.Row, *T) error, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	list := []T{}
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// queryOne 查無資料時回傳 nil, nil
func queryOne[T any](ctx context.Context, db database.DB, op, sql string, scan func(pgx.Row, *T) error, args ...any) (*T, error) {
	var v T
	if err := scan(db.QueryRow(ctx, sql, args...), &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &v, nil
}

// execDelete 回傳是否有刪除任何資料
func execDelete(ctx context.Context, db database.DB, op, sql string, args ...any) (bool, error) {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return tag.RowsAffected() > 0, nil
}

func count(ctx context.Context, db database.DB, op, table string) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
