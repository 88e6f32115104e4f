package database

import (
	"context"
	"fmt"

	"astro-booking/internal/models"
)

const favoriteColumns = `id, user_id, item_type, item_id, created_at`

func scanFavorite(row scanner) (*models.Favorite, error) {
	var f models.Favorite
	if err := row.Scan(&f.ID, &f.UserID, &f.ItemType, &f.ItemID, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *service) GetUserFavorites(ctx context.Context, userID int) ([]models.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+favoriteColumns+` FROM favorites WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites for user %d: %w", userID, err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (s *service) AddFavorite(ctx context.Context, favorite models.NewFavorite) (*models.Favorite, error) {
	query := `
		INSERT INTO favorites (user_id, item_type, item_id)
		VALUES ($1, $2, $3)
		RETURNING ` + favoriteColumns
	f, err := scanFavorite(s.db.QueryRowContext(ctx, query, favorite.UserID, favorite.ItemType, favorite.ItemID))
	if err != nil {
		return nil, classify(err)
	}
	return f, nil
}

// RemoveFavorite deletes the rows matching all three keys and reports whether
// anything was deleted. A second call for the same key returns false.
func (s *service) RemoveFavorite(ctx context.Context, userID int, itemType, itemID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND item_type = $2 AND item_id = $3`,
		userID, itemType, itemID,
	)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
