package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"astro-booking/internal/models"
)

const userColumns = `id, username, password, email, first_name, last_name, membership_plan, created_at, updated_at`

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.MembershipPlan,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) GetUser(ctx context.Context, id int) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return u, nil
}

func (s *service) CreateUser(ctx context.Context, user models.NewUser) (*models.User, error) {
	if user.Username == "" || user.Password == "" {
		return nil, &ValidationError{Reason: "username and password are required"}
	}
	plan := user.MembershipPlan
	if plan == "" {
		plan = models.PlanStargazer
	}

	query := `
		INSERT INTO users (username, password, email, first_name, last_name, membership_plan)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	row := s.db.QueryRowContext(ctx, query,
		user.Username,
		user.Password,
		user.Email,
		user.FirstName,
		user.LastName,
		plan,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, classify(err)
	}
	return u, nil
}

func (s *service) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	var set setList
	if patch.Username != nil {
		set.add("username", *patch.Username)
	}
	if patch.Password != nil {
		set.add("password", *patch.Password)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email)
	}
	if patch.FirstName != nil {
		set.add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		set.add("last_name", *patch.LastName)
	}
	if patch.MembershipPlan != nil {
		set.add("membership_plan", *patch.MembershipPlan)
	}
	set.cols = append(set.cols, "updated_at = now()")
	set.args = append(set.args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set.cols, ", "), len(set.args), userColumns)
	u, err := scanUser(s.db.QueryRowContext(ctx, query, set.args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return u, nil
}
