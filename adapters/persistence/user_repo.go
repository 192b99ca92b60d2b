package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MasterEda92/UserService/internal/domain/user"
)

type postgresUserRepo struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepo(db *pgxpool.Pool) user.Store {
	return &postgresUserRepo{db: db}
}

var psqlUsers = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "user_name", "email", "password", "first_name", "last_name"}

const selectUserColumns = "id, user_name, email, password, first_name, last_name"

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return u, nil
}

func scanUsers(rows pgx.Rows) ([]user.User, error) {
	defer rows.Close()
	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *postgresUserRepo) GetAll(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT ` + selectUserColumns + `
		FROM users
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return scanUsers(rows)
}

func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT ` + selectUserColumns + `
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *postgresUserRepo) Query(ctx context.Context, f user.Filter) ([]user.User, error) {
	builder := psqlUsers.Select(userColumns...).From("users").OrderBy("id")
	if f.UserName != "" {
		builder = builder.Where(sq.Eq{"user_name": f.UserName})
	}
	if f.Email != "" {
		builder = builder.Where(sq.Eq{"email": f.Email})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return scanUsers(rows)
}

func (r *postgresUserRepo) Add(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (user_name, email, password, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + selectUserColumns + `
	`
	saved, err := scanUser(r.db.QueryRow(ctx, query,
		u.UserName, u.Email, u.PasswordHash, u.FirstName, u.LastName,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, user.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return saved, nil
}

func (r *postgresUserRepo) Update(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		UPDATE users
		SET user_name = $2, email = $3, password = $4, first_name = $5, last_name = $6
		WHERE id = $1
		RETURNING ` + selectUserColumns + `
	`
	updated, err := scanUser(r.db.QueryRow(ctx, query,
		u.ID, u.UserName, u.Email, u.PasswordHash, u.FirstName, u.LastName,
	))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, user.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}

func (r *postgresUserRepo) DeleteByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING ` + selectUserColumns + `
	`
	deleted, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return deleted, nil
}

func (r *postgresUserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
