package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	_, err := r.db.Exec(context.Background(), `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Name, user.Email, user.Password)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT 1 FROM users WHERE email=$1 LIMIT 1`, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	row := r.db.QueryRow(context.Background(), `
		SELECT id, name, email, password
		FROM users WHERE email=$1
	`, email)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
