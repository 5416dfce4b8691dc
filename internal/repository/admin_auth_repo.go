package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

type Admin struct {
	ID           int
	Email        string
	PasswordHash string
}

type AdminAuthRepository interface {
	GetByEmail(email string) (*Admin, error)
}

type postgresAdminAuthRepository struct {
	DB *sql.DB
}

func NewAdminAuthRepository(database *sql.DB) AdminAuthRepository {
	return &postgresAdminAuthRepository{DB: database}
}

func (r *postgresAdminAuthRepository) GetByEmail(email string) (*Admin, error) {
	var admin Admin
	query := `SELECT id, email, password_hash FROM admins WHERE email = $1`
	err := r.DB.QueryRow(query, email).Scan(&admin.ID, &admin.Email, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying admin: %w", err)
	}
	return &admin, nil
}
