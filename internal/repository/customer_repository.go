package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ristoranti/ristoranti-backend/internal/model"
	"github.com/ristoranti/ristoranti-backend/internal/utils"
)

// CustomerRepo persists customer accounts keyed by email.
type CustomerRepo struct{ DB *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// Create hashes the password and inserts the customer.  Emails are
// normalized to lower case before storage so the unique key catches
// case-variant duplicates; a duplicate yields ErrEmailExists.
func (r *CustomerRepo) Create(ctx context.Context, email, name, surname, password string, cost int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO cliente (email, nome, cognome, password) VALUES (?,?,?,?)",
		email, name, surname, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches a customer by normalized email.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var c model.Customer
	err := r.DB.QueryRowContext(ctx,
		"SELECT email, nome, cognome, password FROM cliente WHERE email=? LIMIT 1",
		email).Scan(&c.Email, &c.Name, &c.Surname, &c.PasswordHash)
	return c, err
}

// UpdateProfile patches the name and surname of a customer.  Empty values
// leave the corresponding column untouched.
func (r *CustomerRepo) UpdateProfile(ctx context.Context, email, name, surname string) error {
	set := []string{}
	args := []any{}
	if name != "" {
		set = append(set, "nome=?")
		args = append(args, name)
	}
	if surname != "" {
		set = append(set, "cognome=?")
		args = append(args, surname)
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, strings.ToLower(strings.TrimSpace(email)))
	_, err := r.DB.ExecContext(ctx,
		"UPDATE cliente SET "+strings.Join(set, ", ")+" WHERE email=?", args...)
	return err
}
