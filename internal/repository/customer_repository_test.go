package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ristoranti/ristoranti-backend/internal/utils"
)

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cliente")).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'mario@example.com' for key 'cliente.PRIMARY'"))

	repo := NewCustomerRepo(db)
	err = repo.Create(context.Background(), "mario@example.com", "Mario", "Rossi", "segreto", bcrypt.MinCost)
	if err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestCreateCustomer_NormalizesEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cliente (email, nome, cognome, password) VALUES (?,?,?,?)")).
		WithArgs("mario@example.com", "Mario", "Rossi", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCustomerRepo(db)
	if err := repo.Create(context.Background(), "  Mario@Example.COM ", "Mario", "Rossi", "segreto", bcrypt.MinCost); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetCustomerByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	hash, err := utils.HashPassword("segreto", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT email, nome, cognome, password FROM cliente WHERE email=? LIMIT 1")).
		WithArgs("mario@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email", "nome", "cognome", "password"}).
			AddRow("mario@example.com", "Mario", "Rossi", hash))

	repo := NewCustomerRepo(db)
	c, err := repo.GetByEmail(context.Background(), "Mario@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if c.Name != "Mario" || c.Surname != "Rossi" {
		t.Fatalf("unexpected customer: %+v", c)
	}
	if !utils.VerifyPassword(c.PasswordHash, "segreto") {
		t.Fatal("stored hash does not verify")
	}
}

func TestGetCustomerByEmail_Unknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT email, nome, cognome, password FROM cliente")).
		WithArgs("ignoto@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email", "nome", "cognome", "password"}))

	repo := NewCustomerRepo(db)
	if _, err := repo.GetByEmail(context.Background(), "ignoto@example.com"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cliente SET nome=? WHERE email=?")).
		WithArgs("Maria", "maria@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCustomerRepo(db)
	if err := repo.UpdateProfile(context.Background(), "maria@example.com", "Maria", ""); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
