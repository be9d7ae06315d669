package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db, TablePatients), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+patients\s*\(username,\s*salt,\s*hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`

	mock.ExpectExec(q).
		WithArgs("alice", []byte("salt"), []byte("hash")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	acc := &models.Account{Username: "alice", Salt: []byte("salt"), Hash: []byte("hash")}
	if err := repo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+patients`).
		WithArgs("alice", []byte("salt"), []byte("hash")).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.Account{Username: "alice", Salt: []byte("salt"), Hash: []byte("hash")})
	if err == nil {
		t.Fatalf("expected wrapped db error, got nil")
	}
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*salt,\s*hash\s+FROM\s+patients\s+WHERE\s+username\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"username", "salt", "hash"}).
		AddRow("alice", []byte("salt"), []byte("hash"))
	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.Username != "alice" || string(got.Salt) != "salt" || string(got.Hash) != "hash" {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+username,\s*salt,\s*hash\s+FROM\s+patients`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+1\s+FROM\s+patients\s+WHERE\s+username\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	ok, err := repo.Exists(context.Background(), "alice")
	if err != nil || !ok {
		t.Fatalf("expected exists=true, got %v, %v", ok, err)
	}

	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)
	ok, err = repo.Exists(context.Background(), "ghost")
	if err != nil || ok {
		t.Fatalf("expected exists=false, got %v, %v", ok, err)
	}
}

func TestCaregiverTable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db, TableCaregivers)
	mock.ExpectQuery(`SELECT\s+1\s+FROM\s+caregivers`).
		WithArgs("cg1").
		WillReturnError(sql.ErrNoRows)

	if ok, err := repo.Exists(context.Background(), "cg1"); err != nil || ok {
		t.Fatalf("expected exists=false on caregivers table, got %v, %v", ok, err)
	}
}
