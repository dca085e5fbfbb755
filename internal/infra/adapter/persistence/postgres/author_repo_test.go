package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/adapter/persistence/postgres"
)

func authorRows(authors ...*entity.Author) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name"})
	for _, a := range authors {
		rows.AddRow(a.ID, a.FirstName, a.LastName)
	}
	return rows
}

func TestAuthorRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Author{ID: 2, FirstName: "Ada", LastName: "Lovelace"}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name`)).
		WithArgs(int64(2)).
		WillReturnRows(authorRows(want))

	got, err := postgres.NewAuthorRepo(db).Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM authors`).WithArgs(int64(3)).WillReturnRows(authorRows())

	got, err := postgres.NewAuthorRepo(db).Get(context.Background(), 3)
	if err != nil || got != nil {
		t.Fatalf("Get = %v, %v; want nil, nil", got, err)
	}
}

func TestAuthorRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := []*entity.Author{
		{ID: 1, FirstName: "Grace", LastName: "Hopper"},
		{ID: 2, FirstName: "Ada", LastName: "Lovelace"},
	}
	mock.ExpectQuery(`FROM authors`).WillReturnRows(authorRows(want...))

	got, err := postgres.NewAuthorRepo(db).List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO authors (first_name, last_name)`)).
		WithArgs("Alan", "Turing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	a := &entity.Author{FirstName: "Alan", LastName: "Turing"}
	if err := postgres.NewAuthorRepo(db).Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID != 11 {
		t.Fatalf("ID = %d; want 11", a.ID)
	}
}

func TestAuthorRepo_Create_Error(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`INSERT INTO authors`).WillReturnError(dbErr)

	err := postgres.NewAuthorRepo(db).Create(context.Background(), &entity.Author{FirstName: "a", LastName: "b"})
	if !errors.Is(err, dbErr) {
		t.Fatalf("Create err=%v; want %v", err, dbErr)
	}
}

func TestAuthorRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE authors`).
		WithArgs("Grace", "Hopper", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := postgres.NewAuthorRepo(db).Update(context.Background(),
		&entity.Author{ID: 1, FirstName: "Grace", LastName: "Hopper"})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestAuthorRepo_Update_NoRowsAffected(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE authors`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := postgres.NewAuthorRepo(db).Update(context.Background(),
		&entity.Author{ID: 8, FirstName: "x", LastName: "y"})
	if !errors.Is(err, &entity.NotFoundError{Entity: "author"}) {
		t.Fatalf("Update err=%v; want author not found", err)
	}
}

func TestAuthorRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`DELETE FROM authors`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := postgres.NewAuthorRepo(db).Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestAuthorRepo_Delete_NoRowsAffected(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`DELETE FROM authors`).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := postgres.NewAuthorRepo(db).Delete(context.Background(), 4); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Delete err=%v; want ErrNotFound", err)
	}
}
