package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"articles-api/internal/domain/entity"
	pg "articles-api/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

func articleRows(articles ...*entity.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "content"})
	for _, a := range articles {
		rows.AddRow(a.ID, a.Title, a.Content)
	}
	return rows
}

func regionLinkRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"article_id", "id", "code", "name"})
}

func authorLinkRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"article_id", "id", "first_name", "last_name"})
}

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, content")).
		WithArgs(int64(1)).
		WillReturnRows(articleRows(&entity.Article{ID: 1, Title: "Hello", Content: "body"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM article_regions l")).
		WithArgs(int64(1)).
		WillReturnRows(regionLinkRows().
			AddRow(int64(1), int64(2), "DE", "Germany").
			AddRow(int64(1), int64(4), "FR", "France"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM article_authors l")).
		WithArgs(int64(1)).
		WillReturnRows(authorLinkRows().
			AddRow(int64(1), int64(7), "Ada", "Lovelace"))

	got, err := pg.NewArticleRepo(db).Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}

	want := &entity.Article{
		ID: 1, Title: "Hello", Content: "body",
		Regions: []*entity.Region{
			{ID: 2, Code: "DE", Name: "Germany"},
			{ID: 4, Code: "FR", Name: "France"},
		},
		Authors: []*entity.Author{{ID: 7, FirstName: "Ada", LastName: "Lovelace"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NoAssociations(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").
		WithArgs(int64(3)).
		WillReturnRows(articleRows(&entity.Article{ID: 3, Title: "Bare"}))
	mock.ExpectQuery("FROM article_regions").WillReturnRows(regionLinkRows())
	mock.ExpectQuery("FROM article_authors").WillReturnRows(authorLinkRows())

	got, err := pg.NewArticleRepo(db).Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.Regions == nil || got.Authors == nil || len(got.Regions)+len(got.Authors) != 0 {
		t.Fatalf("associations = %#v / %#v; want empty non-nil slices", got.Regions, got.Authors)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").WithArgs(int64(5)).WillReturnRows(articleRows())

	got, err := pg.NewArticleRepo(db).Get(context.Background(), 5)
	if err != nil || got != nil {
		t.Fatalf("Get = %v, %v; want nil, nil", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 2. List ─────────────────────────── */

func TestArticleRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("FROM articles\nORDER BY id")).
		WillReturnRows(articleRows(
			&entity.Article{ID: 1, Title: "one"},
			&entity.Article{ID: 2, Title: "two"},
		))
	mock.ExpectQuery("FROM article_regions").
		WillReturnRows(regionLinkRows().AddRow(int64(2), int64(1), "DE", "Germany"))
	mock.ExpectQuery("FROM article_authors").
		WillReturnRows(authorLinkRows().
			AddRow(int64(1), int64(3), "Alan", "Turing").
			AddRow(int64(2), int64(3), "Alan", "Turing"))

	got, err := pg.NewArticleRepo(db).List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}

	turing := &entity.Author{ID: 3, FirstName: "Alan", LastName: "Turing"}
	want := []*entity.Article{
		{ID: 1, Title: "one", Regions: []*entity.Region{}, Authors: []*entity.Author{turing}},
		{ID: 2, Title: "two", Regions: []*entity.Region{{ID: 1, Code: "DE", Name: "Germany"}}, Authors: []*entity.Author{turing}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleRepo_List_EmptySkipsHydration(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").WillReturnRows(articleRows())

	got, err := pg.NewArticleRepo(db).List(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("List = %v, %v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 3. Create / Update / Delete ─────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles (title, content)")).
		WithArgs("T", "C").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	a := &entity.Article{Title: "T", Content: "C"}
	if err := pg.NewArticleRepo(db).Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID != 12 {
		t.Fatalf("ID = %d; want 12", a.ID)
	}
}

func TestArticleRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE articles").
		WithArgs("new", "text", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := pg.NewArticleRepo(db).Update(context.Background(),
		&entity.Article{ID: 1, Title: "new", Content: "text"}); err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestArticleRepo_Update_NoRowsAffected(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE articles").WillReturnResult(sqlmock.NewResult(0, 0))

	err := pg.NewArticleRepo(db).Update(context.Background(), &entity.Article{ID: 9, Title: "x"})
	if !errors.Is(err, &entity.NotFoundError{Entity: "article"}) {
		t.Fatalf("Update err=%v; want article not found", err)
	}
}

func TestArticleRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := pg.NewArticleRepo(db).Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestArticleRepo_Delete_NoRowsAffected(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM articles").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := pg.NewArticleRepo(db).Delete(context.Background(), 1); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Delete err=%v; want ErrNotFound", err)
	}
}

/* ─────────────────────────── 4. Replace associations ─────────────────────────── */

func TestArticleRepo_ReplaceRegions(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_regions WHERE article_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_regions")).
		WithArgs(int64(1), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_regions")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// 重複した 4 は一度だけリンクされる
	if err := pg.NewArticleRepo(db).ReplaceRegions(context.Background(), 1, []int64{4, 2, 4}); err != nil {
		t.Fatalf("ReplaceRegions err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ReplaceAuthors_Clear(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_authors WHERE article_id = $1")).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := pg.NewArticleRepo(db).ReplaceAuthors(context.Background(), 6, nil); err != nil {
		t.Fatalf("ReplaceAuthors err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ReplaceAuthors_InsertError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	fkErr := errors.New("violates foreign key constraint")
	mock.ExpectExec("DELETE FROM article_authors").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO article_authors").WillReturnError(fkErr)

	err := pg.NewArticleRepo(db).ReplaceAuthors(context.Background(), 6, []int64{100})
	if !errors.Is(err, fkErr) {
		t.Fatalf("ReplaceAuthors err=%v; want %v", err, fkErr)
	}
}

func TestArticleRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(8)))

	n, err := pg.NewArticleRepo(db).Count(context.Background())
	if err != nil || n != 8 {
		t.Fatalf("Count = %d, %v; want 8, nil", n, err)
	}
}
