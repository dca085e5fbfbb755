package region_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"articles-api/internal/domain/entity"
	regionUC "articles-api/internal/usecase/region"
)

/*────────────────────  インメモリスタブ  ────────────────────*/

type stubRepo struct {
	data   map[int64]*entity.Region
	nextID int64
	err    error // 強制エラー注入用
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Region{}, nextID: 1}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Region, error) {
	return s.data[id], s.err
}
func (s *stubRepo) List(_ context.Context) ([]*entity.Region, error) {
	out := []*entity.Region{}
	for _, v := range s.data {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, s.err
}
func (s *stubRepo) Create(_ context.Context, r *entity.Region) error {
	if s.err != nil {
		return s.err
	}
	r.ID = s.nextID
	s.nextID++
	s.data[r.ID] = r
	return nil
}
func (s *stubRepo) Update(_ context.Context, r *entity.Region) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[r.ID]; !ok {
		return &entity.NotFoundError{Entity: "region", ID: r.ID}
	}
	s.data[r.ID] = r
	return nil
}
func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return &entity.NotFoundError{Entity: "region", ID: id}
	}
	delete(s.data, id)
	return nil
}
func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

/*────────────────────  テストケース  ────────────────────*/

/* 1. Create: 必須フィールドバリデーション */
func TestService_Create_validation(t *testing.T) {
	tests := []struct {
		name  string
		in    regionUC.Input
		field string
	}{
		{"missing code", regionUC.Input{Name: "Germany"}, "code"},
		{"missing name", regionUC.Input{Code: "DE"}, "name"},
		{"blank code", regionUC.Input{Code: "  ", Name: "Germany"}, "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			svc := regionUC.Service{Repo: stub}

			_, err := svc.Create(context.Background(), tt.in)
			var ve *entity.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("want validation error on %q, got %v", tt.field, err)
			}
			if len(stub.data) != 0 {
				t.Fatalf("nothing should be stored, got %d", len(stub.data))
			}
		})
	}
}

/* 2. Create → 採番された ID が返るか */
func TestService_Create_success(t *testing.T) {
	stub := newStub()
	svc := regionUC.Service{Repo: stub}

	got, err := svc.Create(context.Background(), regionUC.Input{Code: "DE", Name: "Germany"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID != 1 || got.Code != "DE" || got.Name != "Germany" {
		t.Fatalf("unexpected region: %#v", got)
	}
	if len(stub.data) != 1 {
		t.Fatalf("want 1 region, got %d", len(stub.data))
	}
}

/* 3. Get */
func TestService_Get(t *testing.T) {
	stub := newStub()
	stub.data[1] = &entity.Region{ID: 1, Code: "DE", Name: "Germany"}
	svc := regionUC.Service{Repo: stub}

	if _, err := svc.Get(context.Background(), 1); err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if _, err := svc.Get(context.Background(), 2); !errors.Is(err, regionUC.ErrRegionNotFound) {
		t.Fatalf("want ErrRegionNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, regionUC.ErrInvalidRegionID) {
		t.Fatalf("want ErrInvalidRegionID, got %v", err)
	}
}

/* 4. Update: 全フィールド置換 */
func TestService_Update(t *testing.T) {
	stub := newStub()
	stub.data[1] = &entity.Region{ID: 1, Code: "DE", Name: "Germany"}
	svc := regionUC.Service{Repo: stub}

	got, err := svc.Update(context.Background(), 1, regionUC.Input{Code: "AT", Name: "Austria"})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.ID != 1 || stub.data[1].Code != "AT" || stub.data[1].Name != "Austria" {
		t.Fatalf("update failed: %#v", stub.data[1])
	}
}

func TestService_Update_errors(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		in      regionUC.Input
		wantErr error
	}{
		{"invalid id", 0, regionUC.Input{Code: "DE", Name: "Germany"}, regionUC.ErrInvalidRegionID},
		{"not found", 99, regionUC.Input{Code: "DE", Name: "Germany"}, regionUC.ErrRegionNotFound},
		{"missing name", 1, regionUC.Input{Code: "DE"}, entity.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := regionUC.Service{Repo: newStub()}
			_, err := svc.Update(context.Background(), tt.id, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

/* 5. Delete */
func TestService_Delete(t *testing.T) {
	stub := newStub()
	stub.data[3] = &entity.Region{ID: 3, Code: "FR", Name: "France"}
	svc := regionUC.Service{Repo: stub}

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), 3); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), -1); err == nil {
		t.Fatalf("want validation error, got nil")
	}
}

/* 6. List */
func TestService_List(t *testing.T) {
	tests := []struct {
		name      string
		setupRepo func(*stubRepo)
		wantCount int
		wantErr   bool
	}{
		{"empty list", func(*stubRepo) {}, 0, false},
		{
			"multiple regions",
			func(s *stubRepo) {
				s.data[1] = &entity.Region{ID: 1, Code: "DE", Name: "Germany"}
				s.data[2] = &entity.Region{ID: 2, Code: "FR", Name: "France"}
			},
			2, false,
		},
		{"repository error", func(s *stubRepo) { s.err = errors.New("database error") }, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			tt.setupRepo(stub)
			svc := regionUC.Service{Repo: stub}

			regions, err := svc.List(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(regions) != tt.wantCount {
				t.Errorf("List() got %d regions, want %d", len(regions), tt.wantCount)
			}
		})
	}
}
