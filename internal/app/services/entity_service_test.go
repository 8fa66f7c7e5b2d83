package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/oguzhan/uniregistry/internal/app/models"
	"github.com/oguzhan/uniregistry/internal/pkg/apperrors"
)

// mockStore is an in-memory Store keyed by a caller-supplied key function.
type mockStore[T any] struct {
	records map[int64]T
	keyOf   func(*T) int64
	failErr error
}

func newMockStore[T any](keyOf func(*T) int64) *mockStore[T] {
	return &mockStore[T]{records: make(map[int64]T), keyOf: keyOf}
}

func (m *mockStore[T]) List(_ context.Context) ([]T, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	keys := make([]int64, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.records[k])
	}
	return out, nil
}

func (m *mockStore[T]) GetByID(_ context.Context, id int64) (*T, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	record, ok := m.records[id]
	if !ok {
		return nil, apperrors.NewNotFound("Department")
	}
	return &record, nil
}

func (m *mockStore[T]) Create(_ context.Context, record *T) (*T, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	m.records[m.keyOf(record)] = *record
	return record, nil
}

func (m *mockStore[T]) Update(_ context.Context, id int64, record *T) (*T, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	if _, ok := m.records[id]; !ok {
		return nil, apperrors.NewNotFound("Department")
	}
	m.records[id] = *record
	return record, nil
}

func (m *mockStore[T]) Delete(_ context.Context, id int64) (*T, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	record, ok := m.records[id]
	if !ok {
		return nil, apperrors.NewNotFound("Department")
	}
	delete(m.records, id)
	return &record, nil
}

func newDepartmentService() (*EntityService[models.Department], *mockStore[models.Department]) {
	store := newMockStore(func(d *models.Department) int64 { return d.DepartmentNo })
	return NewEntityService[models.Department](store, "Department"), store
}

func TestEntityService_RoundTrip(t *testing.T) {
	svc, _ := newDepartmentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Department{DepartmentNo: 1, DepartmentName: "Physics"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.DepartmentName != "Physics" {
		t.Errorf("Create returned %q, want Physics", created.DepartmentName)
	}

	got, err := svc.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.DepartmentNo != 1 || got.DepartmentName != "Physics" {
		t.Errorf("GetByID returned %+v", got)
	}

	updated, err := svc.Update(ctx, 1, &models.Department{DepartmentNo: 1, DepartmentName: "Applied Physics"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.DepartmentName != "Applied Physics" {
		t.Errorf("Update returned %q, want Applied Physics", updated.DepartmentName)
	}

	deleted, err := svc.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.DepartmentName != "Applied Physics" {
		t.Errorf("Delete returned %q, want prior contents", deleted.DepartmentName)
	}

	if _, err := svc.GetByID(ctx, 1); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetByID after delete: got %v, want not-found", err)
	}
}

func TestEntityService_ListEmpty(t *testing.T) {
	svc, _ := newDepartmentService()

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if records == nil {
		t.Fatal("List returned nil, want empty slice")
	}
	if len(records) != 0 {
		t.Errorf("List returned %d records, want 0", len(records))
	}
}

func TestEntityService_ListOrdered(t *testing.T) {
	svc, _ := newDepartmentService()
	ctx := context.Background()

	for _, d := range []models.Department{
		{DepartmentNo: 3, DepartmentName: "Physics"},
		{DepartmentNo: 1, DepartmentName: "Mathematics"},
		{DepartmentNo: 2, DepartmentName: "Chemistry"},
	} {
		d := d
		if _, err := svc.Create(ctx, &d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	records, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("List returned %d records, want 3", len(records))
	}
	for i, want := range []int64{1, 2, 3} {
		if records[i].DepartmentNo != want {
			t.Errorf("records[%d].DepartmentNo = %d, want %d", i, records[i].DepartmentNo, want)
		}
	}
}

func TestEntityService_UpdateMissing(t *testing.T) {
	svc, _ := newDepartmentService()

	_, err := svc.Update(context.Background(), 42, &models.Department{DepartmentNo: 42, DepartmentName: "Ghost"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Update on missing row: got %v, want not-found", err)
	}
}

func TestEntityService_ZeroIDRowReachable(t *testing.T) {
	// The schema places no lower bound on keys, so a row created with id 0
	// must be readable, updatable, and deletable like any other.
	svc, _ := newDepartmentService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &models.Department{DepartmentNo: 0, DepartmentName: "Undeclared"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.GetByID(ctx, 0)
	if err != nil {
		t.Fatalf("GetByID(0) failed: %v", err)
	}
	if got.DepartmentName != "Undeclared" {
		t.Errorf("GetByID(0) returned %+v", got)
	}

	if _, err := svc.Update(ctx, 0, &models.Department{DepartmentNo: 0, DepartmentName: "General Studies"}); err != nil {
		t.Fatalf("Update(0) failed: %v", err)
	}

	deleted, err := svc.Delete(ctx, 0)
	if err != nil {
		t.Fatalf("Delete(0) failed: %v", err)
	}
	if deleted.DepartmentName != "General Studies" {
		t.Errorf("Delete(0) returned %q, want prior contents", deleted.DepartmentName)
	}

	// A missing negative id still resolves through the store.
	if _, err := svc.GetByID(ctx, -1); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetByID(-1): got %v, want not-found", err)
	}
}

func TestEntityService_ListErrorWrapped(t *testing.T) {
	svc, store := newDepartmentService()
	store.failErr = errors.New("connection refused")

	_, err := svc.List(context.Background())
	if err == nil {
		t.Fatal("List: expected error")
	}
	if !errors.Is(err, store.failErr) {
		t.Errorf("List error does not wrap store error: %v", err)
	}
}
