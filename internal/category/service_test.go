package category

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/adeyemi/task-manager-api/internal/models"
)

// fakeStore emulates the store contract, including the (user, name)
// unique constraint and ownership-scoped lookups.
type fakeStore struct {
	categories map[string]*models.TaskCategory
	nextID     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{categories: map[string]*models.TaskCategory{}}
}

func (f *fakeStore) CreateCategory(ctx context.Context, userID, name string) (*models.TaskCategory, error) {
	for _, c := range f.categories {
		if c.UserID == userID && c.Name == name {
			return nil, apperr.AlreadyExists("category already exists")
		}
	}
	f.nextID++
	c := &models.TaskCategory{
		ID:        fmt.Sprintf("cat-%d", f.nextID),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.categories[c.ID] = c
	return c, nil
}

func (f *fakeStore) ListCategories(ctx context.Context, userID string, filter models.CategoryFilter) ([]models.TaskCategory, error) {
	var out []models.TaskCategory
	for _, c := range f.categories {
		if c.UserID != userID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeStore) GetCategoryByID(ctx context.Context, id, userID string) (*models.TaskCategory, error) {
	c := f.categories[id]
	if c == nil || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeStore) UpdateCategory(ctx context.Context, id, userID, name string) (*models.TaskCategory, error) {
	c := f.categories[id]
	if c == nil || c.UserID != userID {
		return nil, nil
	}
	for _, other := range f.categories {
		if other.ID != id && other.UserID == userID && other.Name == name {
			return nil, apperr.AlreadyExists("category already exists")
		}
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return c, nil
}

func (f *fakeStore) DeleteCategory(ctx context.Context, id, userID string) (bool, error) {
	c := f.categories[id]
	if c == nil || c.UserID != userID {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc := NewService(newFakeStore())
	user := &models.User{ID: "u1"}

	if _, err := svc.Create(context.Background(), user, models.CategoryRequest{Name: "work"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := svc.Create(context.Background(), user, models.CategoryRequest{Name: "work"})
	if apperr.From(err).Kind != apperr.KindAlreadyExists {
		t.Fatalf("kind = %v, want already exists", apperr.From(err).Kind)
	}

	// The same name is free for a different user.
	if _, err := svc.Create(context.Background(), &models.User{ID: "u2"}, models.CategoryRequest{Name: "work"}); err != nil {
		t.Fatalf("Create() for second user error = %v", err)
	}
}

func TestListIsScopedAndFiltered(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	u1 := &models.User{ID: "u1"}
	u2 := &models.User{ID: "u2"}

	for _, name := range []string{"Work", "home", "workout"} {
		if _, err := svc.Create(context.Background(), u1, models.CategoryRequest{Name: name}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}
	if _, err := svc.Create(context.Background(), u2, models.CategoryRequest{Name: "worship"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Case-insensitive substring match, scoped to u1.
	got, err := svc.List(context.Background(), u1, models.CategoryFilter{Name: "wor"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d categories, want 2 (Work, workout)", len(got))
	}

	// No matches yields an empty slice, not null.
	got, err = svc.List(context.Background(), u1, models.CategoryFilter{Name: "zzz"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil {
		t.Fatal("List() must return an empty slice, not nil")
	}
}

func TestScopedLookupsHideForeignCategories(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	owner := &models.User{ID: "u1"}
	intruder := &models.User{ID: "u2"}

	created, err := svc.Create(context.Background(), owner, models.CategoryRequest{Name: "work"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.GetByID(context.Background(), created.ID, intruder); apperr.From(err).Kind != apperr.KindNotFound {
		t.Fatalf("GetByID kind = %v, want not found", apperr.From(err).Kind)
	}
	if _, err := svc.Update(context.Background(), created.ID, models.CategoryRequest{Name: "stolen"}, intruder); apperr.From(err).Kind != apperr.KindNotFound {
		t.Fatalf("Update kind = %v, want not found", apperr.From(err).Kind)
	}
	if err := svc.Delete(context.Background(), created.ID, intruder); apperr.From(err).Kind != apperr.KindNotFound {
		t.Fatalf("Delete kind = %v, want not found", apperr.From(err).Kind)
	}

	// The owner still sees it untouched.
	got, err := svc.GetByID(context.Background(), created.ID, owner)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "work" {
		t.Fatalf("name = %q, want work", got.Name)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc := NewService(newFakeStore())
	user := &models.User{ID: "u1"}

	created, err := svc.Create(context.Background(), user, models.CategoryRequest{Name: "work"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, models.CategoryRequest{Name: "office"}, user)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "office" {
		t.Fatalf("name = %q, want office", updated.Name)
	}

	if err := svc.Delete(context.Background(), created.ID, user); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, user); apperr.From(err).Kind != apperr.KindNotFound {
		t.Fatalf("second Delete kind = %v, want not found", apperr.From(err).Kind)
	}
}
