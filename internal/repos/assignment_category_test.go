package repos

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// newTestDB opens a per-test in-memory database. The schema is created by
// hand because the production DDL relies on postgres defaults.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	ddl := []string{
		`CREATE TABLE assignment_category (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			sub_title TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE assignment_sub_category (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			system_prompt TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE assignment_category_sub_category (
			category_id TEXT NOT NULL,
			sub_category_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (category_id, sub_category_id)
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB) (AssignmentCategoryRepo, *types.AssignmentCategory, []*types.AssignmentSubCategory) {
	t.Helper()
	log := testLogger()
	categoryRepo := NewAssignmentCategoryRepo(db, log)
	subRepo := NewAssignmentSubCategoryRepo(db, log)
	ctx := context.Background()

	category := &types.AssignmentCategory{ID: uuid.New(), Title: "Essay", SubTitle: "Persuasive"}
	if _, err := categoryRepo.Create(ctx, nil, []*types.AssignmentCategory{category}); err != nil {
		t.Fatalf("create category: %v", err)
	}

	subs := []*types.AssignmentSubCategory{
		{ID: uuid.New(), Title: "Thesis", Description: "claim", SystemPrompt: "p1"},
		{ID: uuid.New(), Title: "Evidence", Description: "sources", SystemPrompt: "p2"},
		{ID: uuid.New(), Title: "Structure", Description: "layout", SystemPrompt: "p3"},
	}
	if _, err := subRepo.Create(ctx, nil, subs); err != nil {
		t.Fatalf("create sub-categories: %v", err)
	}

	return categoryRepo, category, subs
}

func TestGetByIDWithSubCategoriesMissing(t *testing.T) {
	db := newTestDB(t)
	categoryRepo, _, _ := seedCategory(t, db)

	got, err := categoryRepo.GetByIDWithSubCategories(context.Background(), nil, uuid.New())
	if err != nil {
		t.Fatalf("missing category must not error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for a missing category, got %+v", got)
	}
}

func TestGetByIDWithSubCategoriesOrder(t *testing.T) {
	db := newTestDB(t)
	categoryRepo, category, subs := seedCategory(t, db)
	ctx := context.Background()

	// Link in an order different from insertion order.
	order := []uuid.UUID{subs[2].ID, subs[0].ID, subs[1].ID}
	if err := categoryRepo.ReplaceSubCategories(ctx, nil, category.ID, order); err != nil {
		t.Fatalf("replace sub-categories: %v", err)
	}

	got, err := categoryRepo.GetByIDWithSubCategories(ctx, nil, category.ID)
	if err != nil {
		t.Fatalf("load category: %v", err)
	}
	if got == nil {
		t.Fatalf("category not found")
	}
	if len(got.SubCategories) != len(order) {
		t.Fatalf("expected %d sub-categories, got %d", len(order), len(got.SubCategories))
	}
	for i, wantID := range order {
		if got.SubCategories[i].ID != wantID {
			t.Fatalf("position %d: got %s, want %s", i, got.SubCategories[i].ID, wantID)
		}
	}
}

func TestReplaceSubCategoriesRewritesOrder(t *testing.T) {
	db := newTestDB(t)
	categoryRepo, category, subs := seedCategory(t, db)
	ctx := context.Background()

	first := []uuid.UUID{subs[0].ID, subs[1].ID, subs[2].ID}
	if err := categoryRepo.ReplaceSubCategories(ctx, nil, category.ID, first); err != nil {
		t.Fatalf("initial replace: %v", err)
	}

	reordered := []uuid.UUID{subs[1].ID, subs[2].ID}
	if err := categoryRepo.ReplaceSubCategories(ctx, nil, category.ID, reordered); err != nil {
		t.Fatalf("reorder replace: %v", err)
	}

	got, err := categoryRepo.GetByIDWithSubCategories(ctx, nil, category.ID)
	if err != nil {
		t.Fatalf("load category: %v", err)
	}
	if len(got.SubCategories) != 2 {
		t.Fatalf("expected dropped link to disappear, got %d sub-categories", len(got.SubCategories))
	}
	if got.SubCategories[0].ID != subs[1].ID || got.SubCategories[1].ID != subs[2].ID {
		t.Fatalf("reordered links not reflected: %s, %s", got.SubCategories[0].ID, got.SubCategories[1].ID)
	}
}

func TestReplaceSubCategoriesEmptyClearsLinks(t *testing.T) {
	db := newTestDB(t)
	categoryRepo, category, subs := seedCategory(t, db)
	ctx := context.Background()

	if err := categoryRepo.ReplaceSubCategories(ctx, nil, category.ID, []uuid.UUID{subs[0].ID}); err != nil {
		t.Fatalf("initial replace: %v", err)
	}
	if err := categoryRepo.ReplaceSubCategories(ctx, nil, category.ID, nil); err != nil {
		t.Fatalf("clearing replace: %v", err)
	}

	got, err := categoryRepo.GetByIDWithSubCategories(ctx, nil, category.ID)
	if err != nil {
		t.Fatalf("load category: %v", err)
	}
	if len(got.SubCategories) != 0 {
		t.Fatalf("expected no links, got %d", len(got.SubCategories))
	}
}
