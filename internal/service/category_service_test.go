package service

import (
	"errors"
	"testing"

	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

func TestCategoryTreeNestingAndCounts(t *testing.T) {
	db := setupDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	electronics := seedCategory(t, db, "Electronics", nil)
	phones := seedCategory(t, db, "Phones", &electronics.ID)
	seedCategory(t, db, "Household", nil)
	seedSupplier(t, db, "TechTrade", "Tashkent", *electronics, *phones)
	seedSupplier(t, db, "GadgetHub", "Bukhara", *phones)

	tree, err := svc.Tree()
	if err != nil {
		t.Fatalf("build tree: %v", err)
	}
	if len(tree) != 2 {
		t.Fatalf("want 2 roots, got %d", len(tree))
	}

	var electronicsNode *CategoryNode
	for _, root := range tree {
		if root.ID == electronics.ID {
			electronicsNode = root
		}
	}
	if electronicsNode == nil {
		t.Fatal("electronics root missing")
	}
	if len(electronicsNode.Children) != 1 || electronicsNode.Children[0].ID != phones.ID {
		t.Fatalf("phones not nested under electronics: %+v", electronicsNode.Children)
	}
	if electronicsNode.SuppliersCount != 1 {
		t.Fatalf("electronics suppliers_count: want 1, got %d", electronicsNode.SuppliersCount)
	}
	if electronicsNode.Children[0].SuppliersCount != 2 {
		t.Fatalf("phones suppliers_count: want 2, got %d", electronicsNode.Children[0].SuppliersCount)
	}
}

func TestCategoryCycleRejected(t *testing.T) {
	db := setupDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	a := seedCategory(t, db, "A", nil)
	b := seedCategory(t, db, "B", &a.ID)
	c := seedCategory(t, db, "C", &b.ID)

	// self-parent
	if err := svc.Update(&models.Category{ID: a.ID, Name: "A", ParentID: &a.ID}); !errors.Is(err, ErrCategoryCycle) {
		t.Fatalf("self-parent: want ErrCategoryCycle, got %v", err)
	}
	// re-parenting A under its grandchild closes a loop
	if err := svc.Update(&models.Category{ID: a.ID, Name: "A", ParentID: &c.ID}); !errors.Is(err, ErrCategoryCycle) {
		t.Fatalf("loop via grandchild: want ErrCategoryCycle, got %v", err)
	}
	// a legal move still works
	if err := svc.Update(&models.Category{ID: c.ID, Name: "C", ParentID: &a.ID}); err != nil {
		t.Fatalf("legal re-parent: %v", err)
	}
}

func TestCategoryDeleteOrphansChildren(t *testing.T) {
	db := setupDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	parent := seedCategory(t, db, "Parent", nil)
	child := seedCategory(t, db, "Child", &parent.ID)

	if err := svc.Delete(parent.ID); err != nil {
		t.Fatalf("delete parent: %v", err)
	}

	var got models.Category
	if err := db.First(&got, child.ID).Error; err != nil {
		t.Fatalf("reload child: %v", err)
	}
	if got.ParentID != nil {
		t.Fatalf("child still points at deleted parent: %v", *got.ParentID)
	}
}

func TestCategoryCreateValidatesParent(t *testing.T) {
	db := setupDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	missing := uint(999)
	err := svc.Create(&models.Category{Name: "Orphan", ParentID: &missing})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("want ErrCategoryNotFound, got %v", err)
	}
}
