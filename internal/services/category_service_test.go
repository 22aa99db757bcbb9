package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/scanventory/scanventory-backend/internal/testutil"
)

func newCategoryService() (*CategoryService, *testutil.MemoryCategoryStore, *testutil.MemoryProductStore) {
	categories := testutil.NewMemoryCategoryStore()
	products := testutil.NewMemoryProductStore()
	return NewCategoryService(categories, products), categories, products
}

func TestCreateCategoryTrimsName(t *testing.T) {
	svc, _, _ := newCategoryService()

	category, err := svc.Create("  Electronics  ")
	require.NoError(t, err)
	require.Equal(t, "Electronics", category.Name)
}

func TestCreateCategoryValidation(t *testing.T) {
	svc, _, _ := newCategoryService()

	_, err := svc.Create("   ")
	require.ErrorIs(t, err, ErrCategoryNameRequired)

	_, err = svc.Create(strings.Repeat("x", 101))
	require.Error(t, err)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	svc, categories, _ := newCategoryService()

	_, err := svc.Create("Electronics")
	require.NoError(t, err)

	_, err = svc.Create("Electronics")
	require.ErrorIs(t, err, ErrCategoryExists)
	require.Len(t, categories.Categories, 1)
}

func TestListCategoriesByNameAscending(t *testing.T) {
	svc, _, _ := newCategoryService()

	for _, name := range []string{"Stock Out", "In Stock", "Uncategorized"} {
		_, err := svc.Create(name)
		require.NoError(t, err)
	}

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "In Stock", list[0].Name)
	require.Equal(t, "Stock Out", list[1].Name)
	require.Equal(t, "Uncategorized", list[2].Name)
}

func TestGetCategoryByID(t *testing.T) {
	svc, _, _ := newCategoryService()

	_, err := svc.GetByID(uuid.New())
	require.ErrorIs(t, err, ErrCategoryNotFound)

	created, err := svc.Create("Electronics")
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Name, fetched.Name)
}

func TestDeleteCategoryBlockedWhileInUse(t *testing.T) {
	svc, _, products := newCategoryService()

	category, err := svc.Create("Electronics")
	require.NoError(t, err)

	product := seedProduct(products, 1, "B1", "widget", "Electronics", time.Now())

	_, err = svc.Delete(category.ID)
	require.ErrorIs(t, err, ErrCategoryInUse)

	// Once nothing references the name anymore, delete goes through.
	require.NoError(t, products.Delete(product.ID))

	deleted, err := svc.Delete(category.ID)
	require.NoError(t, err)
	require.Equal(t, "Electronics", deleted.Name)

	list, err := svc.List()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc, _, _ := newCategoryService()

	_, err := svc.Delete(uuid.New())
	require.ErrorIs(t, err, ErrCategoryNotFound)
}
