package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/scanventory/scanventory-backend/internal/dto"
	"github.com/scanventory/scanventory-backend/internal/models"
	"github.com/scanventory/scanventory-backend/internal/testutil"
)

func seedProduct(store *testutil.MemoryProductStore, material int64, barcode, description, category string, createdAt time.Time) models.Product {
	p := models.Product{
		ID:          uuid.New(),
		Material:    material,
		Barcode:     barcode,
		Description: description,
		Category:    category,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	store.Seed(p)
	return p
}

func TestCreateDefaultsCategory(t *testing.T) {
	store := testutil.NewMemoryProductStore()
	svc := NewProductService(store)

	product, err := svc.Create(&dto.CreateProductRequest{
		Material:    1001,
		Barcode:     " 4006381333931 ",
		Description: "Stabilo pen",
	})
	require.NoError(t, err)
	require.Equal(t, DefaultCategory, product.Category)
	require.Equal(t, "4006381333931", product.Barcode)

	// Round-trip: fetching by id returns the same record.
	fetched, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, product.Material, fetched.Material)
	require.Equal(t, product.Barcode, fetched.Barcode)
	require.Equal(t, product.Description, fetched.Description)
	require.Equal(t, product.Category, fetched.Category)
}

func TestCreateRejectsCollisions(t *testing.T) {
	store := testutil.NewMemoryProductStore()
	svc := NewProductService(store)

	_, err := svc.Create(&dto.CreateProductRequest{
		Material: 1001, Barcode: "4006381333931", Description: "Stabilo pen",
	})
	require.NoError(t, err)

	// Same material, different barcode.
	_, err = svc.Create(&dto.CreateProductRequest{
		Material: 1001, Barcode: "0000000000000", Description: "Other",
	})
	require.ErrorIs(t, err, ErrProductExists)

	// Same barcode, different material.
	_, err = svc.Create(&dto.CreateProductRequest{
		Material: 2002, Barcode: "4006381333931", Description: "Other",
	})
	require.ErrorIs(t, err, ErrProductExists)

	// Neither collision persisted anything.
	require.Len(t, store.Products, 1)
}

func TestCreateValidation(t *testing.T) {
	svc := NewProductService(testutil.NewMemoryProductStore())

	_, err := svc.Create(&dto.CreateProductRequest{Barcode: "b", Description: "d"})
	require.Error(t, err)

	_, err = svc.Create(&dto.CreateProductRequest{Material: 1, Description: "d"})
	require.Error(t, err)

	_, err = svc.Create(&dto.CreateProductRequest{Material: 1, Barcode: "b"})
	require.Error(t, err)

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'x'
	}
	_, err = svc.Create(&dto.CreateProductRequest{Material: 1, Barcode: "b", Description: string(long)})
	require.Error(t, err)
}

func TestListFiltersByExactCategory(t *testing.T) {
	store := testutil.NewMemoryProductStore()
	svc := NewProductService(store)
	now := time.Now()

	seedProduct(store, 1, "A1", "first", "In Stock", now.Add(-2*time.Hour))
	seedProduct(store, 2, "A2", "second", "In Stock", now.Add(-1*time.Hour))
	seedProduct(store, 3, "A3", "third", "Stock Out", now)

	inStock, err := svc.List("In Stock")
	require.NoError(t, err)
	require.Len(t, inStock, 2)
	// Newest first.
	require.Equal(t, int64(2), inStock[0].Material)
	require.Equal(t, int64(1), inStock[1].Material)

	all, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, int64(3), all[0].Material)
}

func TestSearchNumericIsExactMaterialMatch(t *testing.T) {
	store := testutil.NewMemoryProductStore()
	svc := NewProductService(store)
	now := time.Now()

	seedProduct(store, 42, "ABC-42", "the answer", "Uncategorized", now.Add(-time.Hour))
	seedProduct(store, 7, "42420042", "contains 42 in barcode", "Uncategorized", now)

	results, err := svc.Search("42")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, int64(42), results[0].Material)
}

func TestSearchAllDigitBarcodeIsNeverSubstringMatched(t *testing.T) {
	store := testutil.NewMemoryProductStore()
	svc := NewProductService(store)

	seedProduct(store, 7, "4242424242", "digit-only barcode", "Uncategorized", time.Now())

	// The full barcode parses as a number, which routes the query to an exact
	// material lookup and misses. Long-standing behaviour of the scanner
	// client; keep it.
	results, err := svc.Search("4242424242")
	require.NoError(t, err)
	require.Empty(t, results)

	// A non-numeric query still finds the product through its description.
	results, err = svc.Search("digit-only")
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestSearchSubstringCaseInsensitiveNewestFirst(t *testing.T) {
	store := testutil.NewMemoryProductStore()
	svc := NewProductService(store)
	now := time.Now()

	seedProduct(store, 1, "EAN-ABC-1", "Blue Widget", "Uncategorized", now.Add(-2*time.Hour))
	seedProduct(store, 2, "EAN-abc-2", "Red widget", "Uncategorized", now.Add(-1*time.Hour))
	seedProduct(store, 3, "EAN-XYZ-3", "WIDGET deluxe", "Uncategorized", now)

	results, err := svc.Search("abc")
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, int64(2), results[0].Material)

	results, err = svc.Search("WiDgEt")
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, int64(3), results[0].Material)
	require.Equal(t, int64(1), results[2].Material)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewProductService(testutil.NewMemoryProductStore())

	_, err := svc.Search("   ")
	require.ErrorIs(t, err, ErrQueryRequired)
}

func TestUpdateCategory(t *testing.T) {
	store := testutil.NewMemoryProductStore()
	svc := NewProductService(store)

	_, err := svc.UpdateCategory(uuid.New(), "In Stock")
	require.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.UpdateCategory(uuid.New(), "  ")
	require.ErrorIs(t, err, ErrCategoryRequired)

	before := time.Now().Add(-time.Hour)
	product := seedProduct(store, 1, "B1", "widget", "Uncategorized", before)

	updated, err := svc.UpdateCategory(product.ID, "In Stock")
	require.NoError(t, err)
	require.Equal(t, "In Stock", updated.Category)
	require.True(t, updated.UpdatedAt.After(before))
}

func TestDelete(t *testing.T) {
	store := testutil.NewMemoryProductStore()
	svc := NewProductService(store)

	require.ErrorIs(t, svc.Delete(uuid.New()), ErrProductNotFound)

	product := seedProduct(store, 1, "B1", "widget", "Uncategorized", time.Now())
	require.NoError(t, svc.Delete(product.ID))

	_, err := svc.GetByID(product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)
}
