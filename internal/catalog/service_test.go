package catalog

import (
	"testing"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	s := NewService(Seed())

	assert.Equal(t, 8, s.TotalProducts())
	assert.Equal(t, []string{"Oils", "Sweeteners", "Spices", "Health Mixes", "Grains", "Dairy"}, s.Categories())
	assert.Equal(t, 6, s.TotalCategories())

	p, err := s.Get("cold-pressed-sesame-oil")
	require.NoError(t, err)
	assert.Equal(t, "Oils", p.Category)
	assert.True(t, p.IsOrganic)
}

func TestAdd(t *testing.T) {
	s := NewService(nil)

	p, err := s.Add(models.Product{Name: "Forest Honey", Price: 350, Rating: 4.8, Category: "Honey"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Forest Honey", got.Name)
}

func TestAdd_Validation(t *testing.T) {
	s := NewService(nil)

	_, err := s.Add(models.Product{Price: 100, Rating: 4})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Add(models.Product{Name: "x", Price: 0, Rating: 4})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Add(models.Product{Name: "x", Price: 100, Rating: 0})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Add(models.Product{Name: "x", Price: 100, Rating: 5.5})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAdd_DuplicateID(t *testing.T) {
	s := NewService(Seed())

	_, err := s.Add(models.Product{ID: "country-sugar", Name: "x", Price: 1, Rating: 4})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 8, s.TotalProducts())
}

func TestUpdate(t *testing.T) {
	s := NewService(Seed())

	price := 299.0
	name := "Sesame Oil 1L"
	p, err := s.Update("cold-pressed-sesame-oil", models.ProductUpdate{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Sesame Oil 1L", p.Name)
	assert.Equal(t, 299.0, p.Price)

	// untouched fields survive the merge
	assert.Equal(t, "Oils", p.Category)

	got, err := s.Get("cold-pressed-sesame-oil")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestUpdate_RejectsInvalidResult(t *testing.T) {
	s := NewService(Seed())

	bad := -1.0
	_, err := s.Update("cold-pressed-sesame-oil", models.ProductUpdate{Price: &bad})
	assert.ErrorIs(t, err, common.ErrValidation)

	// the stored product is unchanged
	p, err := s.Get("cold-pressed-sesame-oil")
	require.NoError(t, err)
	assert.Positive(t, p.Price)
}

func TestUpdate_UnknownProduct(t *testing.T) {
	s := NewService(nil)

	name := "x"
	_, err := s.Update("missing", models.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := NewService(Seed())

	require.NoError(t, s.Delete("country-sugar"))
	assert.Equal(t, 7, s.TotalProducts())

	_, err := s.Get("country-sugar")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, s.Delete("country-sugar"), common.ErrNotFound)
}

func TestByCategory(t *testing.T) {
	s := NewService(Seed())

	oils := s.ByCategory("Oils")
	require.Len(t, oils, 1)
	assert.Equal(t, "cold-pressed-sesame-oil", oils[0].ID)

	assert.Empty(t, s.ByCategory("Nope"))
	assert.Len(t, s.ByCategory(""), 8)
}

func TestCategories_InsertionOrderAfterMutation(t *testing.T) {
	s := NewService(nil)

	_, err := s.Add(models.Product{Name: "a", Price: 1, Rating: 4, Category: "Oils"})
	require.NoError(t, err)
	_, err = s.Add(models.Product{Name: "b", Price: 1, Rating: 4, Category: "Honey"})
	require.NoError(t, err)
	_, err = s.Add(models.Product{Name: "c", Price: 1, Rating: 4, Category: "Oils"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Oils", "Honey"}, s.Categories())
}

func TestProducts_ReturnsCopy(t *testing.T) {
	s := NewService(Seed())

	products := s.Products()
	products[0].Name = "mutated"

	p, err := s.Get(s.Products()[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", p.Name)
}

func TestSubscribe_NotifiedOnMutation(t *testing.T) {
	s := NewService(nil)

	var calls int
	s.Subscribe(func() { calls++ })

	p, err := s.Add(models.Product{Name: "a", Price: 1, Rating: 4})
	require.NoError(t, err)

	name := "b"
	_, err = s.Update(p.ID, models.ProductUpdate{Name: &name})
	require.NoError(t, err)

	require.NoError(t, s.Delete(p.ID))
	assert.Equal(t, 3, calls)
}
