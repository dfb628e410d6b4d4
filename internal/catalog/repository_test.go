package catalog

import (
	"context"
	"testing"

	"github.com/printarts/printrec/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *GormProductRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return NewGormProductRepository(db)
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := &domain.Product{
		Name:           "Pen (Metal type)",
		Category:       "Writing",
		Material:       "Metal",
		ScreenPrinting: "1",
		UvPrinting:     "2 (Prices may vary)",
		OffsetPrinting: "NA",
		LaserEngraving: "Engraved finish",
		Sublimation:    "Multi",
		ProductionTime: "Screen Printing (Qty 100–500) = 4 working days\nUV Printing (Qty 50) = 4 working days",
	}
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	// No lossy transform on write: the raw method fields come back verbatim.
	assert.Equal(t, p.ScreenPrinting, got.ScreenPrinting)
	assert.Equal(t, p.UvPrinting, got.UvPrinting)
	assert.Equal(t, p.OffsetPrinting, got.OffsetPrinting)
	assert.Equal(t, p.DigitalPrinting, got.DigitalPrinting)
	assert.Equal(t, p.LaserEngraving, got.LaserEngraving)
	assert.Equal(t, p.DtgDtf, got.DtgDtf)
	assert.Equal(t, p.Embroidery, got.Embroidery)
	assert.Equal(t, p.Sublimation, got.Sublimation)
	assert.Equal(t, p.ProductionTime, got.ProductionTime)
	assert.Nil(t, got.Image)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []domain.Product{
		{Name: "Pen (Metal type)", Category: "Writing"},
		{Name: "Mug (Ceramic)", Category: "Drinkware"},
		{Name: "Mug (Steel)", Category: "Drinkware"},
		{Name: "Tote Bag (Cloth)", Category: "Bags"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	tests := []struct {
		name      string
		filter    ListFilter
		wantNames []string
	}{
		{
			name:      "no filter returns everything in id order",
			filter:    ListFilter{},
			wantNames: []string{"Pen (Metal type)", "Mug (Ceramic)", "Mug (Steel)", "Tote Bag (Cloth)"},
		},
		{
			name:      "name substring filter",
			filter:    ListFilter{Search: "mug"},
			wantNames: []string{"Mug (Ceramic)", "Mug (Steel)"},
		},
		{
			name:      "exact category filter",
			filter:    ListFilter{Category: "Drinkware"},
			wantNames: []string{"Mug (Ceramic)", "Mug (Steel)"},
		},
		{
			name:      "combined filters",
			filter:    ListFilter{Search: "Steel", Category: "Drinkware"},
			wantNames: []string{"Mug (Steel)"},
		},
		{
			name:      "category is matched exactly, not by substring",
			filter:    ListFilter{Category: "Drink"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			names := make([]string, 0, len(rows))
			for _, r := range rows {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestUpdateReplacesRecordButKeepsImages(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := &domain.Product{Name: "Keychain", Category: "Accessories", ScreenPrinting: "1"}
	require.NoError(t, repo.Create(ctx, p))

	img := "product_1_a1b2c3d4.png"
	require.NoError(t, repo.SetImageColumn(ctx, p.ID, "image", &img))

	p.Name = "Keychain (Metal)"
	p.ScreenPrinting = "NA"
	p.LaserEngraving = "Engraved finish"
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keychain (Metal)", got.Name)
	assert.Equal(t, "NA", got.ScreenPrinting)
	assert.Equal(t, "Engraved finish", got.LaserEngraving)
	// Update never touches image slots.
	require.NotNil(t, got.Image)
	assert.Equal(t, img, *got.Image)
}

func TestUpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Update(context.Background(), &domain.Product{ID: 424242, Name: "x", Category: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := &domain.Product{Name: "Stress Ball", Category: "Novelty"}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrNotFound)
}

func TestCategories(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, p := range []domain.Product{
		{Name: "Pen", Category: "Writing"},
		{Name: "Mug", Category: "Drinkware"},
		{Name: "Bottle", Category: "Drinkware"},
		{Name: "Tote", Category: "Bags"},
	} {
		pp := p
		require.NoError(t, repo.Create(ctx, &pp))
	}

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bags", "Drinkware", "Writing"}, categories)
}

func TestSetImageColumnRejectsUnknownColumn(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.SetImageColumn(context.Background(), 1, "name", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
