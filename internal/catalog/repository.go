package catalog

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/printarts/printrec/internal/domain"
	"gorm.io/gorm"
)

// ListFilter narrows List results. Search matches a name substring, Category
// matches exactly; both are optional.
type ListFilter struct {
	Search   string
	Category string
}

// ProductRepository handles database operations for catalog products.
type ProductRepository interface {
	// Create inserts a new product and assigns its id
	Create(ctx context.Context, p *domain.Product) error

	// GetByID retrieves a product by id
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List retrieves products matching the filter, in id order
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)

	// Update replaces the full record except the image slots
	Update(ctx context.Context, p *domain.Product) error

	// Delete removes the row only; stored files are not reclaimed here
	Delete(ctx context.Context, id int64) error

	// Categories returns the distinct category values, sorted
	Categories(ctx context.Context) ([]string, error)

	// Count returns the number of stored products
	Count(ctx context.Context) (int64, error)

	// SetImageColumn writes one image slot column; nil clears the slot
	SetImageColumn(ctx context.Context, id int64, column string, filename *string) error
}

// updatableColumns are the fields replaced by Update. Image slots are managed
// through SetImageColumn only, a record replace never touches them.
var updatableColumns = []string{
	"name", "category", "material",
	"screen_printing", "uv_printing", "offset_printing", "digital_printing",
	"laser_engraving", "dtg_dtf", "embroidery", "sublimation",
	"production_time", "updated_at",
}

// GormProductRepository is the GORM implementation of ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "product %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) List(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	db := r.db.WithContext(ctx).Model(&domain.Product{})
	if q := strings.TrimSpace(filter.Search); q != "" {
		if strings.EqualFold(db.Name(), "postgres") {
			db = db.Where("name ILIKE ?", "%"+q+"%")
		} else {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		db = db.Where("category = ?", c)
	}

	var rows []domain.Product
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormProductRepository) Update(ctx context.Context, p *domain.Product) error {
	if _, err := r.GetByID(ctx, p.ID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", p.ID).
		Select(updatableColumns).
		Updates(p).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error
	return total, err
}

func (r *GormProductRepository) SetImageColumn(ctx context.Context, id int64, column string, filename *string) error {
	if !imageColumns[column] {
		return errors.Wrapf(ErrInvalidInput, "unknown image column %q", column)
	}
	return r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Update(column, filename).Error
}

var imageColumns = map[string]bool{
	"image":                  true,
	"screen_printing_image":  true,
	"uv_printing_image":      true,
	"offset_printing_image":  true,
	"digital_printing_image": true,
	"laser_engraving_image":  true,
	"dtg_dtf_image":          true,
	"embroidery_image":       true,
	"sublimation_image":      true,
}
