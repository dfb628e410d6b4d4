package catalog

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/printarts/printrec/internal/domain"
	"github.com/printarts/printrec/internal/recommend"
	"github.com/printarts/printrec/internal/storage"
)

// ImageSlot is one image association target: the product's own image or one
// method's image.
type ImageSlot struct {
	Key    string
	Column string
}

// ProductImageSlot addresses the product's own image. It is reached through a
// key-less path and is not a valid method key.
var ProductImageSlot = ImageSlot{Key: "product", Column: "image"}

// ResolveMethodSlot maps a method key to its image slot. Unknown keys and the
// key-less product slot are rejected.
func ResolveMethodSlot(key string) (ImageSlot, error) {
	if _, ok := recommend.LookupKey(key); !ok {
		return ImageSlot{}, errors.Wrapf(ErrInvalidInput, "invalid method key: %s", key)
	}
	return ImageSlot{Key: key, Column: key + "_image"}, nil
}

func (s ImageSlot) current(p *domain.Product) *string {
	if s.Column == "image" {
		return p.Image
	}
	img, _ := p.MethodImage(s.Key)
	return img
}

func (s ImageSlot) prefix(productID int64) string {
	if s.Column == "image" {
		return fmt.Sprintf("product_%d", productID)
	}
	return fmt.Sprintf("p%d_%s", productID, s.Key)
}

// ImageService manages the image slot associations of products. Upload
// replaces the slot: the new blob is written first, then the prior file is
// deleted and the stored filename swapped; the filename swap itself is a
// single transactional column write.
type ImageService struct {
	repo  ProductRepository
	store storage.BlobStore
}

func NewImageService(repo ProductRepository, store storage.BlobStore) *ImageService {
	return &ImageService{repo: repo, store: store}
}

// Upload validates and stores new image bytes for a slot, returning the new
// filename. No mutation happens on a rejected request.
func (s *ImageService) Upload(ctx context.Context, productID int64, slot ImageSlot, data []byte, contentType string) (string, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}

	filename, err := s.store.Save(data, contentType, slot.prefix(productID))
	if errors.Is(err, storage.ErrBadContentType) || errors.Is(err, storage.ErrTooLarge) {
		return "", errors.Wrap(ErrInvalidInput, err.Error())
	}
	if err != nil {
		return "", err
	}

	if old := slot.current(p); old != nil {
		s.store.Delete(*old)
	}
	if err := s.repo.SetImageColumn(ctx, productID, slot.Column, &filename); err != nil {
		return "", err
	}
	return filename, nil
}

// Remove clears a slot and deletes the associated file. Clearing an already
// empty slot succeeds as a no-op.
func (s *ImageService) Remove(ctx context.Context, productID int64, slot ImageSlot) error {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if old := slot.current(p); old != nil {
		s.store.Delete(*old)
	}
	return s.repo.SetImageColumn(ctx, productID, slot.Column, nil)
}
