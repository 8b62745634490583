package normalizer

import (
	"errors"
	"fmt"

	"vsnorm/internal/models"
)

// Validation errors for unified records.
var (
	ErrImageCountMismatch = errors.New("image_count does not match number of images")
	ErrHasImagesMismatch  = errors.New("has_images does not match image_count")
	ErrNilImages          = errors.New("images must not be null")
	ErrNilTags            = errors.New("tags must not be null")
)

// Validator checks the invariants every unified record must hold.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate reports the first invariant rec breaks.
func (v *Validator) Validate(rec models.UnifiedRecord) error {
	if rec.Images == nil {
		return ErrNilImages
	}

	if rec.Tags == nil {
		return ErrNilTags
	}

	if rec.ImageCount != len(rec.Images) {
		return fmt.Errorf("%w: image_count=%d, images=%d", ErrImageCountMismatch, rec.ImageCount, len(rec.Images))
	}

	if rec.HasImages != (rec.ImageCount > 0) {
		return fmt.Errorf("%w: has_images=%t, image_count=%d", ErrHasImagesMismatch, rec.HasImages, rec.ImageCount)
	}

	return nil
}
