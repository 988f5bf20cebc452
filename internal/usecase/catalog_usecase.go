package usecase

import (
	"context"
	"io"

	"studylink/internal/domain/entity"
)

// CategoryInput defines the editable fields of a category.
type CategoryInput struct {
	LogoEmoji string
	Name      string
}

// CategoryUsecase defines category lookup and administration.
type CategoryUsecase interface {
	GetAll(ctx context.Context) ([]*entity.Category, error)
	Register(ctx context.Context, input CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id int64, input CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}

// RegionUsecase defines region search and the bulk district import.
type RegionUsecase interface {
	Search(ctx context.Context, keyword string) ([]*entity.Region, error)
	// Import replaces every region with the rows of a district CSV and returns how many were stored.
	Import(ctx context.Context, csv io.Reader) (int, error)
}
