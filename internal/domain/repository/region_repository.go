package repository

import (
	"context"

	"studylink/internal/domain/entity"
)

// RegionRepository defines the persistence operations on regions.
type RegionRepository interface {
	// SearchByFullName returns regions whose full name contains the keyword.
	SearchByFullName(ctx context.Context, keyword string) ([]*entity.Region, error)

	// ReplaceAll drops every stored region and inserts the given ones.
	ReplaceAll(ctx context.Context, regions []*entity.Region) error
}
