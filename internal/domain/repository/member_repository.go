// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"studylink/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrMemberNotFound is returned when no member owns the requested subject.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines the persistence operations on members.
type MemberRepository interface {
	// FindByUsername retrieves the member owning the subject identity.
	FindByUsername(ctx context.Context, username string) (*entity.Member, error)

	// ExistsByUsername reports whether the subject identity is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Save creates the member when its ID is zero and updates it otherwise.
	Save(ctx context.Context, member *entity.Member) error
}
