// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memberRepository implements the domain MemberRepository interface using GORM.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

// FindByUsername retrieves a member by its subject identity.
func (repo *memberRepository) FindByUsername(ctx context.Context, username string) (*entity.Member, error) {
	var memberM model.MemberModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by username")
	}

	return toMemberDomain(&memberM), nil
}

// ExistsByUsername reports whether a member already owns the subject identity.
func (repo *memberRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count members by username")
	}

	return count > 0, nil
}

// Save inserts a new member or updates an existing one.
func (repo *memberRepository) Save(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if member.ID == uuid.Nil {
		if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrEmailDuplicate.WrapMessage("username already exists")
			}
			if isNotNullConstraintViolation(err) {
				return domainerrors.NewDatabaseExecuteError(err, "missing required member information")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
		}
	} else {
		if err := repo.db.WithContext(ctx).Save(memberM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update member")
		}
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

func toMemberDomain(memberM *model.MemberModel) *entity.Member {
	return &entity.Member{
		ID:           memberM.ID,
		Username:     memberM.Username,
		PasswordHash: memberM.Password,
		Email:        memberM.Email,
		Nickname:     memberM.Nickname,
		Introduction: memberM.Introduction,
		ProfileImg:   memberM.ProfileImg,
		Role:         entity.Role(memberM.Role),
		Provider:     entity.Provider(memberM.Sns),
		CreatedAt:    memberM.CreatedAt,
		UpdatedAt:    memberM.UpdatedAt,
	}
}

func fromMemberDomain(member *entity.Member) *model.MemberModel {
	return &model.MemberModel{
		ID:           member.ID,
		Username:     member.Username,
		Password:     member.PasswordHash,
		Email:        member.Email,
		Nickname:     member.Nickname,
		Introduction: member.Introduction,
		ProfileImg:   member.ProfileImg,
		Role:         member.Role.String(),
		Sns:          member.Provider.String(),
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
}
