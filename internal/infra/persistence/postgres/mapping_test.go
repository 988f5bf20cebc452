package postgres

import (
	"testing"
	"time"

	"studylink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMemberMapping_RoundTripKeepsProviderAndRole(t *testing.T) {
	member := &entity.Member{
		ID:           uuid.New(),
		Username:     "4012345678",
		PasswordHash: "$2a$10$hash",
		Email:        "",
		Nickname:     "카카오",
		ProfileImg:   "http://k.kakaocdn.net/img.jpg",
		Role:         entity.RoleMember,
		Provider:     entity.ProviderKakao,
		CreatedAt:    time.Unix(1700000000, 0),
	}

	memberM := fromMemberDomain(member)
	assert.Equal(t, "KAKAO", memberM.Sns)
	assert.Equal(t, "MEMBER", memberM.Role)
	assert.Equal(t, member.PasswordHash, memberM.Password)

	assert.Equal(t, member, toMemberDomain(memberM))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `종로\%구\_`, escapeLike("종로%구_"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, "청운동", escapeLike("청운동"))
}

func TestConstraintViolationDetection(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_members_username" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "nickname" violates not-null constraint (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
