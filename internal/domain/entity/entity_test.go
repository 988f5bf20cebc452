package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	tests := []struct {
		id      string
		want    Provider
		wantErr bool
	}{
		{id: "google", want: ProviderGoogle},
		{id: "KAKAO", want: ProviderKakao},
		{id: " Kakao ", want: ProviderKakao},
		{id: "none", wantErr: true},
		{id: "naver", wantErr: true},
		{id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseProvider(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedProvider))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrincipal_Authorities(t *testing.T) {
	member := NewPrincipal("a@x.com", RoleMember)
	assert.Equal(t, Authorities{"ROLE_MEMBER"}, member.Authorities)
	assert.True(t, member.HasRole(RoleMember))
	assert.False(t, member.HasRole(RoleAdmin))

	admin := NewPrincipal("root@x.com", RoleAdmin)
	assert.True(t, admin.HasRole(RoleAdmin))

	role, ok := Authorities{"SCOPE_read", "ROLE_ADMIN"}.Role()
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = Authorities{"ROLE_GUEST"}.Role()
	assert.False(t, ok)
}

func TestNewRegion(t *testing.T) {
	region := NewRegion("서울특별시", "종로구", "청운동")
	assert.Equal(t, "서울특별시 종로구 청운동", region.FullName)

	sejong := NewRegion("세종특별자치시", "", "조치원읍")
	assert.Equal(t, "세종특별자치시 조치원읍", sejong.FullName)
}
