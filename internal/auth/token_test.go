package auth

import (
	"testing"
	"time"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test_secret", time.Hour)

	orgID := uuid.New()
	supervisorID := uuid.New()
	user := &model.User{
		ID:           uuid.New(),
		Email:        "rep@example.com",
		Role:         model.RoleSalesperson,
		OrgID:        &orgID,
		SupervisorID: &supervisorID,
	}

	token, err := tm.Generate(user)
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)

	identity, err := claims.Identity()
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, model.RoleSalesperson, identity.Role)
	require.NotNil(t, identity.OrgID)
	assert.Equal(t, orgID, *identity.OrgID)
	require.NotNil(t, identity.SupervisorID)
	assert.Equal(t, supervisorID, *identity.SupervisorID)
	assert.Nil(t, identity.AdminID)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("test_secret", time.Hour)
	other := NewTokenManager("other_secret", time.Hour)

	token, err := tm.Generate(&model.User{ID: uuid.New(), Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test_secret", -time.Minute)

	token, err := tm.Generate(&model.User{ID: uuid.New(), Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestGeneratedSecrets(t *testing.T) {
	otp, err := GenerateOTP()
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}

	password, err := GeneratePassword(12)
	require.NoError(t, err)
	assert.Len(t, password, 12)
}
