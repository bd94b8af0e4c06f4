package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

const testUserID = "2b1f8c44-9f27-4f4e-9f0a-0f6f0f3b9a11"

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		password := "mySecurePassword123"
		hashed, err := HashPassword(password)

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, password, hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		password := "samePassword"
		hash1, _ := HashPassword(password)
		hash2, _ := HashPassword(password)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	password := "correctPassword"
	hashed, _ := HashPassword(password)

	t.Run("Correct password", func(t *testing.T) {
		assert.True(t, CheckPassword(hashed, password))
	})

	t.Run("Incorrect password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, "wrongPassword"))
	})

	t.Run("Empty password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, ""))
	})
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RolePlayer))
	assert.True(t, ValidRole(RoleHost))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}

func TestGenerateAccessToken(t *testing.T) {
	t.Run("Successfully generate access token", func(t *testing.T) {
		token, err := GenerateAccessToken(testUserID, "user@example.com", RolePlayer, testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := GenerateAccessToken(testUserID, "user@example.com", RolePlayer, "")

		assert.Error(t, err)
		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Empty(t, token)
	})

	t.Run("Token contains correct claims", func(t *testing.T) {
		email := "host@example.com"

		token, err := GenerateAccessToken(testUserID, email, RoleHost, testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		assert.Equal(t, testUserID, claims.UserID)
		assert.Equal(t, email, claims.Email)
		assert.Equal(t, RoleHost, claims.Role)
		assert.Equal(t, "access", claims.TokenType)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Reject token signed with wrong secret", func(t *testing.T) {
		token, err := GenerateAccessToken(testUserID, "user@example.com", RolePlayer, testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, "other-secret")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Reject garbage token", func(t *testing.T) {
		claims, err := ValidateToken("not.a.token", testSecret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Reject expired token", func(t *testing.T) {
		now := time.Now()
		claims := &JWTClaims{
			UserID:    testUserID,
			Email:     "user@example.com",
			Role:      RolePlayer,
			TokenType: "access",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    jwtIssuer,
				Audience:  []string{jwtAudience},
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ValidateToken(signed, testSecret)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("Refresh with valid refresh token", func(t *testing.T) {
		_, refreshToken, err := GenerateTokens(testUserID, "user@example.com", RolePlayer, testSecret, testSecret)
		require.NoError(t, err)

		newAccess, claims, err := RefreshAccessToken(refreshToken, testSecret, testSecret)
		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.Equal(t, testUserID, claims.UserID)

		accessClaims, err := ValidateToken(newAccess, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "access", accessClaims.TokenType)
	})

	t.Run("Reject access token used as refresh token", func(t *testing.T) {
		accessToken, err := GenerateAccessToken(testUserID, "user@example.com", RolePlayer, testSecret)
		require.NoError(t, err)

		_, _, err = RefreshAccessToken(accessToken, testSecret, testSecret)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}
