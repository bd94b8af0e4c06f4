package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidateProfileUpdate_FullName(t *testing.T) {
	t.Run("Accepts letters, spaces, hyphens and apostrophes", func(t *testing.T) {
		err := ValidateProfileUpdate(&UpdateProfileRequest{FullName: strPtr("Mary-Jane O'Brien")})
		assert.NoError(t, err)
	})

	t.Run("Rejects digits", func(t *testing.T) {
		err := ValidateProfileUpdate(&UpdateProfileRequest{FullName: strPtr("John3")})
		assert.ErrorIs(t, err, ErrNameInvalid)
	})

	t.Run("Rejects empty name", func(t *testing.T) {
		err := ValidateProfileUpdate(&UpdateProfileRequest{FullName: strPtr("")})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("Rejects overlong name", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		err := ValidateProfileUpdate(&UpdateProfileRequest{FullName: strPtr(string(long))})
		assert.ErrorIs(t, err, ErrNameTooLong)
	})

	t.Run("Nil name is fine", func(t *testing.T) {
		err := ValidateProfileUpdate(&UpdateProfileRequest{})
		assert.NoError(t, err)
	})
}

func TestValidateProfileUpdate_AvatarURL(t *testing.T) {
	t.Run("Valid URL", func(t *testing.T) {
		err := ValidateProfileUpdate(&UpdateProfileRequest{AvatarURL: strPtr("https://cdn.example.com/avatars/a.png")})
		assert.NoError(t, err)
	})

	t.Run("Invalid URL", func(t *testing.T) {
		err := ValidateProfileUpdate(&UpdateProfileRequest{AvatarURL: strPtr("not a url")})
		assert.ErrorIs(t, err, ErrAvatarURL)
	})
}

func TestValidateProfileUpdate_PreferredSports(t *testing.T) {
	t.Run("Within limits", func(t *testing.T) {
		err := ValidateProfileUpdate(&UpdateProfileRequest{PreferredSports: []string{"cricket", "football"}})
		assert.NoError(t, err)
	})

	t.Run("Too many sports", func(t *testing.T) {
		sports := make([]string, 21)
		for i := range sports {
			sports[i] = "sport"
		}
		err := ValidateProfileUpdate(&UpdateProfileRequest{PreferredSports: sports})
		assert.ErrorIs(t, err, ErrTooManySports)
	})

	t.Run("Sport name too long", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'x'
		}
		err := ValidateProfileUpdate(&UpdateProfileRequest{PreferredSports: []string{string(long)}})
		assert.ErrorIs(t, err, ErrSportNameLength)
	})
}
