package user

import (
	"errors"
	"net/url"
	"regexp"
)

// Letters, spaces, hyphens and apostrophes only. "Mary-Jane O'Brien" passes,
// "John3" does not.
var fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

const maxPreferredSports = 20

var (
	ErrNameRequired    = errors.New("name is required")
	ErrNameTooLong     = errors.New("name must be less than 100 characters")
	ErrNameInvalid     = errors.New("name can only contain letters, spaces, hyphens, and apostrophes")
	ErrAvatarURL       = errors.New("invalid avatar URL")
	ErrTooManySports   = errors.New("maximum 20 sports allowed")
	ErrSportNameLength = errors.New("sport name too long")
)

// ValidateProfileUpdate checks only the fields the request provides and
// returns the first violation.
func ValidateProfileUpdate(req *UpdateProfileRequest) error {
	if req.FullName != nil {
		name := *req.FullName
		if name == "" {
			return ErrNameRequired
		}
		if len(name) > 100 {
			return ErrNameTooLong
		}
		if !fullNamePattern.MatchString(name) {
			return ErrNameInvalid
		}
	}

	if req.AvatarURL != nil && *req.AvatarURL != "" {
		u, err := url.Parse(*req.AvatarURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrAvatarURL
		}
	}

	if len(req.PreferredSports) > maxPreferredSports {
		return ErrTooManySports
	}
	for _, sport := range req.PreferredSports {
		if len(sport) > 50 {
			return ErrSportNameLength
		}
	}

	return nil
}
