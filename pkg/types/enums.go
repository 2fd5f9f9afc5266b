package types

import (
	"strings"

	"github.com/fieldworks/farmgate/pkg/errors"
)

// UserType classifies the requesting user in the configuration profile.
type UserType string

const (
	UserRegular    UserType = "regular"
	UserNonRegular UserType = "non-regular"
)

// ParseUserType parses a user type from its config representation.
// Matching is case-insensitive and accepts underscores for the hyphen.
func ParseUserType(s string) (UserType, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "regular":
		return UserRegular, nil
	case "non-regular":
		return UserNonRegular, nil
	default:
		return "", errors.Newf(errors.ErrConfigParse, "unknown user type %q", s)
	}
}

func (u UserType) String() string {
	return string(u)
}

// MarshalText implements encoding.TextMarshaler
func (u UserType) MarshalText() ([]byte, error) {
	return []byte(u), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *UserType) UnmarshalText(text []byte) error {
	parsed, err := ParseUserType(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Location identifies the region an intake is recorded for. WEST intakes add
// stock; EAST intakes draw it down.
type Location string

const (
	LocationWest Location = "west"
	LocationEast Location = "east"
)

// ParseLocation parses a location from its config representation.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "west":
		return LocationWest, nil
	case "east":
		return LocationEast, nil
	default:
		return "", errors.Newf(errors.ErrConfigParse, "unknown location %q", s)
	}
}

func (l Location) String() string {
	return string(l)
}

// MarshalText implements encoding.TextMarshaler
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Location) UnmarshalText(text []byte) error {
	parsed, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
