package openapi

import (
	"errors"
	"strings"
)

var ErrInvalidBearerToken = errors.New("invalid credential: must be of the form 'Bearer <token>' with a non-empty token")

const bearerPrefix = "Bearer "

// BearerToken is an access token carried in an Authorization header.
type BearerToken struct {
	Value string
}

func (t *BearerToken) UnmarshalText(text []byte) error {
	value, ok := strings.CutPrefix(string(text), bearerPrefix)
	if !ok {
		return ErrInvalidBearerToken
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return ErrInvalidBearerToken
	}

	*t = BearerToken{
		Value: value,
	}

	return nil
}

func (t BearerToken) MarshalText() ([]byte, error) {
	return []byte(bearerPrefix + t.Value), nil
}
