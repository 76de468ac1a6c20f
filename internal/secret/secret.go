// Package secret resolves the mail relay password without compiling it
// into the program.
package secret

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a provider has no password for the user.
var ErrNotFound = errors.New("relay password not configured")

// Provider looks up the relay password for a username.
type Provider interface {
	Password(ctx context.Context, user string) (string, error)
}

// Static returns a fixed password, typically from configuration or the
// CITAS_SMTP_PASSWORD environment variable. An empty Static has none.
type Static string

func (s Static) Password(_ context.Context, _ string) (string, error) {
	if s == "" {
		return "", ErrNotFound
	}

	return string(s), nil
}

// Chain asks each provider in order and returns the first password found.
type Chain []Provider

func (c Chain) Password(ctx context.Context, user string) (string, error) {
	for _, p := range c {
		password, err := p.Password(ctx, user)
		if err == nil {
			return password, nil
		}

		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}

	return "", ErrNotFound
}
