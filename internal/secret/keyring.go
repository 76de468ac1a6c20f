package secret

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"
)

// keyringTimeout is the timeout for keyring operations
const keyringTimeout = 5 * time.Second

// KeyringError represents an error during keyring operations
type KeyringError struct {
	Operation string
	Err       error
}

func (e *KeyringError) Error() string {
	return fmt.Sprintf("keyring %s failed: %v", e.Operation, e.Err)
}

func (e *KeyringError) Unwrap() error {
	return e.Err
}

// Keyring stores the relay password in the operating system keyring.
type Keyring struct {
	Service string
}

// NewKeyring returns a keyring provider for service.
func NewKeyring(service string) *Keyring {
	return &Keyring{Service: service}
}

func keyringKey(user string) string {
	return "smtp:" + user
}

// Password retrieves the password for user from the system keyring with timeout
func (k *Keyring) Password(ctx context.Context, user string) (string, error) {
	password, err := withTimeout(ctx, "get", func() (string, error) {
		return keyring.Get(k.Service, keyringKey(user))
	})
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}

	return password, err
}

// Set stores the password for user in the system keyring with timeout
func (k *Keyring) Set(ctx context.Context, user, password string) error {
	_, err := withTimeout(ctx, "set", func() (string, error) {
		return "", keyring.Set(k.Service, keyringKey(user), password)
	})

	return err
}

// Delete removes the password for user from the system keyring
func (k *Keyring) Delete(ctx context.Context, user string) error {
	_, err := withTimeout(ctx, "delete", func() (string, error) {
		return "", keyring.Delete(k.Service, keyringKey(user))
	})
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}

	return err
}

// withTimeout runs op in a goroutine since some keyring backends block on a
// locked desktop session.
func withTimeout(ctx context.Context, operation string, op func() (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, keyringTimeout)
	defer cancel()

	type result struct {
		value string
		err   error
	}

	resultCh := make(chan result, 1)

	go func() {
		value, err := op()
		resultCh <- result{value: value, err: err}
	}()

	select {
	case r := <-resultCh:
		if r.err != nil {
			return "", &KeyringError{Operation: operation, Err: r.err}
		}

		return r.value, nil
	case <-ctx.Done():
		return "", &KeyringError{Operation: operation, Err: ctx.Err()}
	}
}
