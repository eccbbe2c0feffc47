package auth

import "errors"

var (
	// ErrDecrypt wraps every failure to decrypt a value.
	ErrDecrypt = errors.New("could not decrypt")

	// ErrNoCapability is returned by NoDecrypter.
	ErrNoCapability = errors.New("no decryption capability: request was not authenticated")

	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
