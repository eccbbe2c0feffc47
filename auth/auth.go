package auth

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/microapp/config"
)

// A Decrypter decrypts a base64 ciphertext produced by [Encrypt], returning the plaintext.
type Decrypter func(ciphertext string) (string, error)

// NoDecrypter is handed to micro-apps when no authentication took place.
func NoDecrypter(string) (string, error) { return "", ErrNoCapability }

// Authenticate verifies the basic authentication credentials on r against info.
//
// Credentials fail when they are absent, when the username does not match exactly,
// or when the password does not match the bcrypt hash in info.Password.
// On failure, if w is not nil, Authenticate writes a 401 response challenging for info.Realm.
// A nil w makes Authenticate a side-effect free check.
//
// On success, Authenticate returns a Decrypter keyed by the supplied password.
func Authenticate(info config.AuthInfo, w http.ResponseWriter, r *http.Request) (Decrypter, bool) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != info.Username || !VerifyPassword(pass, info.Password) {
		if w != nil {
			Challenge(w, info.Realm)
		}
		return nil, false
	}

	return NewDecrypter(pass), true
}

// Challenge writes an empty 401 response asking for basic authentication in realm.
func Challenge(w http.ResponseWriter, realm string) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
	w.WriteHeader(http.StatusUnauthorized)
}

// NewDecrypter constructs a Decrypter for values encrypted under password.
func NewDecrypter(password string) Decrypter {
	passphrase := []byte(password + password)
	return func(ciphertext string) (string, error) {
		return decrypt(ciphertext, passphrase)
	}
}
