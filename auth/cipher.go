package auth

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// Values use the OpenSSL passphrase format CryptoJS.AES produces:
// base64("Salted__" || salt || AES-256-CBC(plaintext)),
// with key and iv derived by EVP_BytesToKey over MD5 and PKCS#7 padding.
const (
	saltHeader = "Salted__"
	saltLen    = 8
	keyLen     = 32
)

// Encrypt encrypts plaintext so that the Decrypter returned
// when authenticating with password opens it.
func Encrypt(plaintext, password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	return encryptWithSalt([]byte(plaintext), []byte(password+password), salt)
}

func encryptWithSalt(plaintext, passphrase, salt []byte) (string, error) {
	key, iv := deriveKey(passphrase, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	pad := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append(append([]byte{}, plaintext...), bytes.Repeat([]byte{byte(pad)}, pad)...)

	out := make([]byte, len(saltHeader)+saltLen+len(padded))
	copy(out, saltHeader)
	copy(out[len(saltHeader):], salt)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[len(saltHeader)+saltLen:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

func decrypt(ciphertext string, passphrase []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDecrypt, err)
	}

	prefix := len(saltHeader) + saltLen
	if len(raw) < prefix+aes.BlockSize || !bytes.HasPrefix(raw, []byte(saltHeader)) {
		return "", fmt.Errorf("%w: not a salted ciphertext", ErrDecrypt)
	}

	body := raw[prefix:]
	if len(body)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrDecrypt)
	}

	key, iv := deriveKey(passphrase, raw[len(saltHeader):prefix])
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDecrypt, err)
	}

	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	pad := int(plain[len(plain)-1])
	if pad == 0 || pad > aes.BlockSize || !bytes.Equal(plain[len(plain)-pad:], bytes.Repeat([]byte{byte(pad)}, pad)) {
		return "", fmt.Errorf("%w: bad padding", ErrDecrypt)
	}

	plain = plain[:len(plain)-pad]
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not utf-8", ErrDecrypt)
	}

	return string(plain), nil
}

// deriveKey is OpenSSL's EVP_BytesToKey with MD5 and a single iteration.
func deriveKey(passphrase, salt []byte) (key, iv []byte) {
	var derived, prev []byte
	for len(derived) < keyLen+aes.BlockSize {
		h := md5.New()
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}

	return derived[:keyLen], derived[keyLen : keyLen+aes.BlockSize]
}
