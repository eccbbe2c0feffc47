package auth

var EncryptWithSalt = encryptWithSalt
