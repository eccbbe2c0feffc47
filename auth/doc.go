/*
Package auth gates a micro-app behind HTTP basic authentication.

# Gate

[Authenticate] checks the basic authentication credentials on a request
against the username and bcrypt password hash configured for a micro-app.
On failure, it answers with a 401 challenge naming the configured realm.

# Decrypter

On success, [Authenticate] returns a [Decrypter] bound to the password just supplied.
A micro-app uses it to decrypt configuration values that were encrypted with [Encrypt]
(or with CryptoJS.AES.encrypt) under a passphrase of that password repeated twice.
A Decrypter lives for a single request and is never stored.

# Tooling

[HashPassword] and [Encrypt] prepare the values placed in a micro-app's config.json.
*/
package auth
