package auth

import "golang.org/x/crypto/bcrypt"

// HashSenha hashes a plain-text password with bcrypt. The salt lives
// inside the hash, so two calls never produce the same output.
func HashSenha(senha string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(b), err
}

// VerificarSenha reports whether senha matches hash. A malformed hash
// simply fails the check.
func VerificarSenha(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
