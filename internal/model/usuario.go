package model

// Usuario is an account record. SenhaHash is never serialized.
type Usuario struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	SenhaHash string `json:"-"`
}
