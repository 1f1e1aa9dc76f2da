package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Esquemas de hash soportados.
const (
	SchemeLegacy = "legacy"
	SchemeBcrypt = "bcrypt"
)

// PasswordHasher genera hashes con el esquema configurado y verifica cualquiera de los dos.
// Las cuentas existentes usan hex(sha256(password + salt)); bcrypt convive con ellas.
type PasswordHasher struct {
	scheme string
	salt   string
	cost   int
}

// NewPasswordHasher scheme vacío equivale a legacy.
func NewPasswordHasher(scheme, salt string) (*PasswordHasher, error) {
	switch scheme {
	case "", SchemeLegacy:
		scheme = SchemeLegacy
		if salt == "" {
			return nil, fmt.Errorf("password hasher: salt vacío")
		}
	case SchemeBcrypt:
	default:
		return nil, fmt.Errorf("password hasher: esquema desconocido %q", scheme)
	}
	return &PasswordHasher{scheme: scheme, salt: salt, cost: bcrypt.DefaultCost}, nil
}

// Scheme esquema usado para hashes nuevos.
func (h *PasswordHasher) Scheme() string { return h.scheme }

// Hash devuelve el hash de password en el esquema configurado.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.scheme == SchemeBcrypt {
		b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(b), nil
	}
	return h.legacy(password), nil
}

// Verify detecta el esquema por el formato del hash guardado.
func (h *PasswordHasher) Verify(password, stored string) bool {
	if stored == "" {
		return false
	}
	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	if h.salt == "" {
		return false
	}
	want := h.legacy(password)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(want)) == 1
}

func (h *PasswordHasher) legacy(password string) string {
	sum := sha256.Sum256([]byte(password + h.salt))
	return hex.EncodeToString(sum[:])
}

func isBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
