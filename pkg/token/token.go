package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Generator emite y verifica tokens de activación de cuenta de un solo uso.
// El HMAC se calcula sobre el id de la cuenta, el hash de la contraseña y el estado
// is_active: al activarse la cuenta el estado cambia y el token deja de verificar,
// por lo que no puede reutilizarse.
type Generator struct {
	secret []byte
	ttl    time.Duration
}

// New construye el generador. ttl es la validez máxima del token.
func New(secret string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), ttl: ttl}
}

// Issue emite un token opaco ligado a la cuenta. Formato: "<ts>-<hmac hex>".
func (g *Generator) Issue(accountID, passwordHash string, isActive bool, now time.Time) string {
	ts := now.Unix()
	return fmt.Sprintf("%d-%s", ts, g.signature(accountID, passwordHash, isActive, ts))
}

// Verify valida el token contra la cuenta. Retorna false si el token expiró,
// fue manipulado o la cuenta cambió de estado desde la emisión.
func (g *Generator) Verify(accountID, passwordHash string, isActive bool, tok string, now time.Time) bool {
	parts := strings.SplitN(tok, "-", 2)
	if len(parts) != 2 {
		return false
	}
	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false
	}
	issued := time.Unix(ts, 0)
	if now.Before(issued) || now.Sub(issued) > g.ttl {
		return false
	}
	expected := g.signature(accountID, passwordHash, isActive, ts)
	return hmac.Equal([]byte(expected), []byte(parts[1]))
}

func (g *Generator) signature(accountID, passwordHash string, isActive bool, ts int64) string {
	mac := hmac.New(sha256.New, g.secret)
	fmt.Fprintf(mac, "%s|%s|%t|%d", accountID, passwordHash, isActive, ts)
	return hex.EncodeToString(mac.Sum(nil))
}
