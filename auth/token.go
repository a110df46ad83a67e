package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken cabeçalho Authorization ausente
	ErrMissingToken = errors.New("token não fornecido")
	// ErrInvalidToken token adulterado, expirado ou malformado
	ErrInvalidToken = errors.New("token inválido ou expirado")
)

// DefaultTokenTTL validade padrão do token: 7 dias
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims payload do token; "id" é o identificador do usuário
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenManager emite e verifica tokens HS256.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager cria o gerenciador; ttl <= 0 usa DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate emite um token para o usuário.
func (m *TokenManager) Generate(userID uint) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar token: %w", err)
	}
	return signed, nil
}

// Verify devolve o id do usuário contido no token.
// Token vazio resulta em ErrMissingToken; qualquer outra falha em ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrMissingToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("algoritmo inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// BearerToken extrai o token de "Authorization: Bearer <token>".
// Usa o segundo campo do cabeçalho, sem conferir o esquema.
func BearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
