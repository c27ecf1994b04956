package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más el claim propio de la aplicación.
// Factory viaja como string ("TPL", "NVN", "LR"); el middleware lo re-parsea al
// enum de dominio y rechaza valores desconocidos.
type Claims struct {
	jwt.RegisteredClaims
	Factory string `json:"Factory"`
}

// Generate genera un token HS256 firmado con subject=username y el claim Factory.
// Cada token lleva un jti aleatorio e iat fresco, por lo que dos llamadas con las
// mismas entradas nunca producen los mismos bytes. Devuelve también el instante
// de expiración (now + expHours).
func Generate(secret, username, factory, issuer, audience string, expHours int) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expHours) * time.Hour)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   username,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Factory: factory,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse valida firma, expiración, issuer y audience (sin tolerancia de reloj)
// y devuelve username y factory. Retorna error si el token es inválido,
// expirado o tiene firma incorrecta.
func Parse(secret, issuer, audience, tokenString string) (username, factory string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.Factory, nil
}
