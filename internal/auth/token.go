// internal/auth/token.go
package auth

import (
    "fmt"
    "time"

    "github.com/golang-jwt/jwt/v5"

    "github.com/tunewave/campaigns-backend/internal/model"
)

// TokenVerifier resolves a session token into an identity.
type TokenVerifier struct {
    Secret []byte
}

// GenerateToken creates a signed session token for a user
func (v *TokenVerifier) GenerateToken(user model.User, ttl time.Duration) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "sub":   user.ID,
        "email": user.Email,
        "exp":   time.Now().Add(ttl).Unix(),
    })
    return token.SignedString(v.Secret)
}

// Verify parses the token and returns the identity it carries.
func (v *TokenVerifier) Verify(tokenString string) (model.User, error) {
    token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
        if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
        }
        return v.Secret, nil
    })
    if err != nil || !token.Valid {
        return model.User{}, fmt.Errorf("invalid token")
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return model.User{}, fmt.Errorf("invalid token claims")
    }

    sub, ok := claims["sub"].(string)
    if !ok || sub == "" {
        return model.User{}, fmt.Errorf("invalid user ID in token")
    }

    email, _ := claims["email"].(string)

    return model.User{ID: sub, Email: email}, nil
}
