package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the verified identity attached to a request.
type Session struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Provider string `json:"provider"`
	Role     string `json:"role"`
}

// issueJWT generates a signed session token for a user.
func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signedToken
}

// ParseSession validates a session token and extracts the identity.
func ParseSession(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return Session{}, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, jwt.ErrTokenInvalidClaims
	}

	sess := Session{}
	sess.UserID, _ = claims["user_id"].(string)
	sess.Email, _ = claims["email"].(string)
	sess.Name, _ = claims["name"].(string)
	sess.Picture, _ = claims["picture"].(string)
	sess.Role, _ = claims["role"].(string)
	return sess, nil
}
