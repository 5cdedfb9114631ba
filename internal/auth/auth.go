package auth

import (
	"crypto/subtle"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator é o colaborador injetado que valida credenciais de admin,
// no lugar da checagem hard-coded que o storefront original embutia na view.
type Authenticator interface {
	Verify(username, password string) bool
}

// EnvAuthenticator compara usuário e hash bcrypt vindos do ambiente.
type EnvAuthenticator struct {
	username     string
	passwordHash string
}

func NewEnvAuthenticator() *EnvAuthenticator {
	username := os.Getenv("ADMIN_USER")
	if username == "" {
		username = "Admin"
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		// gera o hash das credenciais de dev na subida; evita hash embutido no fonte
		generated, err := bcrypt.GenerateFromPassword([]byte("01020304"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Falha ao gerar hash de senha padrão: %v", err)
		}
		hash = string(generated)
		log.Println("⚠️  ADMIN_PASSWORD_HASH não definido — usando credenciais de desenvolvimento")
	}

	return &EnvAuthenticator{username: username, passwordHash: hash}
}

func (a *EnvAuthenticator) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	return userOK && passOK
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// GenerateToken emite o JWT de sessão do admin, válido por 24h.
func GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken valida o token e devolve as claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
