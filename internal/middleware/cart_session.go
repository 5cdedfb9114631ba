package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "locaneon_session"
	cartIDKey   = "cart_id"
)

// CartSession garante que toda requisição da loja carregue um identificador de
// carrinho no cookie de sessão, criando um novo na primeira visita.
func CartSession(secret string) gin.HandlerFunc {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return func(c *gin.Context) {
		session, err := store.Get(c.Request, sessionName)
		if err != nil {
			// cookie corrompido: recomeça com uma sessão nova
			session, _ = store.New(c.Request, sessionName)
		}

		cartID, ok := session.Values[cartIDKey].(string)
		if !ok || cartID == "" {
			cartID = uuid.NewString()
			session.Values[cartIDKey] = cartID
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️  Erro salvando cookie de sessão: %v", err)
			}
		}

		c.Set(cartIDKey, cartID)
		c.Next()
	}
}

// CartID devolve o identificador de carrinho colocado no contexto pelo
// CartSession.
func CartID(c *gin.Context) string {
	return c.GetString(cartIDKey)
}
