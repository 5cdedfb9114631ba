package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/auth"
)

// AuthHandler faz o login do painel de admin contra o autenticador injetado.
type AuthHandler struct {
	Authenticator auth.Authenticator
}

// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if !h.Authenticator.Verify(input.Username, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário ou senha inválidos."})
		return
	}

	token, err := auth.GenerateToken(input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
