package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/models"
	"locaneon_back_end/internal/settings"
)

// SettingsHandler lê e grava as configurações de pagamento do painel.
// Sem validação de formato das chaves; o último Save vence.
type SettingsHandler struct {
	Service settings.Service
}

// GET /api/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.Service.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar configurações"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PUT /api/admin/settings — gravação total do blob.
func (h *SettingsHandler) Save(c *gin.Context) {
	var cfg models.PaymentSettings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if err := h.Service.Save(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar configurações"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configurações salvas com sucesso!"})
}
