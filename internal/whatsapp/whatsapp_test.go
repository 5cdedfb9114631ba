package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locaneon_back_end/internal/models"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"somente dígitos com DDI", "5521984791222", "5521984791222"},
		{"sem DDI ganha o 55", "21999998888", "5521999998888"},
		{"formatado", "(21) 99999-8888", "5521999998888"},
		{"com prefixo internacional", "+55 21 98479-1222", "5521984791222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func sampleOrder() models.Order {
	return models.Order{
		CustomerName: "Maria Silva",
		Address:      "Rua das Laranjeiras, 100",
		Whatsapp:     "21999998888",
		Total:        1000,
		Items: []models.CartItem{
			{ProductID: "1", Name: "Drone de Corrida FPV", Price: 500, Quantity: 2},
		},
	}
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(sampleOrder(), "2025-10-01", "14:00")

	assert.Contains(t, msg, "Novo pedido de aluguel confirmado!")
	assert.Contains(t, msg, "*Cliente:* Maria Silva")
	assert.Contains(t, msg, "*Valor total:* R$1000.00")
	assert.Contains(t, msg, "2x Drone de Corrida FPV (Aluguel)")
	assert.Contains(t, msg, "2025-10-01 às 14:00")
}

func TestConfirmationLink(t *testing.T) {
	link := ConfirmationLink("5521984791222", sampleOrder(), "2025-10-01", "14:00")

	require.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?phone=5521984791222&text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Maria Silva")
	assert.Contains(t, text, "Pagamento confirmado com sucesso!")
}
