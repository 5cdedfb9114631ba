package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"locaneon_back_end/internal/models"
)

// O sistema apenas prepara o deep-link de confirmação; quem envia a mensagem
// é o cliente, abrindo a URL no WhatsApp.

// NormalizePhone remove tudo que não for dígito e prefixa o DDI 55 quando o
// número vem sem código de país.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) <= 11 && !strings.HasPrefix(digits, "55") {
		return "55" + digits
	}
	return digits
}

// ConfirmationMessage monta o resumo do pedido no formato que o admin recebe.
func ConfirmationMessage(o models.Order, deliveryDate, deliveryTime string) string {
	summaries := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		summaries = append(summaries, fmt.Sprintf("%dx %s (Aluguel)", it.Quantity, it.Name))
	}

	lines := []string{
		"📦 *Novo pedido de aluguel confirmado!*",
		"",
		fmt.Sprintf("👤 *Cliente:* %s", o.CustomerName),
		fmt.Sprintf("📞 *Contato:* %s", o.Whatsapp),
		fmt.Sprintf("💰 *Valor total:* R$%.2f", o.Total),
		fmt.Sprintf("🏠 *Endereço:* %s", o.Address),
		fmt.Sprintf("📅 *Data de entrega:* %s às %s", deliveryDate, deliveryTime),
		fmt.Sprintf("🛍️ *Itens:* %s", strings.Join(summaries, "; ")),
		"",
		"✅ Pagamento confirmado com sucesso!",
	}
	return strings.Join(lines, "\n")
}

// ConfirmationLink devolve a URL api.whatsapp.com pronta para abrir com a
// mensagem pré-preenchida para o telefone do admin.
func ConfirmationLink(adminPhone string, o models.Order, deliveryDate, deliveryTime string) string {
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s",
		NormalizePhone(adminPhone),
		url.QueryEscape(ConfirmationMessage(o, deliveryDate, deliveryTime)))
}
