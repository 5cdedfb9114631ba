package payment

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"

	"locaneon_back_end/internal/models"
)

// PixPayload monta o texto informativo exibido no QR Code do PIX: beneficiário
// e valor. A chave em si é mostrada à parte, para copia e cola.
func PixPayload(cfg models.PaymentSettings, total float64) string {
	recipient := cfg.PixRecipientName
	if recipient == "" {
		recipient = "Nome não configurado"
	}
	return fmt.Sprintf(
		"Para pagar, use a chave PIX (Copia e Cola) abaixo no seu app de banco.\nBeneficiário: %s\nValor: R$ %.2f",
		recipient, total)
}

// PixQRCode gera o QR do payload como data URI PNG, pronto para <img src>.
func PixQRCode(cfg models.PaymentSettings, total float64) (string, error) {
	png, err := qrcode.Encode(PixPayload(cfg, total), qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("erro gerando QR PIX: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// PixQRCodeURL devolve a URL do renderizador externo usado pelo storefront
// original, para clientes que preferem não receber a imagem inline.
func PixQRCodeURL(cfg models.PaymentSettings, total float64) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=" +
		url.QueryEscape(PixPayload(cfg, total))
}
