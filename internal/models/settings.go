package models

// PaymentSettings é o blob de configuração de pagamento mantido pelo admin.
// Todos os campos são opcionais e independentes entre si.
type PaymentSettings struct {
	PixKey           string `json:"pixKey"`
	PixRecipientName string `json:"pixRecipientName"`
	CardAPIKey       string `json:"cardApiKey"`
	DebitAPIKey      string `json:"debitApiKey"`
	PixAPIKey        string `json:"pixApiKey"`
}
