package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"locaneon_back_end/internal/cart"
	"locaneon_back_end/internal/models"
	"locaneon_back_end/internal/payment"
	"locaneon_back_end/internal/settings"
	"locaneon_back_end/internal/store"
	"locaneon_back_end/internal/whatsapp"
)

var (
	ErrCartEmpty        = errors.New("seu carrinho está vazio")
	ErrMissingFields    = errors.New("preencha todos os campos obrigatórios")
	ErrInvalidMethod    = errors.New("método de pagamento inválido")
	ErrNoCheckout       = errors.New("nenhum checkout em andamento")
	ErrPixNotConfigured = errors.New("o administrador ainda não configurou uma chave PIX")
	ErrProcessing       = errors.New("erro ao processar o pedido")
)

type Step string

const (
	StepDetails Step = "details"
	StepPayment Step = "payment"
)

// Details são os dados de entrega e pagamento coletados no primeiro passo.
type Details struct {
	CustomerName  string               `json:"customerName"`
	Address       string               `json:"address"`
	Whatsapp      string               `json:"whatsapp"`
	DeliveryDate  string               `json:"deliveryDate"`
	DeliveryTime  string               `json:"deliveryTime"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

// PixInstructions carrega tudo que a tela de pagamento PIX mostra.
type PixInstructions struct {
	Key       string `json:"key"`
	Recipient string `json:"recipient"`
	Payload   string `json:"payload"`
	QRCode    string `json:"qrCode"`    // data URI PNG
	QRCodeURL string `json:"qrCodeUrl"` // renderizador externo
}

// Instructions descreve o segundo passo do checkout para o método escolhido.
type Instructions struct {
	Method  models.PaymentMethod `json:"method"`
	Total   float64              `json:"total"`
	Pix     *PixInstructions     `json:"pix,omitempty"`
	Boleto  string               `json:"boleto,omitempty"`
	Card    string               `json:"card,omitempty"`
	Warning string               `json:"warning,omitempty"`
}

// Confirmation é o artefato devolvido ao cliente após pagamento confirmado.
type Confirmation struct {
	Order       models.Order `json:"order"`
	Message     string       `json:"message"`
	WhatsAppURL string       `json:"whatsappUrl"`
}

type session struct {
	step    Step
	details Details
}

// Pipeline orquestra o fluxo details → payment → pedido pago. O estado de
// cada checkout vive em memória, indexado pela mesma sessão do carrinho.
type Pipeline struct {
	carts      cart.Manager
	catalog    store.Catalog
	orders     store.Orders
	processor  payment.Processor
	settings   settings.Service
	adminPhone string

	mu       sync.Mutex
	sessions map[string]*session
}

func NewPipeline(carts cart.Manager, catalog store.Catalog, orders store.Orders, processor payment.Processor, cfg settings.Service, adminPhone string) *Pipeline {
	return &Pipeline{
		carts:      carts,
		catalog:    catalog,
		orders:     orders,
		processor:  processor,
		settings:   cfg,
		adminPhone: adminPhone,
		sessions:   make(map[string]*session),
	}
}

// Start valida os dados de entrega e avança o checkout para o passo de
// pagamento. Falha se o carrinho estiver vazio ou faltar campo obrigatório.
func (p *Pipeline) Start(ctx context.Context, sessionID string, d Details) (Instructions, error) {
	items, err := p.carts.Get(ctx, sessionID)
	if err != nil {
		return Instructions{}, err
	}
	if len(items) == 0 {
		return Instructions{}, ErrCartEmpty
	}

	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.Address = strings.TrimSpace(d.Address)
	d.Whatsapp = strings.TrimSpace(d.Whatsapp)
	if d.CustomerName == "" || d.Address == "" || d.Whatsapp == "" || d.DeliveryDate == "" || d.DeliveryTime == "" {
		return Instructions{}, ErrMissingFields
	}
	if !d.PaymentMethod.Valid() {
		return Instructions{}, ErrInvalidMethod
	}

	p.mu.Lock()
	p.sessions[sessionID] = &session{step: StepPayment, details: d}
	p.mu.Unlock()

	return p.instructions(sessionID, d, cart.Total(items))
}

// Payment reapresenta as instruções do passo de pagamento em andamento.
func (p *Pipeline) Payment(ctx context.Context, sessionID string) (Instructions, error) {
	p.mu.Lock()
	s, ok := p.sessions[sessionID]
	p.mu.Unlock()
	if !ok || s.step != StepPayment {
		return Instructions{}, ErrNoCheckout
	}

	items, err := p.carts.Get(ctx, sessionID)
	if err != nil {
		return Instructions{}, err
	}
	return p.instructions(sessionID, s.details, cart.Total(items))
}

// Back volta do pagamento para a coleta de dados, como o botão de voltar da
// tela original.
func (p *Pipeline) Back(sessionID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sessions[sessionID]
	if !ok {
		return ErrNoCheckout
	}
	s.step = StepDetails
	return nil
}

// Confirm submete o pedido e roda o pagamento simulado.
//
// O estoque é decrementado na submissão, antes da confirmação do pagamento, e
// não há rollback se o pagamento falhar — comportamento herdado do storefront
// original e mantido de propósito (ver DESIGN.md). A falha deixa a sessão no
// passo de pagamento para o cliente tentar de novo.
func (p *Pipeline) Confirm(ctx context.Context, sessionID string) (Confirmation, error) {
	p.mu.Lock()
	s, ok := p.sessions[sessionID]
	p.mu.Unlock()
	if !ok || s.step != StepPayment {
		return Confirmation{}, ErrNoCheckout
	}

	if s.details.PaymentMethod == models.PaymentPix {
		cfg, err := p.settings.Load()
		if err == nil && cfg.PixKey == "" {
			return Confirmation{}, ErrPixNotConfigured
		}
	}

	items, err := p.carts.Get(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Erro lendo carrinho no checkout: %v", err)
		return Confirmation{}, ErrProcessing
	}
	if len(items) == 0 {
		return Confirmation{}, ErrCartEmpty
	}

	order := models.Order{
		CustomerName:     s.details.CustomerName,
		Address:          s.details.Address,
		Whatsapp:         s.details.Whatsapp,
		DeliveryDateTime: s.details.DeliveryDate + "T" + s.details.DeliveryTime,
		PaymentMethod:    s.details.PaymentMethod,
		Items:            items, // snapshot por valor; o carrinho some logo em seguida
		Total:            cart.Total(items),
	}

	created, err := p.orders.Create(ctx, order)
	if err != nil {
		log.Printf("❌ Erro submetendo pedido: %v", err)
		return Confirmation{}, ErrProcessing
	}

	// decremento incondicional de estoque na submissão
	for _, it := range created.Items {
		if err := p.catalog.AdjustStock(ctx, it.ProductID, -it.Quantity); err != nil {
			log.Printf("⚠️  Erro atualizando estoque de %s: %v", it.ProductID, err)
		}
	}

	result, err := p.processor.Process(ctx, created.ID)
	if err != nil {
		log.Printf("❌ Erro no pagamento do pedido %s: %v", created.ID, err)
		return Confirmation{}, ErrProcessing
	}
	if !result.Success {
		log.Printf("❌ Pagamento recusado para o pedido %s: %s (estoque já debitado, sem rollback)", created.ID, result.Message)
		return Confirmation{}, ErrProcessing
	}

	if err := p.carts.Clear(ctx, sessionID); err != nil {
		log.Printf("⚠️  Erro limpando carrinho %s: %v", sessionID, err)
	}
	p.mu.Lock()
	delete(p.sessions, sessionID)
	p.mu.Unlock()

	paid, err := p.orders.Get(ctx, created.ID)
	if err != nil {
		paid = created
		paid.Status = models.StatusPaid
	}

	return Confirmation{
		Order:       paid,
		Message:     whatsapp.ConfirmationMessage(paid, s.details.DeliveryDate, s.details.DeliveryTime),
		WhatsAppURL: whatsapp.ConfirmationLink(p.adminPhone, paid, s.details.DeliveryDate, s.details.DeliveryTime),
	}, nil
}

func (p *Pipeline) instructions(sessionID string, d Details, total float64) (Instructions, error) {
	ins := Instructions{Method: d.PaymentMethod, Total: total}

	switch d.PaymentMethod {
	case models.PaymentPix:
		cfg, err := p.settings.Load()
		if err != nil {
			return Instructions{}, err
		}
		if cfg.PixKey == "" {
			ins.Warning = "O administrador ainda não configurou uma chave PIX. Por favor, entre em contato."
			return ins, nil
		}
		qr, err := payment.PixQRCode(cfg, total)
		if err != nil {
			return Instructions{}, err
		}
		ins.Pix = &PixInstructions{
			Key:       cfg.PixKey,
			Recipient: cfg.PixRecipientName,
			Payload:   payment.PixPayload(cfg, total),
			QRCode:    qr,
			QRCodeURL: payment.PixQRCodeURL(cfg, total),
		}
	case models.PaymentBoleto:
		ins.Boleto = payment.BoletoLine(sessionID, total)
	case models.PaymentCard, models.PaymentDebit:
		cfg, err := p.settings.Load()
		if err != nil {
			return Instructions{}, err
		}
		key := cfg.CardAPIKey
		if d.PaymentMethod == models.PaymentDebit {
			key = cfg.DebitAPIKey
		}
		if key == "" {
			ins.Card = "Pagamento com cartão em modo simulado (nenhuma API configurada)."
		} else {
			ins.Card = fmt.Sprintf("Pagamento com cartão em modo simulado (API %s configurada).", string(d.PaymentMethod))
		}
	}
	return ins, nil
}
