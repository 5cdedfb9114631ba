package payment

import (
	"context"
	"errors"
	"log"

	"locaneon_back_end/internal/models"
	"locaneon_back_end/internal/store"
)

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Processor confirma o pagamento de um pedido já submetido.
type Processor interface {
	Process(ctx context.Context, orderID string) (Result, error)
}

// SimulatedProcessor é o processador de mentira: marca o pedido como pago e
// pronto. Nenhuma integração real com PSP acontece aqui.
type SimulatedProcessor struct {
	orders store.Orders
}

func NewSimulatedProcessor(orders store.Orders) *SimulatedProcessor {
	return &SimulatedProcessor{orders: orders}
}

func (p *SimulatedProcessor) Process(ctx context.Context, orderID string) (Result, error) {
	err := p.orders.UpdateStatus(ctx, orderID, models.StatusPaid)
	if errors.Is(err, store.ErrOrderNotFound) {
		return Result{Success: false, Message: "Pedido não encontrado."}, nil
	}
	if err != nil {
		return Result{}, err
	}

	log.Printf("💳 Pagamento confirmado para o pedido %s", orderID)
	return Result{Success: true, Message: "Pagamento confirmado!"}, nil
}
