package models

import "time"

type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "pix"
	PaymentCard   PaymentMethod = "card"
	PaymentDebit  PaymentMethod = "debit"
	PaymentBoleto PaymentMethod = "boleto"
)

// Valid reporta se o método é um dos quatro oferecidos no checkout.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentPix, PaymentCard, PaymentDebit, PaymentBoleto:
		return true
	}
	return false
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusDelivered OrderStatus = "delivered"
)

// Order é imutável depois de criada, com exceção do status. Items e Total são
// um snapshot do carrinho no momento da submissão.
type Order struct {
	ID               string        `json:"id"`
	CustomerName     string        `json:"customerName"`
	Address          string        `json:"address"`
	Whatsapp         string        `json:"whatsapp"`
	DeliveryDateTime string        `json:"deliveryDateTime"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	Items            []CartItem    `json:"items"`
	Total            float64       `json:"total"`
	Status           OrderStatus   `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
}
