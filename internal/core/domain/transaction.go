package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type TransactionStatus string

const (
	TxCompleted TransactionStatus = "completed"
	TxPending   TransactionStatus = "pending"
	TxFailed    TransactionStatus = "failed"
	TxRefunded  TransactionStatus = "refunded"
	TxDisputed  TransactionStatus = "disputed"
)

func (s TransactionStatus) Valid() bool {
	return oneOf(s, TxCompleted, TxPending, TxFailed, TxRefunded, TxDisputed)
}

type TransactionType string

const (
	TxPayment    TransactionType = "payment"
	TxRefund     TransactionType = "refund"
	TxPayout     TransactionType = "payout"
	TxChargeback TransactionType = "chargeback"
	TxFee        TransactionType = "fee"
)

type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "credit_card"
	MethodPayPal         PaymentMethod = "paypal"
	MethodBankTransfer   PaymentMethod = "bank_transfer"
	MethodWallet         PaymentMethod = "wallet"
	MethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// Transaction is a money movement. Amount, Fee and Net are cents in
// Currency; Net is stored as reported.
type Transaction struct {
	ID          string            `json:"id"`
	OrderID     string            `json:"orderId,omitempty"`
	Party       Party             `json:"party"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Method      PaymentMethod     `json:"method"`
	Amount      int64             `json:"amount"`
	Fee         int64             `json:"fee"`
	Net         int64             `json:"net"`
	Currency    string            `json:"currency"`
	Gateway     string            `json:"gateway"`
	Reference   string            `json:"reference,omitempty"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (t Transaction) Key() string { return t.ID }

type Party struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

var TransactionStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(TxCompleted): {Tone: "green", Icon: "check-circle"},
	string(TxPending):   {Tone: "yellow", Icon: "clock"},
	string(TxFailed):    {Tone: "red", Icon: "x-circle"},
	string(TxRefunded):  {Tone: "blue", Icon: "rotate-ccw"},
	string(TxDisputed):  {Tone: "orange", Icon: "alert-triangle"},
})

var TransactionTypeBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(TxPayment):    {Tone: "green", Icon: "arrow-down-left"},
	string(TxRefund):     {Tone: "blue", Icon: "arrow-up-right"},
	string(TxPayout):     {Tone: "purple", Icon: "send"},
	string(TxChargeback): {Tone: "red", Icon: "shield-off"},
	string(TxFee):        {Tone: "gray", Icon: "receipt"},
})
