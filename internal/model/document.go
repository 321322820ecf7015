// Package model defines the fiscal document tree and the enumerated
// field values of the registrar's wire format. JSON field names and
// their declaration order are the wire contract: absent optionals are
// omitted, never null, and encoding a document yields its canonical
// byte form for signing.
package model

import (
	"encoding/json"

	"github.com/rezonia/orangedata-go/internal/money"
)

// OrderDocument is a sale (or refund/expense) receipt envelope.
type OrderDocument struct {
	ID      string       `json:"id"`
	INN     string       `json:"inn"`
	Group   string       `json:"group"`
	Key     string       `json:"key,omitempty"`
	Content OrderContent `json:"content"`

	// Revision gates which optional fields the builder accepts.
	// Not part of the wire body.
	Revision Revision `json:"-"`
}

// Canonical returns the deterministic byte form the signature is
// computed over and the transport sends verbatim.
func (d *OrderDocument) Canonical() ([]byte, error) {
	return json.Marshal(d)
}

// CorrectionDocument is a correction receipt envelope.
type CorrectionDocument struct {
	ID      string            `json:"id"`
	INN     string            `json:"inn"`
	Group   string            `json:"group"`
	Key     string            `json:"key,omitempty"`
	Content CorrectionContent `json:"content"`

	Revision Revision `json:"-"`
}

// Canonical returns the deterministic byte form for signing.
func (d *CorrectionDocument) Canonical() ([]byte, error) {
	return json.Marshal(d)
}

// OrderContent is the body of a sale receipt.
type OrderContent struct {
	Type            OperationType `json:"type"`
	Positions       []Position    `json:"positions"`
	CheckClose      CheckClose    `json:"checkClose"`
	CustomerContact string        `json:"customerContact"`

	// Document-level agent block, written flat per the wire format.
	AgentType                           int      `json:"agentType,omitempty"`
	PaymentTransferOperatorPhoneNumbers []string `json:"paymentTransferOperatorPhoneNumbers,omitempty"`
	PaymentAgentOperation               string   `json:"paymentAgentOperation,omitempty"`
	PaymentAgentPhoneNumbers            []string `json:"paymentAgentPhoneNumbers,omitempty"`
	PaymentOperatorPhoneNumbers         []string `json:"paymentOperatorPhoneNumbers,omitempty"`
	PaymentOperatorName                 string   `json:"paymentOperatorName,omitempty"`
	PaymentOperatorAddress              string   `json:"paymentOperatorAddress,omitempty"`
	PaymentOperatorINN                  string   `json:"paymentOperatorINN,omitempty"`
	SupplierPhoneNumbers                []string `json:"supplierPhoneNumbers,omitempty"`

	AdditionalUserAttribute *UserAttribute `json:"additionalUserAttribute,omitempty"`

	// 1.2 only. Tells the registrar to skip marking-code verification.
	IgnoreItemCodeCheck bool `json:"ignoreItemCodeCheck,omitempty"`
}

// CheckClose carries the payment rows and the tax regime.
type CheckClose struct {
	Payments       []Payment      `json:"payments"`
	TaxationSystem TaxationSystem `json:"taxationSystem"`
}

// Payment is one payment row.
type Payment struct {
	Type   PaymentType  `json:"type"`
	Amount money.Amount `json:"amount"`
}

// Position is one priced line within a receipt.
type Position struct {
	Quantity           money.Amount       `json:"quantity"`
	Price              money.Amount       `json:"price"`
	Tax                VATRate            `json:"tax"`
	Text               string             `json:"text"`
	PaymentMethodType  PaymentMethodType  `json:"paymentMethodType"`
	PaymentSubjectType PaymentSubjectType `json:"paymentSubjectType"`

	// 1.05 only.
	UnitOfMeasurement string `json:"unitOfMeasurement,omitempty"`

	SupplierINN  string        `json:"supplierINN,omitempty"`
	SupplierInfo *SupplierInfo `json:"supplierInfo,omitempty"`
	AgentType    int           `json:"agentType,omitempty"`
	AgentInfo    *AgentInfo    `json:"agentInfo,omitempty"`

	// 1.2 only.
	ItemCode           string              `json:"itemCode,omitempty"`
	PlannedStatus      PlannedStatus       `json:"plannedStatus,omitempty"`
	FractionalQuantity *FractionalQuantity `json:"fractionalQuantity,omitempty"`
	IndustryAttribute  *IndustryAttribute  `json:"industryAttribute,omitempty"`
	Barcodes           *Barcodes           `json:"barcodes,omitempty"`
}

// SupplierInfo identifies the goods supplier on a position. The name
// ceiling shrinks with the serialized size of the phone list; the
// builder enforces it.
type SupplierInfo struct {
	Name         string   `json:"name,omitempty"`
	PhoneNumbers []string `json:"phoneNumbers,omitempty"`
}

// AgentInfo is the per-position intermediary block.
type AgentInfo struct {
	PaymentTransferOperatorPhoneNumbers []string `json:"paymentTransferOperatorPhoneNumbers,omitempty"`
	PaymentAgentOperation               string   `json:"paymentAgentOperation,omitempty"`
	PaymentAgentPhoneNumbers            []string `json:"paymentAgentPhoneNumbers,omitempty"`
	PaymentOperatorPhoneNumbers         []string `json:"paymentOperatorPhoneNumbers,omitempty"`
	PaymentOperatorName                 string   `json:"paymentOperatorName,omitempty"`
	PaymentOperatorAddress              string   `json:"paymentOperatorAddress,omitempty"`
	PaymentOperatorINN                  string   `json:"paymentOperatorINN,omitempty"`
}

// UserAttribute is the additional user attribute block (tag 1084).
type UserAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FractionalQuantity describes a partial share of a marked item.
type FractionalQuantity struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

// IndustryAttribute is the 1.2 industry-specific attribute block.
type IndustryAttribute struct {
	FoivID              string `json:"foivId"`
	CauseDocumentDate   string `json:"causeDocumentDate"`
	CauseDocumentNumber string `json:"causeDocumentNumber"`
	Value               string `json:"value"`
}

// Barcodes is the 1.2 product-code block. Each symbology field has its
// own fixed or bounded length, validated against its own value.
type Barcodes struct {
	Undefined string `json:"undefined,omitempty"` // <= 32
	EAN8      string `json:"ean8,omitempty"`      // exactly 8
	EAN13     string `json:"ean13,omitempty"`     // exactly 13
	ITF14     string `json:"itf14,omitempty"`     // exactly 14
	GS10      string `json:"gs10,omitempty"`      // <= 38
	GS1M      string `json:"gs1m,omitempty"`      // <= 200
	Short     string `json:"short,omitempty"`     // <= 38
	Fur       string `json:"fur,omitempty"`       // exactly 20
	EGAIS20   string `json:"egais20,omitempty"`   // exactly 23
	EGAIS30   string `json:"egais30,omitempty"`   // exactly 14
	F1        string `json:"f1,omitempty"`        // <= 32
	F2        string `json:"f2,omitempty"`        // <= 32
	F3        string `json:"f3,omitempty"`        // <= 32
}

// CorrectionContent is the body of a correction receipt. Under 1.2 it
// additionally carries positions and payments, like an order.
type CorrectionContent struct {
	CorrectionType      CorrectionType `json:"correctionType"`
	Type                OperationType  `json:"type"`
	Description         string         `json:"description"`
	CauseDocumentDate   string         `json:"causeDocumentDate"`
	CauseDocumentNumber string         `json:"causeDocumentNumber"`
	TotalSum            money.Amount   `json:"totalSum"`
	CashSum             money.Amount   `json:"cashSum"`
	ECashSum            money.Amount   `json:"eCashSum"`
	PrepaymentSum       money.Amount   `json:"prepaymentSum"`
	PostpaymentSum      money.Amount   `json:"postpaymentSum"`
	OtherPaymentTypeSum money.Amount   `json:"otherPaymentTypeSum"`
	Tax1Sum             money.Amount   `json:"tax1Sum"`
	Tax2Sum             money.Amount   `json:"tax2Sum"`
	Tax3Sum             money.Amount   `json:"tax3Sum"`
	Tax4Sum             money.Amount   `json:"tax4Sum"`
	Tax5Sum             money.Amount   `json:"tax5Sum"`
	Tax6Sum             money.Amount   `json:"tax6Sum"`
	TaxationSystem      TaxationSystem `json:"taxationSystem"`

	Positions  []Position  `json:"positions,omitempty"`
	CheckClose *CheckClose `json:"checkClose,omitempty"`
}
