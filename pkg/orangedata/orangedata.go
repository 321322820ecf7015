// Package orangedata provides the public API for building, signing and
// submitting fiscal receipts to the registrar.
//
// Example usage:
//
//	client, err := orangedata.NewClient(orangedata.Options{
//	    INN:         "1234567890",
//	    APIURL:      "https://apip.orangedata.ru:2443",
//	    SignKeyFile: "sign.key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.CreateOrder(orangedata.OrderParams{...})
//	client.AddPosition(orangedata.PositionParams{...})
//	client.AddPayment(orangedata.PaymentParams{...})
//	resp, err := client.SendOrder(ctx)
package orangedata

import (
	"github.com/rezonia/orangedata-go/internal/builder"
	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/transport"
)

// Re-export core document types for the public API
type (
	OrderDocument      = model.OrderDocument
	CorrectionDocument = model.CorrectionDocument
	OrderContent       = model.OrderContent
	CorrectionContent  = model.CorrectionContent
	Position           = model.Position
	Payment            = model.Payment
	CheckClose         = model.CheckClose
	SupplierInfo       = model.SupplierInfo
	AgentInfo          = model.AgentInfo
	UserAttribute      = model.UserAttribute
	Barcodes           = model.Barcodes
	ValidationError    = model.ValidationError
	Response           = transport.Response
	APIError           = transport.APIError
)

// Re-export enumerated field types
type (
	Revision           = model.Revision
	OperationType      = model.OperationType
	TaxationSystem     = model.TaxationSystem
	VATRate            = model.VATRate
	PaymentMethodType  = model.PaymentMethodType
	PaymentSubjectType = model.PaymentSubjectType
	PaymentType        = model.PaymentType
	CorrectionType     = model.CorrectionType
	AgentRole          = model.AgentRole
)

// Re-export builder parameter types
type (
	OrderParams      = builder.OrderParams
	PositionParams   = builder.PositionParams
	PaymentParams    = builder.PaymentParams
	AgentParams      = builder.AgentParams
	SupplierParams   = builder.SupplierParams
	CorrectionParams = builder.CorrectionParams
)

// Re-export fiscal data format revisions
const (
	Revision105 = model.Revision105
	Revision12  = model.Revision12
)

// Re-export operation types
const (
	OperationIncome        = model.OperationIncome
	OperationIncomeRefund  = model.OperationIncomeRefund
	OperationExpense       = model.OperationExpense
	OperationExpenseRefund = model.OperationExpenseRefund
)

// Re-export payment row types
const (
	PaymentCash         = model.PaymentCash
	PaymentElectronic   = model.PaymentElectronic
	PaymentPrepaid      = model.PaymentPrepaid
	PaymentPostpaid     = model.PaymentPostpaid
	PaymentCounterOffer = model.PaymentCounterOffer
)

// Re-export correction types
const (
	CorrectionSelf       = model.CorrectionSelf
	CorrectionPrescribed = model.CorrectionPrescribed
)
