package server

import (
	"time"

	"github.com/rezonia/orangedata-go/internal/builder"
	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/money"
)

// buildOrder replays a bridge payload through the builder so every
// field passes the same validation as library callers get.
func buildOrder(b *builder.Builder, req *OrderRequest) error {
	err := b.BeginOrder(builder.OrderParams{
		ID:                 req.ID,
		Type:               model.OperationType(req.Type),
		CustomerContact:    req.CustomerContact,
		TaxationSystem:     model.TaxationSystem(req.TaxationSystem),
		Group:              req.Group,
		Key:                req.Key,
		Revision:           model.Revision(req.FFDVersion),
		IgnoreMarkingCheck: req.IgnoreMarkingCheck,
	})
	if err != nil {
		return err
	}

	for _, p := range req.Positions {
		params, err := positionParams(p)
		if err != nil {
			return err
		}
		if err := b.AddPosition(builder.KindOrder, *params); err != nil {
			return err
		}
	}
	for _, p := range req.Payments {
		params, err := paymentParams(p)
		if err != nil {
			return err
		}
		if err := b.AddPayment(builder.KindOrder, *params); err != nil {
			return err
		}
	}
	if req.Agent != nil {
		if err := b.AddAgent(agentParams(req.Agent)); err != nil {
			return err
		}
	}
	if req.Attribute != nil {
		if err := b.AddUserAttribute(req.Attribute.Name, req.Attribute.Value); err != nil {
			return err
		}
	}
	return nil
}

func buildCorrection(b *builder.Builder, req *CorrectionRequest) error {
	date, err := time.Parse("2006-01-02", req.CauseDocumentDate)
	if err != nil {
		return model.NewValidationError("content.causeDocumentDate", req.CauseDocumentDate, "format", "cause document date must be YYYY-MM-DD")
	}

	// Omitted sums stay zero; only present values must parse.
	sums := make([]money.Amount, 0, 6)
	for _, s := range []string{
		req.TotalSum, req.CashSum, req.ECashSum,
		req.PrepaymentSum, req.PostpaymentSum, req.OtherPaymentTypeSum,
	} {
		a, err := parseSum(s)
		if err != nil {
			return err
		}
		sums = append(sums, a)
	}
	var taxSums [6]money.Amount
	for i, s := range req.TaxSums {
		a, err := parseSum(s)
		if err != nil {
			return err
		}
		taxSums[i] = a
	}

	err = b.BeginCorrection(builder.CorrectionParams{
		ID:                  req.ID,
		CorrectionType:      model.CorrectionType(req.CorrectionType),
		Type:                model.OperationType(req.Type),
		Description:         req.Description,
		CauseDocumentDate:   date,
		CauseDocumentNumber: req.CauseDocumentNumber,
		TotalSum:            sums[0],
		CashSum:             sums[1],
		ECashSum:            sums[2],
		PrepaymentSum:       sums[3],
		PostpaymentSum:      sums[4],
		OtherPaymentTypeSum: sums[5],
		Tax1Sum:             taxSums[0],
		Tax2Sum:             taxSums[1],
		Tax3Sum:             taxSums[2],
		Tax4Sum:             taxSums[3],
		Tax5Sum:             taxSums[4],
		Tax6Sum:             taxSums[5],
		TaxationSystem:      model.TaxationSystem(req.TaxationSystem),
		Group:               req.Group,
		Key:                 req.Key,
		Revision:            model.Revision(req.FFDVersion),
	})
	if err != nil {
		return err
	}

	for _, p := range req.Positions {
		params, err := positionParams(p)
		if err != nil {
			return err
		}
		if err := b.AddPosition(builder.KindCorrection, *params); err != nil {
			return err
		}
	}
	for _, p := range req.Payments {
		params, err := paymentParams(p)
		if err != nil {
			return err
		}
		if err := b.AddPayment(builder.KindCorrection, *params); err != nil {
			return err
		}
	}
	return nil
}

func positionParams(p PositionRequest) (*builder.PositionParams, error) {
	quantity, err := parseAmount(p.Quantity, "position.quantity")
	if err != nil {
		return nil, err
	}
	price, err := parseAmount(p.Price, "position.price")
	if err != nil {
		return nil, err
	}

	params := &builder.PositionParams{
		Quantity:           quantity,
		Price:              price,
		Tax:                model.VATRate(p.Tax),
		Text:               p.Text,
		PaymentMethodType:  model.PaymentMethodType(p.PaymentMethodType),
		PaymentSubjectType: model.PaymentSubjectType(p.PaymentSubjectType),
		UnitOfMeasurement:  p.UnitOfMeasurement,
		ItemCode:           p.ItemCode,
	}
	if p.Supplier != nil {
		params.Supplier = &builder.SupplierParams{
			Name:         p.Supplier.Name,
			PhoneNumbers: p.Supplier.PhoneNumbers,
			INN:          p.Supplier.INN,
		}
	}
	if p.Agent != nil {
		agent := agentParams(p.Agent)
		params.Agent = &agent
	}
	return params, nil
}

func paymentParams(p PaymentRequest) (*builder.PaymentParams, error) {
	amount, err := parseAmount(p.Amount, "payment.amount")
	if err != nil {
		return nil, err
	}
	return &builder.PaymentParams{
		Type:   model.PaymentType(p.Type),
		Amount: amount,
	}, nil
}

func agentParams(a *AgentRequest) builder.AgentParams {
	return builder.AgentParams{
		Role:                   model.AgentRole(a.Role),
		TransferOperatorPhones: a.TransferOperatorPhones,
		AgentOperation:         a.AgentOperation,
		AgentPhones:            a.AgentPhones,
		OperatorPhones:         a.OperatorPhones,
		OperatorName:           a.OperatorName,
		OperatorAddress:        a.OperatorAddress,
		OperatorINN:            a.OperatorINN,
		SupplierPhones:         a.SupplierPhones,
	}
}

func parseSum(s string) (money.Amount, error) {
	if s == "" {
		return money.Zero, nil
	}
	return parseAmount(s, "content.sums")
}

func parseAmount(s, field string) (money.Amount, error) {
	a, err := money.FromString(s)
	if err != nil {
		return money.Zero, model.NewValidationError(field, s, "format", "not a decimal number")
	}
	return a, nil
}
