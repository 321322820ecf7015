package builder

import (
	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/money"
	"github.com/rezonia/orangedata-go/internal/validate"
)

// supplierNameBudget is the wire-record size shared by the supplier
// name and phone list; every phone costs its length plus a 4-byte tag
// header, and whatever remains bounds the name.
const supplierNameBudget = 239

// SupplierParams describe the goods supplier on a position.
type SupplierParams struct {
	Name         string
	PhoneNumbers []string
	INN          string
}

// FractionalParams describe a partial share of a marked item.
type FractionalParams struct {
	Numerator   int64
	Denominator int64
}

// IndustryParams describe the 1.2 industry attribute block.
type IndustryParams struct {
	FoivID              string
	CauseDocumentDate   string
	CauseDocumentNumber string
	Value               string
}

// PositionParams are the inputs for one receipt line. Optional blocks
// are attached only when their trigger field is set; no defaults are
// synthesized except the payment method and subject types.
type PositionParams struct {
	Quantity money.Amount
	Price    money.Amount
	Tax      model.VATRate
	Text     string

	// Zero values take the regulator defaults 4 and 1.
	PaymentMethodType  model.PaymentMethodType
	PaymentSubjectType model.PaymentSubjectType

	// Format 1.05 only.
	UnitOfMeasurement string

	Supplier *SupplierParams
	Agent    *AgentParams

	// Format 1.2 only.
	ItemCode           string
	PlannedStatus      model.PlannedStatus
	Fractional         *FractionalParams
	Industry           *IndustryParams
	Barcodes           *model.Barcodes
}

// AddPosition appends a line to the selected document. The base fields
// are validated as one unit, the payment method/subject pair as a
// second, then each optional block in turn; the first failure aborts
// the call and nothing is appended.
func (b *Builder) AddPosition(kind Kind, p PositionParams) error {
	var rev model.Revision
	switch kind {
	case KindOrder:
		doc, err := b.mutableOrder()
		if err != nil {
			return err
		}
		rev = doc.Revision
		pos, err := buildPosition(p, rev)
		if err != nil {
			return err
		}
		doc.Content.Positions = append(doc.Content.Positions, *pos)
		return nil

	case KindCorrection:
		doc, err := b.mutableCorrection()
		if err != nil {
			return err
		}
		rev = doc.Revision
		if !rev.Caps().CorrectionPositions {
			return model.NewValidationError("content.positions", nil, "revision", "correction positions require format 1.2")
		}
		pos, err := buildPosition(p, rev)
		if err != nil {
			return err
		}
		doc.Content.Positions = append(doc.Content.Positions, *pos)
		return nil
	}
	return model.NewValidationError("document", int(kind), "enum", "unknown document kind")
}

func buildPosition(p PositionParams, rev model.Revision) (*model.Position, error) {
	caps := rev.Caps()

	if p.Quantity.IsNegative() || !p.Price.Exact2DP() || !p.Tax.Valid() ||
		!validate.LengthInRange(p.Text, validate.Unbounded, 128) {
		return nil, model.NewValidationError("position", nil, "base", "invalid position quantity, price, tax or text")
	}

	method := p.PaymentMethodType
	if method == 0 {
		method = model.DefaultPaymentMethodType
	}
	subject := p.PaymentSubjectType
	if subject == 0 {
		subject = model.DefaultPaymentSubjectType
	}
	if !method.Valid() || !subject.Valid() {
		return nil, model.NewValidationError("position", nil, "paymentTypes", "invalid position paymentMethodType or paymentSubjectType")
	}

	pos := &model.Position{
		Quantity:           p.Quantity,
		Price:              p.Price,
		Tax:                p.Tax,
		Text:               p.Text,
		PaymentMethodType:  method,
		PaymentSubjectType: subject,
	}

	if p.UnitOfMeasurement != "" {
		if !caps.UnitOfMeasurement {
			return nil, model.NewValidationError("unitOfMeasurement", p.UnitOfMeasurement, "revision", "free-text unit of measurement is a format 1.05 field")
		}
		if !validate.LengthInRange(p.UnitOfMeasurement, 1, 16) {
			return nil, model.NewValidationError("unitOfMeasurement", p.UnitOfMeasurement, "length", "unit of measurement must be 1-16 characters")
		}
		pos.UnitOfMeasurement = p.UnitOfMeasurement
	}

	if p.Supplier != nil {
		if err := applySupplier(pos, p.Supplier); err != nil {
			return nil, err
		}
	}

	if p.Agent != nil {
		flag, info, err := buildAgentInfo(*p.Agent)
		if err != nil {
			return nil, err
		}
		pos.AgentType = flag
		pos.AgentInfo = info
	}

	if p.ItemCode != "" {
		if !caps.ItemCode {
			return nil, model.NewValidationError("itemCode", p.ItemCode, "revision", "marking code requires format 1.2")
		}
		if !validate.LengthInRange(p.ItemCode, 1, 256) {
			return nil, model.NewValidationError("itemCode", p.ItemCode, "length", "marking code must be 1-256 characters")
		}
		pos.ItemCode = p.ItemCode
	}

	if p.PlannedStatus != 0 {
		if !caps.PlannedStatus {
			return nil, model.NewValidationError("plannedStatus", int(p.PlannedStatus), "revision", "planned status requires format 1.2")
		}
		if !p.PlannedStatus.Valid() {
			return nil, model.NewValidationError("plannedStatus", int(p.PlannedStatus), "enum", "planned status must be 1-4")
		}
		pos.PlannedStatus = p.PlannedStatus
	}

	if p.Fractional != nil {
		if !caps.FractionalQuantity {
			return nil, model.NewValidationError("fractionalQuantity", nil, "revision", "fractional quantity requires format 1.2")
		}
		if p.Fractional.Numerator <= 0 || p.Fractional.Denominator <= 0 ||
			p.Fractional.Numerator >= p.Fractional.Denominator {
			return nil, model.NewValidationError("fractionalQuantity", nil, "range", "numerator must be positive and below the denominator")
		}
		pos.FractionalQuantity = &model.FractionalQuantity{
			Numerator:   p.Fractional.Numerator,
			Denominator: p.Fractional.Denominator,
		}
	}

	if p.Industry != nil {
		if !caps.IndustryAttribute {
			return nil, model.NewValidationError("industryAttribute", nil, "revision", "industry attribute requires format 1.2")
		}
		ind, err := buildIndustryAttribute(p.Industry)
		if err != nil {
			return nil, err
		}
		pos.IndustryAttribute = ind
	}

	if p.Barcodes != nil {
		if !caps.Barcodes {
			return nil, model.NewValidationError("barcodes", nil, "revision", "barcodes require format 1.2")
		}
		if err := checkBarcodes(p.Barcodes); err != nil {
			return nil, err
		}
		bc := *p.Barcodes
		pos.Barcodes = &bc
	}

	return pos, nil
}

func applySupplier(pos *model.Position, s *SupplierParams) error {
	budget := supplierNameBudget
	for _, phone := range s.PhoneNumbers {
		if !validate.PhoneLike(phone) {
			return model.NewValidationError("supplierInfo.phoneNumbers", phone, "format", "invalid supplier phone number")
		}
		budget -= len(phone) + 4
	}
	if s.Name != "" && !validate.LengthInRange(s.Name, 1, budget) {
		return model.NewValidationError("supplierInfo.name", s.Name, "length", "supplier name exceeds the record budget left by the phone list")
	}
	if s.INN != "" && !innValid(s.INN) {
		return model.NewValidationError("supplierINN", s.INN, "length", "supplier tax id must be 10 or 12 digits")
	}

	if s.Name != "" || len(s.PhoneNumbers) > 0 {
		info := &model.SupplierInfo{Name: s.Name}
		if len(s.PhoneNumbers) > 0 {
			info.PhoneNumbers = s.PhoneNumbers
		}
		pos.SupplierInfo = info
	}
	pos.SupplierINN = s.INN
	return nil
}

func buildIndustryAttribute(p *IndustryParams) (*model.IndustryAttribute, error) {
	if !validate.LengthInRange(p.FoivID, 1, 3) {
		return nil, model.NewValidationError("industryAttribute.foivId", p.FoivID, "length", "authority id must be 1-3 characters")
	}
	if p.CauseDocumentDate == "" {
		return nil, model.NewValidationError("industryAttribute.causeDocumentDate", nil, "required", "cause document date is required")
	}
	if !validate.LengthInRange(p.CauseDocumentNumber, 1, 32) {
		return nil, model.NewValidationError("industryAttribute.causeDocumentNumber", p.CauseDocumentNumber, "length", "cause document number must be 1-32 characters")
	}
	if !validate.LengthInRange(p.Value, 1, 256) {
		return nil, model.NewValidationError("industryAttribute.value", p.Value, "length", "value must be 1-256 characters")
	}
	return &model.IndustryAttribute{
		FoivID:              p.FoivID,
		CauseDocumentDate:   p.CauseDocumentDate,
		CauseDocumentNumber: p.CauseDocumentNumber,
		Value:               p.Value,
	}, nil
}

// barcodeRule is one symbology field with its own length constraint.
// Every field is measured against its own value; the historical client
// measured several fields against a sibling's length, which rejected
// valid codes and passed invalid ones.
type barcodeRule struct {
	field string
	value string
	min   int
	max   int
}

func checkBarcodes(bc *model.Barcodes) error {
	rules := []barcodeRule{
		{"barcodes.undefined", bc.Undefined, validate.Unbounded, 32},
		{"barcodes.ean8", bc.EAN8, 8, 8},
		{"barcodes.ean13", bc.EAN13, 13, 13},
		{"barcodes.itf14", bc.ITF14, 14, 14},
		{"barcodes.gs10", bc.GS10, validate.Unbounded, 38},
		{"barcodes.gs1m", bc.GS1M, validate.Unbounded, 200},
		{"barcodes.short", bc.Short, validate.Unbounded, 38},
		{"barcodes.fur", bc.Fur, 20, 20},
		{"barcodes.egais20", bc.EGAIS20, 23, 23},
		{"barcodes.egais30", bc.EGAIS30, 14, 14},
		{"barcodes.f1", bc.F1, validate.Unbounded, 32},
		{"barcodes.f2", bc.F2, validate.Unbounded, 32},
		{"barcodes.f3", bc.F3, validate.Unbounded, 32},
	}
	for _, r := range rules {
		if r.value == "" {
			continue
		}
		if !validate.LengthInRange(r.value, r.min, r.max) {
			return model.NewValidationError(r.field, r.value, "length", "barcode value violates its symbology length")
		}
	}
	return nil
}
