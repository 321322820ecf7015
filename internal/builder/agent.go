package builder

import (
	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/validate"
)

// AgentParams describe an intermediary block, either document-level or
// per-position. Role is the bit position of tag 1057; the wire value is
// 2^Role and must stay inside (0,128).
type AgentParams struct {
	Role                   model.AgentRole
	TransferOperatorPhones []string
	AgentOperation         string
	AgentPhones            []string
	OperatorPhones         []string
	OperatorName           string
	OperatorAddress        string
	OperatorINN            string

	// SupplierPhones is honored on the document-level block only.
	SupplierPhones []string
}

// AddAgent sets the document-level intermediary block on the order.
// All fields are validated before anything is written; a later call
// replaces the whole block.
func (b *Builder) AddAgent(p AgentParams) error {
	doc, err := b.mutableOrder()
	if err != nil {
		return err
	}

	flag, info, err := buildAgentInfo(p)
	if err != nil {
		return err
	}
	for _, phone := range p.SupplierPhones {
		if !validate.PhoneLike(phone) {
			return model.NewValidationError("supplierPhoneNumbers", phone, "format", "invalid supplier phone number")
		}
	}

	c := &doc.Content
	c.AgentType = flag
	c.PaymentTransferOperatorPhoneNumbers = info.PaymentTransferOperatorPhoneNumbers
	c.PaymentAgentOperation = info.PaymentAgentOperation
	c.PaymentAgentPhoneNumbers = info.PaymentAgentPhoneNumbers
	c.PaymentOperatorPhoneNumbers = info.PaymentOperatorPhoneNumbers
	c.PaymentOperatorName = info.PaymentOperatorName
	c.PaymentOperatorAddress = info.PaymentOperatorAddress
	c.PaymentOperatorINN = info.PaymentOperatorINN
	c.SupplierPhoneNumbers = nil
	if len(p.SupplierPhones) > 0 {
		c.SupplierPhoneNumbers = p.SupplierPhones
	}
	return nil
}

// buildAgentInfo validates an agent block and returns the wire flag
// plus the nested structure. The operator name, address and tax id are
// checked together as one unit, matching the registrar's field group.
func buildAgentInfo(p AgentParams) (int, *model.AgentInfo, error) {
	flag := p.Role.Flag()
	if flag == 0 {
		return 0, nil, model.NewValidationError("agentType", int(p.Role), "range", "agent flag 2^role must be inside (0,128)")
	}

	for _, phone := range p.TransferOperatorPhones {
		if !validate.PhoneLike(phone) {
			return 0, nil, model.NewValidationError("paymentTransferOperatorPhoneNumbers", phone, "format", "invalid transfer operator phone number")
		}
	}
	if !validate.LengthInRange(p.AgentOperation, 1, 24) {
		return 0, nil, model.NewValidationError("paymentAgentOperation", p.AgentOperation, "length", "agent operation must be 1-24 characters")
	}
	for _, phone := range p.AgentPhones {
		if !validate.PhoneLike(phone) {
			return 0, nil, model.NewValidationError("paymentAgentPhoneNumbers", phone, "format", "invalid payment agent phone number")
		}
	}
	for _, phone := range p.OperatorPhones {
		if !validate.PhoneLike(phone) {
			return 0, nil, model.NewValidationError("paymentOperatorPhoneNumbers", phone, "format", "invalid payment operator phone number")
		}
	}
	if !validate.LengthInRange(p.OperatorName, 1, 64) ||
		!validate.LengthInRange(p.OperatorAddress, 1, 244) ||
		!innValid(p.OperatorINN) {
		return 0, nil, model.NewValidationError(
			"paymentOperatorName, paymentOperatorAddress or paymentOperatorINN",
			nil, "group", "invalid transfer operator name, address or tax id")
	}

	info := &model.AgentInfo{
		PaymentAgentOperation:  p.AgentOperation,
		PaymentOperatorName:    p.OperatorName,
		PaymentOperatorAddress: p.OperatorAddress,
		PaymentOperatorINN:     p.OperatorINN,
	}
	if len(p.TransferOperatorPhones) > 0 {
		info.PaymentTransferOperatorPhoneNumbers = p.TransferOperatorPhones
	}
	if len(p.AgentPhones) > 0 {
		info.PaymentAgentPhoneNumbers = p.AgentPhones
	}
	if len(p.OperatorPhones) > 0 {
		info.PaymentOperatorPhoneNumbers = p.OperatorPhones
	}
	return flag, info, nil
}

// innValid checks a taxpayer id: 10 or 12 digits on the wire, so 10-12
// characters long and never 11.
func innValid(inn string) bool {
	n := len(inn)
	return n >= 10 && n <= 12 && n != 11
}
