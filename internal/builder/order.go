package builder

import (
	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/money"
	"github.com/rezonia/orangedata-go/internal/validate"
)

// OrderParams are the fields fixed at order creation.
type OrderParams struct {
	// ID identifies the document to the registrar, 1-32 characters.
	ID string
	// Type is the settlement attribute, 1-4.
	Type model.OperationType
	// CustomerContact is a phone number or e-mail, 1-64 characters.
	CustomerContact string
	// TaxationSystem is the applied tax regime, 0-5.
	TaxationSystem model.TaxationSystem
	// Group selects the device group; the builder default applies when empty.
	Group string
	// Key optionally names the signature verification key, 1-32 characters.
	Key string
	// Revision is the fiscal data format version, fixed for the document.
	Revision model.Revision
	// IgnoreMarkingCheck asks the registrar to skip marking-code
	// verification. Format 1.2 only.
	IgnoreMarkingCheck bool
}

// BeginOrder starts a new order document, discarding any previous
// in-progress order. Checks run in a fixed sequence and the first
// violated constraint aborts the call with no state change.
func (b *Builder) BeginOrder(p OrderParams) error {
	if !p.Type.Valid() {
		return model.NewValidationError("content.type", int(p.Type), "enum", "operation type must be 1-4")
	}
	if !p.TaxationSystem.Valid() {
		return model.NewValidationError("content.checkClose.taxationSystem", int(p.TaxationSystem), "enum", "taxation system must be 0-5")
	}
	if !validate.LengthInRange(p.CustomerContact, 1, 64) || !validate.PhoneOrEmail(p.CustomerContact) {
		return model.NewValidationError("content.customerContact", p.CustomerContact, "format", "customer contact must be a phone number or e-mail")
	}
	if !validate.LengthInRange(p.ID, 1, 32) {
		return model.NewValidationError("id", p.ID, "length", "document id must be 1-32 characters")
	}
	if p.Key != "" && !validate.LengthInRange(p.Key, 1, 32) {
		return model.NewValidationError("key", p.Key, "length", "key name must be 1-32 characters")
	}
	if !p.Revision.Valid() {
		return model.NewValidationError("revision", string(p.Revision), "enum", "unknown fiscal data format revision")
	}
	if p.IgnoreMarkingCheck && !p.Revision.Caps().ItemCode {
		return model.NewValidationError("content.ignoreItemCodeCheck", nil, "revision", "marking check control requires format 1.2")
	}

	group := p.Group
	if group == "" {
		group = b.defaultGroup
	}

	b.order = &model.OrderDocument{
		ID:       p.ID,
		INN:      b.inn,
		Group:    group,
		Key:      p.Key,
		Revision: p.Revision,
		Content: model.OrderContent{
			Type:            p.Type,
			Positions:       []model.Position{},
			CustomerContact: p.CustomerContact,
			CheckClose: model.CheckClose{
				Payments:       []model.Payment{},
				TaxationSystem: p.TaxationSystem,
			},
			IgnoreItemCodeCheck: p.IgnoreMarkingCheck,
		},
	}
	b.orderDone = false
	return nil
}

// PaymentParams describe one payment row.
type PaymentParams struct {
	Type   model.PaymentType
	Amount money.Amount
}

// AddPayment appends a payment row to the selected document. The type
// and amount are checked as one unit, per the wire format. Payment
// totals are not reconciled against position totals; the registrar
// does that.
func (b *Builder) AddPayment(kind Kind, p PaymentParams) error {
	if !p.Type.Valid() || !p.Amount.Exact2DP() {
		return model.NewValidationError("payment", nil, "typeAmount", "invalid payment type or amount")
	}

	switch kind {
	case KindOrder:
		doc, err := b.mutableOrder()
		if err != nil {
			return err
		}
		doc.Content.CheckClose.Payments = append(doc.Content.CheckClose.Payments, model.Payment{
			Type:   p.Type,
			Amount: p.Amount,
		})
		return nil

	case KindCorrection:
		doc, err := b.mutableCorrection()
		if err != nil {
			return err
		}
		if !doc.Revision.Caps().CorrectionPositions {
			return model.NewValidationError("content.checkClose", nil, "revision", "correction payments require format 1.2")
		}
		if doc.Content.CheckClose == nil {
			doc.Content.CheckClose = &model.CheckClose{
				Payments:       []model.Payment{},
				TaxationSystem: doc.Content.TaxationSystem,
			}
		}
		doc.Content.CheckClose.Payments = append(doc.Content.CheckClose.Payments, model.Payment{
			Type:   p.Type,
			Amount: p.Amount,
		})
		return nil
	}
	return model.NewValidationError("document", int(kind), "enum", "unknown document kind")
}

// AddUserAttribute sets the additional user attribute block on the
// order. The name+value combined ceiling comes from the wire-format
// nesting of tag 1084 and is intentionally checked on top of the
// individual bounds. A later call overwrites the block.
func (b *Builder) AddUserAttribute(name, value string) error {
	doc, err := b.mutableOrder()
	if err != nil {
		return err
	}
	if !validate.LengthInRange(name, 1, 64) {
		return model.NewValidationError("additionalUserAttribute.name", name, "length", "name must be 1-64 characters")
	}
	if !validate.LengthInRange(value, 1, 175) {
		return model.NewValidationError("additionalUserAttribute.value", value, "length", "value must be 1-175 characters")
	}
	if len([]rune(name))+len([]rune(value)) > 234 {
		return model.NewValidationError("additionalUserAttribute", nil, "combinedLength", "name and value together must not exceed 234 characters")
	}
	doc.Content.AdditionalUserAttribute = &model.UserAttribute{
		Name:  name,
		Value: value,
	}
	return nil
}
