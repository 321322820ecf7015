package builder

import (
	"time"

	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/money"
	"github.com/rezonia/orangedata-go/internal/validate"
)

// CorrectionParams are the fields fixed at correction creation. The
// cause document time is always written as 00:00:00 on the wire.
type CorrectionParams struct {
	ID                  string
	CorrectionType      model.CorrectionType
	Type                model.OperationType
	Description         string
	CauseDocumentDate   time.Time
	CauseDocumentNumber string

	TotalSum            money.Amount
	CashSum             money.Amount
	ECashSum            money.Amount
	PrepaymentSum       money.Amount
	PostpaymentSum      money.Amount
	OtherPaymentTypeSum money.Amount
	Tax1Sum             money.Amount
	Tax2Sum             money.Amount
	Tax3Sum             money.Amount
	Tax4Sum             money.Amount
	Tax5Sum             money.Amount
	Tax6Sum             money.Amount

	TaxationSystem model.TaxationSystem
	Group          string
	Key            string
	Revision       model.Revision
}

// BeginCorrection starts a new correction document, discarding any
// previous in-progress correction. The first violated constraint
// aborts the call with no state change.
func (b *Builder) BeginCorrection(p CorrectionParams) error {
	if !p.CorrectionType.Valid() {
		return model.NewValidationError("content.correctionType", int(p.CorrectionType), "enum", "correction type must be 0 or 1")
	}
	if !p.Type.ValidForCorrection() {
		return model.NewValidationError("content.type", int(p.Type), "enum", "correction operation type must be 1 or 3")
	}
	if !validate.LengthInRange(p.Description, 1, 244) {
		return model.NewValidationError("content.description", p.Description, "length", "description must be 1-244 characters")
	}
	if p.CauseDocumentDate.IsZero() {
		return model.NewValidationError("content.causeDocumentDate", nil, "required", "cause document date is required")
	}
	if !validate.LengthInRange(p.CauseDocumentNumber, 1, 32) {
		return model.NewValidationError("content.causeDocumentNumber", p.CauseDocumentNumber, "length", "cause document number must be 1-32 characters")
	}
	sums := []money.Amount{
		p.TotalSum, p.CashSum, p.ECashSum,
		p.PrepaymentSum, p.PostpaymentSum, p.OtherPaymentTypeSum,
		p.Tax1Sum, p.Tax2Sum, p.Tax3Sum, p.Tax4Sum, p.Tax5Sum, p.Tax6Sum,
	}
	for _, s := range sums {
		if !s.Exact2DP() {
			return model.NewValidationError("content.sums", nil, "precision", "correction sums must have at most two decimal places")
		}
	}
	if !p.TaxationSystem.Valid() {
		return model.NewValidationError("content.taxationSystem", int(p.TaxationSystem), "enum", "taxation system must be 0-5")
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

	group := p.Group
	if group == "" {
		group = b.defaultGroup
	}

	doc := &model.CorrectionDocument{
		ID:       p.ID,
		INN:      b.inn,
		Group:    group,
		Key:      p.Key,
		Revision: p.Revision,
		Content: model.CorrectionContent{
			CorrectionType:      p.CorrectionType,
			Type:                p.Type,
			Description:         p.Description,
			CauseDocumentDate:   causeDate(p.CauseDocumentDate),
			CauseDocumentNumber: p.CauseDocumentNumber,
			TotalSum:            p.TotalSum,
			CashSum:             p.CashSum,
			ECashSum:            p.ECashSum,
			PrepaymentSum:       p.PrepaymentSum,
			PostpaymentSum:      p.PostpaymentSum,
			OtherPaymentTypeSum: p.OtherPaymentTypeSum,
			Tax1Sum:             p.Tax1Sum,
			Tax2Sum:             p.Tax2Sum,
			Tax3Sum:             p.Tax3Sum,
			Tax4Sum:             p.Tax4Sum,
			Tax5Sum:             p.Tax5Sum,
			Tax6Sum:             p.Tax6Sum,
			TaxationSystem:      p.TaxationSystem,
		},
	}
	if p.Revision.Caps().CorrectionPositions {
		doc.Content.Positions = []model.Position{}
	}

	b.correction = doc
	b.correctionDone = false
	return nil
}

// causeDate renders the cause document date in ISO 8601 with the time
// part zeroed, as the registrar requires.
func causeDate(t time.Time) string {
	return t.Format("2006-01-02") + "T00:00:00"
}
