package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/money"
)

func TestOrderDocumentCanonical(t *testing.T) {
	doc := &model.OrderDocument{
		ID:       "2734-abc",
		INN:      "1234567890",
		Group:    "Main",
		Revision: model.Revision105,
		Content: model.OrderContent{
			Type:            model.OperationIncome,
			CustomerContact: "user@example.com",
			Positions: []model.Position{
				{
					Quantity:           money.FromInt(1),
					Price:              money.MustFromString("17.45"),
					Tax:                model.VAT18,
					Text:               "Widget",
					PaymentMethodType:  model.MethodFullPayment,
					PaymentSubjectType: model.SubjectCommodity,
				},
			},
			CheckClose: model.CheckClose{
				Payments: []model.Payment{
					{Type: model.PaymentElectronic, Amount: money.MustFromString("17.45")},
				},
				TaxationSystem: model.TaxationGeneral,
			},
		},
	}

	data, err := doc.Canonical()
	require.NoError(t, err)
	body := string(data)

	// Envelope fields in declaration order; no key field when unset.
	assert.True(t, strings.HasPrefix(body, `{"id":"2734-abc","inn":"1234567890","group":"Main","content":`))
	assert.NotContains(t, body, `"key"`)

	// Amounts render as bare numbers.
	assert.Contains(t, body, `"price":17.45`)
	assert.Contains(t, body, `"amount":17.45`)

	// The format revision never reaches the wire.
	assert.NotContains(t, body, "1.05")

	// Absent optional blocks are omitted, not null.
	assert.NotContains(t, body, "null")
	assert.NotContains(t, body, "agentType")
	assert.NotContains(t, body, "additionalUserAttribute")
}

func TestOrderDocumentCanonicalWithKey(t *testing.T) {
	doc := &model.OrderDocument{
		ID:    "1",
		INN:   "1234567890",
		Group: "Main",
		Key:   "client-key",
	}
	data, err := doc.Canonical()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"key":"client-key"`)
}

func TestCorrectionDocumentCanonical(t *testing.T) {
	doc := &model.CorrectionDocument{
		ID:       "corr-1",
		INN:      "1234567890",
		Group:    "Main",
		Revision: model.Revision105,
		Content: model.CorrectionContent{
			CorrectionType:      model.CorrectionPrescribed,
			Type:                model.OperationIncome,
			Description:         "order 17",
			CauseDocumentDate:   "2026-08-15T00:00:00",
			CauseDocumentNumber: "17",
			TotalSum:            money.MustFromString("100.10"),
			TaxationSystem:      model.TaxationSimplifiedIncome,
		},
	}

	data, err := doc.Canonical()
	require.NoError(t, err)
	body := string(data)

	assert.Contains(t, body, `"correctionType":1`)
	assert.Contains(t, body, `"causeDocumentDate":"2026-08-15T00:00:00"`)
	assert.Contains(t, body, `"totalSum":100.1`)
	// Unset sums still appear; they are part of the fixed record.
	assert.Contains(t, body, `"tax6Sum":0`)
	// A 1.05 correction has no positions or checkClose blocks.
	assert.NotContains(t, body, `"positions"`)
	assert.NotContains(t, body, `"checkClose"`)
}

func TestCanonicalRoundTrip(t *testing.T) {
	doc := &model.OrderDocument{
		ID:    "rt-1",
		INN:   "1234567890",
		Group: "Main",
		Content: model.OrderContent{
			Type:      model.OperationIncomeRefund,
			Positions: []model.Position{},
			CheckClose: model.CheckClose{
				Payments:       []model.Payment{},
				TaxationSystem: model.TaxationPatent,
			},
		},
	}
	data, err := doc.Canonical()
	require.NoError(t, err)

	var decoded model.OrderDocument
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc.ID, decoded.ID)
	assert.Equal(t, doc.Content.Type, decoded.Content.Type)
	assert.Equal(t, doc.Content.CheckClose.TaxationSystem, decoded.Content.CheckClose.TaxationSystem)
}

func TestOperationTypeValid(t *testing.T) {
	assert.True(t, model.OperationIncome.Valid())
	assert.True(t, model.OperationExpenseRefund.Valid())
	assert.False(t, model.OperationType(0).Valid())
	assert.False(t, model.OperationType(5).Valid())

	assert.True(t, model.OperationIncome.ValidForCorrection())
	assert.True(t, model.OperationExpense.ValidForCorrection())
	assert.False(t, model.OperationIncomeRefund.ValidForCorrection())
	assert.False(t, model.OperationExpenseRefund.ValidForCorrection())
}

func TestPaymentTypeValid(t *testing.T) {
	for _, v := range []model.PaymentType{1, 2, 14, 15, 16} {
		assert.True(t, v.Valid(), "payment type %d", v)
	}
	for _, v := range []model.PaymentType{0, 3, 13, 17, 99} {
		assert.False(t, v.Valid(), "payment type %d", v)
	}
}

func TestAgentRoleFlag(t *testing.T) {
	tests := []struct {
		role model.AgentRole
		want int
	}{
		{model.RoleBankPaymentAgent, 1},
		{model.RolePaymentAgent, 4},
		{model.RoleOtherAgent, 64},
		{model.AgentRole(7), 0},  // 2^7 = 128, outside the flag range
		{model.AgentRole(-1), 0},
		{model.AgentRole(40), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.Flag(), "role %d", tt.role)
	}
}

func TestRevisionCaps(t *testing.T) {
	caps := model.Revision105.Caps()
	assert.True(t, caps.UnitOfMeasurement)
	assert.False(t, caps.ItemCode)
	assert.False(t, caps.CorrectionPositions)

	caps = model.Revision12.Caps()
	assert.False(t, caps.UnitOfMeasurement)
	assert.True(t, caps.ItemCode)
	assert.True(t, caps.Barcodes)
	assert.True(t, caps.CorrectionPositions)

	// Unknown revisions reject every gated field set.
	assert.Equal(t, model.Capabilities{}, model.Revision("9.9").Caps())
	assert.False(t, model.Revision("9.9").Valid())
}

func TestValidationErrorMessage(t *testing.T) {
	err := model.NewValidationError("content.type", 5, "enum", "operation type must be 1-4")
	assert.Contains(t, err.Error(), "content.type")
	assert.Contains(t, err.Error(), "operation type must be 1-4")
}
