package model

// OperationType is the settlement attribute of a document (tag 1054).
type OperationType int

const (
	OperationIncome        OperationType = 1 // sale
	OperationIncomeRefund  OperationType = 2 // sale refund
	OperationExpense       OperationType = 3
	OperationExpenseRefund OperationType = 4
)

// Valid reports whether the value is a legal order operation type.
func (t OperationType) Valid() bool {
	return t >= OperationIncome && t <= OperationExpenseRefund
}

// ValidForCorrection reports whether the value is legal on a correction
// document, where only income and expense are allowed.
func (t OperationType) ValidForCorrection() bool {
	return t == OperationIncome || t == OperationExpense
}

// TaxationSystem is the applied tax regime (tag 1055).
type TaxationSystem int

const (
	TaxationGeneral TaxationSystem = iota
	TaxationSimplifiedIncome
	TaxationSimplifiedIncomeOutcome
	TaxationImputedIncome
	TaxationAgricultural
	TaxationPatent
)

// Valid reports whether the value is one of the six regimes.
func (t TaxationSystem) Valid() bool {
	return t >= TaxationGeneral && t <= TaxationPatent
}

// VATRate is the per-position tax rate selector.
type VATRate int

const (
	VAT18    VATRate = 1
	VAT10    VATRate = 2
	VAT18118 VATRate = 3 // calculated 18/118
	VAT10110 VATRate = 4 // calculated 10/110
	VAT0     VATRate = 5
	VATNone  VATRate = 6
)

// Valid reports whether the value is a legal rate selector.
func (v VATRate) Valid() bool {
	return v >= VAT18 && v <= VATNone
}

// PaymentMethodType is the settlement method attribute (tag 1214).
type PaymentMethodType int

const (
	MethodFullPrepayment PaymentMethodType = 1
	MethodPrepayment     PaymentMethodType = 2
	MethodAdvance        PaymentMethodType = 3
	MethodFullPayment    PaymentMethodType = 4
	MethodPartialCredit  PaymentMethodType = 5
	MethodCreditTransfer PaymentMethodType = 6
	MethodCreditPayment  PaymentMethodType = 7
)

// DefaultPaymentMethodType is applied when the caller leaves the field unset.
const DefaultPaymentMethodType = MethodFullPayment

// Valid reports whether the value is a legal method type.
func (m PaymentMethodType) Valid() bool {
	return m >= MethodFullPrepayment && m <= MethodCreditPayment
}

// PaymentSubjectType is the settlement subject attribute (tag 1212).
type PaymentSubjectType int

const (
	SubjectCommodity      PaymentSubjectType = 1
	SubjectExcise         PaymentSubjectType = 2
	SubjectJob            PaymentSubjectType = 3
	SubjectService        PaymentSubjectType = 4
	SubjectGamblingBet    PaymentSubjectType = 5
	SubjectGamblingPrize  PaymentSubjectType = 6
	SubjectLottery        PaymentSubjectType = 7
	SubjectLotteryPrize   PaymentSubjectType = 8
	SubjectIntellectual   PaymentSubjectType = 9
	SubjectPayment        PaymentSubjectType = 10
	SubjectAgentFee       PaymentSubjectType = 11
	SubjectComposite      PaymentSubjectType = 12
	SubjectOther          PaymentSubjectType = 13
)

// DefaultPaymentSubjectType is applied when the caller leaves the field unset.
const DefaultPaymentSubjectType = SubjectCommodity

// Valid reports whether the value is a legal subject type.
func (s PaymentSubjectType) Valid() bool {
	return s >= SubjectCommodity && s <= SubjectOther
}

// PaymentType is the payment row type inside checkClose.
type PaymentType int

const (
	PaymentCash         PaymentType = 1
	PaymentElectronic   PaymentType = 2
	PaymentPrepaid      PaymentType = 14 // tag 1215
	PaymentPostpaid     PaymentType = 15 // tag 1216
	PaymentCounterOffer PaymentType = 16 // tag 1217
)

// Valid reports whether the value is one of the five payment row types.
func (p PaymentType) Valid() bool {
	switch p {
	case PaymentCash, PaymentElectronic, PaymentPrepaid, PaymentPostpaid, PaymentCounterOffer:
		return true
	}
	return false
}

// CorrectionType is the correction attribute (tag 1173).
type CorrectionType int

const (
	CorrectionSelf       CorrectionType = 0 // voluntary
	CorrectionPrescribed CorrectionType = 1 // by authority order
)

// Valid reports whether the value is a legal correction type.
func (c CorrectionType) Valid() bool {
	return c == CorrectionSelf || c == CorrectionPrescribed
}

// AgentRole is the bit position describing who the intermediary is
// (tag 1057). The wire value is 2^role and must stay below 128.
type AgentRole int

const (
	RoleBankPaymentAgent    AgentRole = 0
	RoleBankPaymentSubagent AgentRole = 1
	RolePaymentAgent        AgentRole = 2
	RolePaymentSubagent     AgentRole = 3
	RoleAttorney            AgentRole = 4
	RoleCommissionAgent     AgentRole = 5
	RoleOtherAgent          AgentRole = 6
)

// Flag returns the wire bit-flag value 2^role, or 0 when the role is
// outside the legal (0,128) flag range.
func (r AgentRole) Flag() int {
	if r < RoleBankPaymentAgent || r > RoleOtherAgent {
		return 0
	}
	return 1 << r
}

// PlannedStatus is the 1.2-only planned status of a marked item.
type PlannedStatus int

const (
	PlannedPieceSold        PlannedStatus = 1
	PlannedMeasuredSold     PlannedStatus = 2
	PlannedPieceReturned    PlannedStatus = 3
	PlannedMeasuredReturned PlannedStatus = 4
)

// Valid reports whether the value is a legal planned status.
func (p PlannedStatus) Valid() bool {
	return p >= PlannedPieceSold && p <= PlannedMeasuredReturned
}
