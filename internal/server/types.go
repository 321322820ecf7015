package server

// OrderRequest is the bridge payload describing a full receipt: the
// order envelope plus its positions, payments and optional blocks, all
// submitted in one call.
type OrderRequest struct {
	ID              string `json:"id"`
	Type            int    `json:"type"`
	CustomerContact string `json:"customerContact"`
	TaxationSystem  int    `json:"taxationSystem"`
	Group           string `json:"group,omitempty"`
	Key             string `json:"key,omitempty"`
	FFDVersion      string `json:"ffdVersion"`

	// Format 1.2 only.
	IgnoreMarkingCheck bool `json:"ignoreMarkingCheck,omitempty"`

	Positions []PositionRequest     `json:"positions"`
	Payments  []PaymentRequest      `json:"payments"`
	Agent     *AgentRequest         `json:"agent,omitempty"`
	Attribute *UserAttributeRequest `json:"additionalUserAttribute,omitempty"`
}

// PositionRequest is one receipt line in the bridge payload. Money
// fields are decimal strings so no precision is lost in transit.
type PositionRequest struct {
	Quantity           string `json:"quantity"`
	Price              string `json:"price"`
	Tax                int    `json:"tax"`
	Text               string `json:"text"`
	PaymentMethodType  int    `json:"paymentMethodType,omitempty"`
	PaymentSubjectType int    `json:"paymentSubjectType,omitempty"`
	UnitOfMeasurement  string `json:"unitOfMeasurement,omitempty"`
	ItemCode           string `json:"itemCode,omitempty"`

	Supplier *SupplierRequest `json:"supplier,omitempty"`
	Agent    *AgentRequest    `json:"agent,omitempty"`
}

// PaymentRequest is one payment row in the bridge payload.
type PaymentRequest struct {
	Type   int    `json:"type"`
	Amount string `json:"amount"`
}

// SupplierRequest is the goods supplier block in the bridge payload.
type SupplierRequest struct {
	Name         string   `json:"name,omitempty"`
	PhoneNumbers []string `json:"phoneNumbers,omitempty"`
	INN          string   `json:"inn,omitempty"`
}

// AgentRequest is the intermediary block in the bridge payload.
type AgentRequest struct {
	Role                   int      `json:"role"`
	TransferOperatorPhones []string `json:"transferOperatorPhones,omitempty"`
	AgentOperation         string   `json:"agentOperation,omitempty"`
	AgentPhones            []string `json:"agentPhones,omitempty"`
	OperatorPhones         []string `json:"operatorPhones,omitempty"`
	OperatorName           string   `json:"operatorName,omitempty"`
	OperatorAddress        string   `json:"operatorAddress,omitempty"`
	OperatorINN            string   `json:"operatorInn,omitempty"`
	SupplierPhones         []string `json:"supplierPhones,omitempty"`
}

// UserAttributeRequest is the additional user attribute block.
type UserAttributeRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CorrectionRequest is the bridge payload for a correction receipt.
type CorrectionRequest struct {
	ID                  string `json:"id"`
	CorrectionType      int    `json:"correctionType"`
	Type                int    `json:"type"`
	Description         string `json:"description"`
	CauseDocumentDate   string `json:"causeDocumentDate"`
	CauseDocumentNumber string `json:"causeDocumentNumber"`
	TaxationSystem      int    `json:"taxationSystem"`
	Group               string `json:"group,omitempty"`
	Key                 string `json:"key,omitempty"`
	FFDVersion          string `json:"ffdVersion"`

	TotalSum            string    `json:"totalSum"`
	CashSum             string    `json:"cashSum"`
	ECashSum            string    `json:"eCashSum"`
	PrepaymentSum       string    `json:"prepaymentSum"`
	PostpaymentSum      string    `json:"postpaymentSum"`
	OtherPaymentTypeSum string    `json:"otherPaymentTypeSum"`
	TaxSums             [6]string `json:"taxSums"`

	Positions []PositionRequest `json:"positions,omitempty"`
	Payments  []PaymentRequest  `json:"payments,omitempty"`
}

// SubmitResponse reports the registrar outcome for a submission.
type SubmitResponse struct {
	ID         string `json:"id"`
	Accepted   bool   `json:"accepted"`
	StatusCode int    `json:"statusCode"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
