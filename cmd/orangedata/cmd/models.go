package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rezonia/orangedata-go/internal/money"
	"github.com/rezonia/orangedata-go/pkg/orangedata"
)

// receiptFile is the on-disk description of a receipt. Money fields
// are decimal strings so shell-generated files keep exact precision.
type receiptFile struct {
	ID              string `json:"id"`
	Type            int    `json:"type"`
	CustomerContact string `json:"customerContact"`
	TaxationSystem  int    `json:"taxationSystem"`
	Group           string `json:"group,omitempty"`
	Key             string `json:"key,omitempty"`
	FFDVersion      string `json:"ffdVersion"`

	// Format 1.2 only.
	IgnoreMarkingCheck bool `json:"ignoreMarkingCheck,omitempty"`

	Positions []positionFile `json:"positions"`
	Payments  []paymentFile  `json:"payments"`
	Attribute *attributeFile `json:"additionalUserAttribute,omitempty"`
}

type positionFile struct {
	Quantity           string `json:"quantity"`
	Price              string `json:"price"`
	Tax                int    `json:"tax"`
	Text               string `json:"text"`
	PaymentMethodType  int    `json:"paymentMethodType,omitempty"`
	PaymentSubjectType int    `json:"paymentSubjectType,omitempty"`
	UnitOfMeasurement  string `json:"unitOfMeasurement,omitempty"`
	ItemCode           string `json:"itemCode,omitempty"`
}

type paymentFile struct {
	Type   int    `json:"type"`
	Amount string `json:"amount"`
}

type attributeFile struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// correctionFile is the on-disk description of a correction receipt.
type correctionFile struct {
	ID                  string         `json:"id"`
	CorrectionType      int            `json:"correctionType"`
	Type                int            `json:"type"`
	Description         string         `json:"description"`
	CauseDocumentDate   string         `json:"causeDocumentDate"`
	CauseDocumentNumber string         `json:"causeDocumentNumber"`
	TaxationSystem      int            `json:"taxationSystem"`
	Group               string         `json:"group,omitempty"`
	Key                 string         `json:"key,omitempty"`
	FFDVersion          string         `json:"ffdVersion"`
	TotalSum            string         `json:"totalSum"`
	CashSum             string         `json:"cashSum"`
	ECashSum            string         `json:"eCashSum"`
	PrepaymentSum       string         `json:"prepaymentSum"`
	PostpaymentSum      string         `json:"postpaymentSum"`
	OtherPaymentTypeSum string         `json:"otherPaymentTypeSum"`
	TaxSums             [6]string      `json:"taxSums"`
	Positions           []positionFile `json:"positions,omitempty"`
	Payments            []paymentFile  `json:"payments,omitempty"`
}

func readReceiptFile(path string) (*receiptFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt file: %w", err)
	}
	var rf receiptFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse receipt file: %w", err)
	}
	if rf.ID == "" {
		rf.ID = uuid.NewString()[:32]
		printVerbose("generated document id %s\n", rf.ID)
	}
	if rf.FFDVersion == "" {
		rf.FFDVersion = string(orangedata.Revision105)
	}
	return &rf, nil
}

func readCorrectionFile(path string) (*correctionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read correction file: %w", err)
	}
	var cf correctionFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse correction file: %w", err)
	}
	if cf.ID == "" {
		cf.ID = uuid.NewString()[:32]
		printVerbose("generated document id %s\n", cf.ID)
	}
	if cf.FFDVersion == "" {
		cf.FFDVersion = string(orangedata.Revision105)
	}
	return &cf, nil
}

// applyReceipt replays the file through the client builder.
func applyReceipt(client *orangedata.Client, rf *receiptFile) error {
	err := client.CreateOrder(orangedata.OrderParams{
		ID:                 rf.ID,
		Type:               orangedata.OperationType(rf.Type),
		CustomerContact:    rf.CustomerContact,
		TaxationSystem:     orangedata.TaxationSystem(rf.TaxationSystem),
		Group:              rf.Group,
		Key:                rf.Key,
		Revision:           orangedata.Revision(rf.FFDVersion),
		IgnoreMarkingCheck: rf.IgnoreMarkingCheck,
	})
	if err != nil {
		return err
	}

	for _, p := range rf.Positions {
		quantity, err := money.FromString(p.Quantity)
		if err != nil {
			return fmt.Errorf("position quantity %q: %w", p.Quantity, err)
		}
		price, err := money.FromString(p.Price)
		if err != nil {
			return fmt.Errorf("position price %q: %w", p.Price, err)
		}
		err = client.AddPosition(orangedata.PositionParams{
			Quantity:           quantity,
			Price:              price,
			Tax:                orangedata.VATRate(p.Tax),
			Text:               p.Text,
			PaymentMethodType:  orangedata.PaymentMethodType(p.PaymentMethodType),
			PaymentSubjectType: orangedata.PaymentSubjectType(p.PaymentSubjectType),
			UnitOfMeasurement:  p.UnitOfMeasurement,
			ItemCode:           p.ItemCode,
		})
		if err != nil {
			return err
		}
	}
	for _, p := range rf.Payments {
		amount, err := money.FromString(p.Amount)
		if err != nil {
			return fmt.Errorf("payment amount %q: %w", p.Amount, err)
		}
		err = client.AddPayment(orangedata.PaymentParams{
			Type:   orangedata.PaymentType(p.Type),
			Amount: amount,
		})
		if err != nil {
			return err
		}
	}
	if rf.Attribute != nil {
		if err := client.AddUserAttribute(rf.Attribute.Name, rf.Attribute.Value); err != nil {
			return err
		}
	}
	return nil
}

// applyCorrection replays the correction file through the client.
func applyCorrection(client *orangedata.Client, cf *correctionFile) error {
	date, err := time.Parse("2006-01-02", cf.CauseDocumentDate)
	if err != nil {
		return fmt.Errorf("causeDocumentDate %q: expected YYYY-MM-DD", cf.CauseDocumentDate)
	}

	parse := func(s string) (money.Amount, error) {
		if s == "" {
			return money.Zero, nil
		}
		return money.FromString(s)
	}
	var sums [6]money.Amount
	for i, s := range []string{
		cf.TotalSum, cf.CashSum, cf.ECashSum,
		cf.PrepaymentSum, cf.PostpaymentSum, cf.OtherPaymentTypeSum,
	} {
		if sums[i], err = parse(s); err != nil {
			return fmt.Errorf("correction sum %q: %w", s, err)
		}
	}
	var taxSums [6]money.Amount
	for i, s := range cf.TaxSums {
		if taxSums[i], err = parse(s); err != nil {
			return fmt.Errorf("correction tax sum %q: %w", s, err)
		}
	}

	err = client.CreateCorrection(orangedata.CorrectionParams{
		ID:                  cf.ID,
		CorrectionType:      orangedata.CorrectionType(cf.CorrectionType),
		Type:                orangedata.OperationType(cf.Type),
		Description:         cf.Description,
		CauseDocumentDate:   date,
		CauseDocumentNumber: cf.CauseDocumentNumber,
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
		TaxationSystem:      orangedata.TaxationSystem(cf.TaxationSystem),
		Group:               cf.Group,
		Key:                 cf.Key,
		Revision:            orangedata.Revision(cf.FFDVersion),
	})
	if err != nil {
		return err
	}

	for _, p := range cf.Positions {
		quantity, err := money.FromString(p.Quantity)
		if err != nil {
			return fmt.Errorf("position quantity %q: %w", p.Quantity, err)
		}
		price, err := money.FromString(p.Price)
		if err != nil {
			return fmt.Errorf("position price %q: %w", p.Price, err)
		}
		err = client.AddCorrectionPosition(orangedata.PositionParams{
			Quantity:           quantity,
			Price:              price,
			Tax:                orangedata.VATRate(p.Tax),
			Text:               p.Text,
			PaymentMethodType:  orangedata.PaymentMethodType(p.PaymentMethodType),
			PaymentSubjectType: orangedata.PaymentSubjectType(p.PaymentSubjectType),
			ItemCode:           p.ItemCode,
		})
		if err != nil {
			return err
		}
	}
	for _, p := range cf.Payments {
		amount, err := money.FromString(p.Amount)
		if err != nil {
			return fmt.Errorf("payment amount %q: %w", p.Amount, err)
		}
		err = client.AddCorrectionPayment(orangedata.PaymentParams{
			Type:   orangedata.PaymentType(p.Type),
			Amount: amount,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
