// Package ubl reads and writes UBL-TR 2.1 e-invoice documents.
package ubl

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html/charset"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const (
	defaultCurrency    = "TRY"
	defaultInvoiceType = "SATIS"
	defaultProfile     = "TEMELFATURA"
)

var defaultVATRate = decimal.NewFromInt(18)

type xmlInvoice struct {
	ID                      string              `xml:"ID"`
	UUID                    string              `xml:"UUID"`
	ProfileID               string              `xml:"ProfileID"`
	IssueDate               string              `xml:"IssueDate"`
	IssueTime               string              `xml:"IssueTime"`
	DueDate                 string              `xml:"DueDate"`
	InvoiceTypeCode         string              `xml:"InvoiceTypeCode"`
	Notes                   []string            `xml:"Note"`
	DocumentCurrencyCode    string              `xml:"DocumentCurrencyCode"`
	PricingExchangeRate     *xmlExchangeRate    `xml:"PricingExchangeRate"`
	AccountingSupplierParty xmlParty            `xml:"AccountingSupplierParty>Party"`
	AccountingCustomerParty xmlParty            `xml:"AccountingCustomerParty>Party"`
	PaymentMeans            []xmlPaymentMeans   `xml:"PaymentMeans"`
	PaymentTermsNote        string              `xml:"PaymentTerms>Note"`
	TaxAmount               []string            `xml:"TaxTotal>TaxAmount"`
	LegalMonetaryTotal      xmlLegalMonetaryTot `xml:"LegalMonetaryTotal"`
	Lines                   []xmlLine           `xml:"InvoiceLine"`
}

type xmlExchangeRate struct {
	SourceCurrencyCode string `xml:"SourceCurrencyCode"`
	TargetCurrencyCode string `xml:"TargetCurrencyCode"`
	CalculationRate    string `xml:"CalculationRate"`
	Date               string `xml:"Date"`
}

type xmlSchemeID struct {
	Value    string `xml:",chardata"`
	SchemeID string `xml:"schemeID,attr"`
}

type xmlTaxScheme struct {
	CompanyID string `xml:"CompanyID"`
	Name      string `xml:"TaxScheme>Name"`
}

type xmlParty struct {
	Identifications []xmlSchemeID  `xml:"PartyIdentification>ID"`
	Name            string         `xml:"PartyName>Name"`
	Street          string         `xml:"PostalAddress>StreetName"`
	District        string         `xml:"PostalAddress>CitySubdivisionName"`
	City            string         `xml:"PostalAddress>CityName"`
	Country         string         `xml:"PostalAddress>Country>Name"`
	TaxSchemes      []xmlTaxScheme `xml:"PartyTaxScheme"`
	Email           string         `xml:"Contact>ElectronicMail"`
	Phone           string         `xml:"Contact>Telephone"`
	FirstName       string         `xml:"Person>FirstName"`
	FamilyName      string         `xml:"Person>FamilyName"`
}

type xmlPaymentMeans struct {
	Code       string `xml:"PaymentMeansCode"`
	DueDate    string `xml:"PaymentDueDate"`
	Channel    string `xml:"PaymentChannelCode"`
	IBAN       string `xml:"PayeeFinancialAccount>ID"`
	BankBranch string `xml:"PayeeFinancialAccount>FinancialInstitutionBranch>Name"`
}

type xmlLegalMonetaryTot struct {
	LineExtensionAmount  string `xml:"LineExtensionAmount"`
	TaxExclusiveAmount   string `xml:"TaxExclusiveAmount"`
	AllowanceTotalAmount string `xml:"AllowanceTotalAmount"`
	PayableAmount        string `xml:"PayableAmount"`
}

type xmlQuantity struct {
	Value    string `xml:",chardata"`
	UnitCode string `xml:"unitCode,attr"`
}

type xmlAllowanceCharge struct {
	ChargeIndicator string `xml:"ChargeIndicator"`
	Multiplier      string `xml:"MultiplierFactorNumeric"`
	Amount          string `xml:"Amount"`
}

type xmlLine struct {
	ID                  string               `xml:"ID"`
	InvoicedQuantity    xmlQuantity          `xml:"InvoicedQuantity"`
	LineExtensionAmount string               `xml:"LineExtensionAmount"`
	AllowanceCharges    []xmlAllowanceCharge `xml:"AllowanceCharge"`
	TaxAmount           string               `xml:"TaxTotal>TaxAmount"`
	SubtotalPercents    []string             `xml:"TaxTotal>TaxSubtotal>Percent"`
	CategoryPercents    []string             `xml:"TaxTotal>TaxSubtotal>TaxCategory>Percent"`
	ItemName            string               `xml:"Item>Name"`
	ItemDescription     string               `xml:"Item>Description"`
	SellersItemID       string               `xml:"Item>SellersItemIdentification>ID"`
	GTIPCode            string               `xml:"Item>CommodityClassification>ItemClassificationCode"`
	PriceAmount         string               `xml:"Price>PriceAmount"`
}

// Parse decodes a UBL-TR invoice. Missing optional fields take the GİB defaults.
func Parse(doc []byte) (entity.Invoice, error) {
	var x xmlInvoice

	dec := xml.NewDecoder(bytes.NewReader(doc))
	dec.CharsetReader = charset.NewReaderLabel

	err := dec.Decode(&x)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("%w: decode invoice xml: %w", entity.ErrIncorrectRequestBody, err)
	}

	inv := entity.Invoice{
		Number:      trim(x.ID),
		UUID:        trim(x.UUID),
		IssueDate:   trim(x.IssueDate),
		IssueTime:   trim(x.IssueTime),
		DueDate:     trim(x.DueDate),
		Currency:    or(trim(x.DocumentCurrencyCode), defaultCurrency),
		InvoiceType: or(trim(x.InvoiceTypeCode), defaultInvoiceType),
		ProfileID:   or(trim(x.ProfileID), defaultProfile),
		Note:        joinNotes(x.Notes),
		Supplier:    supplierParty(x.AccountingSupplierParty),
		Customer:    customerParty(x.AccountingCustomerParty),
		Lines:       make([]entity.InvoiceLine, 0, len(x.Lines)),
	}

	if r := x.PricingExchangeRate; r != nil && trim(r.CalculationRate) != "" {
		inv.ExchangeRate = &entity.ExchangeRate{
			SourceCurrency: trim(r.SourceCurrencyCode),
			TargetCurrency: trim(r.TargetCurrencyCode),
			Rate:           amount(r.CalculationRate),
			Date:           trim(r.Date),
		}
	}

	inv.Totals = entity.InvoiceTotals{
		LineExtension: amount(x.LegalMonetaryTotal.LineExtensionAmount),
		Allowance:     amount(x.LegalMonetaryTotal.AllowanceTotalAmount),
		TaxExclusive:  amount(x.LegalMonetaryTotal.TaxExclusiveAmount),
		Payable:       amount(x.LegalMonetaryTotal.PayableAmount),
	}

	if len(x.TaxAmount) > 0 {
		inv.Totals.TaxTotal = amount(x.TaxAmount[0])
	}

	if inv.Totals.Payable.IsZero() {
		inv.Totals.Payable = inv.Totals.TaxExclusive.Add(inv.Totals.TaxTotal)
	}

	if len(x.PaymentMeans) > 0 || trim(x.PaymentTermsNote) != "" {
		p := &entity.InvoicePayment{TermsNote: trim(x.PaymentTermsNote)}

		if len(x.PaymentMeans) > 0 {
			pm := x.PaymentMeans[0]
			p.MeansCode = trim(pm.Code)
			p.ChannelCode = trim(pm.Channel)
			p.IBAN = trim(pm.IBAN)
			p.BankBranch = trim(pm.BankBranch)
			p.DueDate = trim(pm.DueDate)
		}

		inv.Payment = p
	}

	for i, l := range x.Lines {
		inv.Lines = append(inv.Lines, line(l, i))
	}

	return inv, nil
}

func line(l xmlLine, index int) entity.InvoiceLine {
	unitCode := or(trim(l.InvoicedQuantity.UnitCode), DefaultUnitCode)

	qty := amount(l.InvoicedQuantity.Value)
	if trim(l.InvoicedQuantity.Value) == "" {
		qty = decimal.NewFromInt(1)
	}

	lineNumber, err := strconv.Atoi(trim(l.ID))
	if err != nil || lineNumber <= 0 {
		lineNumber = index + 1
	}

	out := entity.InvoiceLine{
		LineNumber:  lineNumber,
		Description: or(trim(l.ItemName), trim(l.ItemDescription), fmt.Sprintf("Ürün %d", index+1)),
		ProductCode: trim(l.SellersItemID),
		Quantity:    qty,
		UnitCode:    unitCode,
		Unit:        UnitName(unitCode),
		UnitPrice:   amount(l.PriceAmount),
		VATRate:     defaultVATRate,
		VATAmount:   amount(l.TaxAmount),
		LineTotal:   amount(l.LineExtensionAmount),
		GTIPCode:    trim(l.GTIPCode),
	}

	switch {
	case len(l.SubtotalPercents) > 0 && trim(l.SubtotalPercents[0]) != "":
		out.VATRate = amount(l.SubtotalPercents[0])
	case len(l.CategoryPercents) > 0 && trim(l.CategoryPercents[0]) != "":
		out.VATRate = amount(l.CategoryPercents[0])
	}

	for _, ac := range l.AllowanceCharges {
		if strings.EqualFold(trim(ac.ChargeIndicator), "true") {
			continue
		}

		out.DiscountAmount = out.DiscountAmount.Add(amount(ac.Amount))

		if m := trim(ac.Multiplier); m != "" {
			out.DiscountRate = amount(m).Mul(decimal.NewFromInt(100))
		}
	}

	return out
}

func supplierParty(p xmlParty) entity.InvoiceParty {
	out := partyBase(p)

	out.Name = trim(p.Name)
	if out.Name == "" {
		out.Name = strings.TrimSpace(trim(p.FirstName) + " " + trim(p.FamilyName))
	}

	for _, id := range p.Identifications {
		scheme := strings.ToUpper(trim(id.SchemeID))
		if (scheme == "VKN" || scheme == "TCKN") && trim(id.Value) != "" {
			out.TaxNumber = trim(id.Value)
			break
		}
	}

	if out.TaxNumber == "" {
		for _, ts := range p.TaxSchemes {
			if v := trim(ts.CompanyID); v != "" {
				out.TaxNumber = v
			}
		}
	}

	return out
}

func customerParty(p xmlParty) entity.InvoiceParty {
	out := partyBase(p)
	out.Name = trim(p.Name)

	for _, ts := range p.TaxSchemes {
		if v := trim(ts.CompanyID); v != "" {
			out.TaxNumber = v
		}
	}

	if out.TaxNumber == "" {
		for _, id := range p.Identifications {
			scheme := strings.ToUpper(trim(id.SchemeID))
			if scheme == "VKN" || scheme == "TCKN" {
				out.TaxNumber = trim(id.Value)
				break
			}
		}
	}

	if out.Name == "" {
		out.Name = strings.TrimSpace(trim(p.FirstName) + " " + trim(p.FamilyName))
	}

	return out
}

func partyBase(p xmlParty) entity.InvoiceParty {
	out := entity.InvoiceParty{
		Address:  trim(p.Street),
		District: trim(p.District),
		City:     trim(p.City),
		Country:  trim(p.Country),
		Email:    trim(p.Email),
		Phone:    trim(p.Phone),
	}

	for _, ts := range p.TaxSchemes {
		if v := trim(ts.Name); v != "" {
			out.TaxOffice = v
			break
		}
	}

	return out
}

func joinNotes(notes []string) string {
	out := make([]string, 0, len(notes))

	for _, n := range notes {
		if n = trim(n); n != "" {
			out = append(out, n)
		}
	}

	return strings.Join(out, "\n")
}

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(trim(s))
	if err != nil {
		return decimal.Zero
	}

	return d
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func or(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
