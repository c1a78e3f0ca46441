package ubl

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCAC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCBC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	vatSchemeName = "KDV"
	vatTypeCode   = "0015"
)

var (
	hundred  = decimal.NewFromInt(100)
	istanbul = time.FixedZone("TRT", 3*60*60)
)

type (
	outInvoice struct {
		XMLName              xml.Name     `xml:"Invoice"`
		Xmlns                string       `xml:"xmlns,attr"`
		XmlnsCAC             string       `xml:"xmlns:cac,attr"`
		XmlnsCBC             string       `xml:"xmlns:cbc,attr"`
		UBLVersionID         string       `xml:"cbc:UBLVersionID"`
		CustomizationID      string       `xml:"cbc:CustomizationID"`
		ProfileID            string       `xml:"cbc:ProfileID"`
		ID                   string       `xml:"cbc:ID"`
		CopyIndicator        bool         `xml:"cbc:CopyIndicator"`
		UUID                 string       `xml:"cbc:UUID"`
		IssueDate            string       `xml:"cbc:IssueDate"`
		IssueTime            string       `xml:"cbc:IssueTime"`
		InvoiceTypeCode      string       `xml:"cbc:InvoiceTypeCode"`
		Note                 []string     `xml:"cbc:Note,omitempty"`
		DocumentCurrencyCode string       `xml:"cbc:DocumentCurrencyCode"`
		LineCountNumeric     int          `xml:"cbc:LineCountNumeric"`
		Supplier             outPartyWrap `xml:"cac:AccountingSupplierParty"`
		Customer             outPartyWrap `xml:"cac:AccountingCustomerParty"`
		PaymentMeans         *outPayment  `xml:"cac:PaymentMeans,omitempty"`
		TaxTotal             outTaxTotal  `xml:"cac:TaxTotal"`
		LegalMonetaryTotal   outMonetary  `xml:"cac:LegalMonetaryTotal"`
		Lines                []outLine    `xml:"cac:InvoiceLine"`
	}

	outAmount struct {
		Value    string `xml:",chardata"`
		Currency string `xml:"currencyID,attr"`
	}

	outPartyWrap struct {
		Party outParty `xml:"cac:Party"`
	}

	outParty struct {
		Identification outSchemeID  `xml:"cac:PartyIdentification>cbc:ID"`
		Name           string       `xml:"cac:PartyName>cbc:Name"`
		Address        outAddress   `xml:"cac:PostalAddress"`
		TaxScheme      outTaxScheme `xml:"cac:PartyTaxScheme"`
	}

	outSchemeID struct {
		Value    string `xml:",chardata"`
		SchemeID string `xml:"schemeID,attr"`
	}

	outAddress struct {
		StreetName string `xml:"cbc:StreetName,omitempty"`
		CityName   string `xml:"cbc:CityName"`
		Country    string `xml:"cac:Country>cbc:Name"`
	}

	outTaxScheme struct {
		Name string `xml:"cac:TaxScheme>cbc:Name"`
	}

	outPayment struct {
		Code    string `xml:"cbc:PaymentMeansCode"`
		DueDate string `xml:"cbc:PaymentDueDate"`
	}

	outTaxTotal struct {
		TaxAmount outAmount        `xml:"cbc:TaxAmount"`
		Subtotals []outTaxSubtotal `xml:"cac:TaxSubtotal"`
	}

	outTaxSubtotal struct {
		TaxableAmount outAmount `xml:"cbc:TaxableAmount"`
		TaxAmount     outAmount `xml:"cbc:TaxAmount"`
		Percent       string    `xml:"cbc:Percent"`
		SchemeName    string    `xml:"cac:TaxCategory>cac:TaxScheme>cbc:Name"`
		SchemeCode    string    `xml:"cac:TaxCategory>cac:TaxScheme>cbc:TaxTypeCode"`
	}

	outMonetary struct {
		LineExtensionAmount outAmount `xml:"cbc:LineExtensionAmount"`
		TaxExclusiveAmount  outAmount `xml:"cbc:TaxExclusiveAmount"`
		TaxInclusiveAmount  outAmount `xml:"cbc:TaxInclusiveAmount"`
		PayableAmount       outAmount `xml:"cbc:PayableAmount"`
	}

	outQuantity struct {
		Value    string `xml:",chardata"`
		UnitCode string `xml:"unitCode,attr"`
	}

	outLine struct {
		ID                  int         `xml:"cbc:ID"`
		InvoicedQuantity    outQuantity `xml:"cbc:InvoicedQuantity"`
		LineExtensionAmount outAmount   `xml:"cbc:LineExtensionAmount"`
		TaxTotal            outTaxTotal `xml:"cac:TaxTotal"`
		ItemName            string      `xml:"cac:Item>cbc:Name"`
		PriceAmount         outAmount   `xml:"cac:Price>cbc:PriceAmount"`
	}
)

// Build renders an outgoing sales invoice as a UBL-TR 2.1 document. Line totals and
// VAT amounts missing on a line are derived from quantity, price and rate; header totals
// are always recomputed from the lines.
func Build(inv entity.SalesInvoice) ([]byte, error) {
	if inv.InvoiceNumber == "" {
		return nil, fmt.Errorf("%w: invoice number is empty", entity.ErrInvalidArgument)
	}

	if len(inv.Lines) == 0 {
		return nil, fmt.Errorf("%w: invoice has no lines", entity.ErrInvalidArgument)
	}

	if inv.CustomerTaxNumber == "" || inv.Seller.TaxNumber == "" {
		return nil, fmt.Errorf("%w: seller and customer tax numbers are required", entity.ErrInvalidArgument)
	}

	currency := or(inv.Currency, defaultCurrency)
	money := func(d decimal.Decimal) outAmount {
		return outAmount{Value: d.StringFixed(2), Currency: currency}
	}

	issued := time.Now().In(istanbul)
	if inv.InvoiceDate != nil {
		issued = inv.InvoiceDate.In(istanbul)
	}

	doc := outInvoice{
		Xmlns:                nsInvoice,
		XmlnsCAC:             nsCAC,
		XmlnsCBC:             nsCBC,
		UBLVersionID:         "2.1",
		CustomizationID:      "TR1.2",
		ProfileID:            or(inv.ProfileID, defaultProfile),
		ID:                   inv.InvoiceNumber,
		UUID:                 inv.EInvoiceUUID.String(),
		IssueDate:            issued.Format(time.DateOnly),
		IssueTime:            issued.Format(time.TimeOnly),
		InvoiceTypeCode:      or(inv.InvoiceType, defaultInvoiceType),
		DocumentCurrencyCode: currency,
		LineCountNumeric:     len(inv.Lines),
		Supplier: outPartyWrap{Party: party(
			inv.Seller.Name, inv.Seller.TaxNumber, inv.Seller.TaxOffice, inv.Seller.Address, inv.Seller.City,
		)},
		Customer: outPartyWrap{Party: party(
			inv.CustomerName, inv.CustomerTaxNumber, inv.CustomerTaxOffice, inv.CustomerAddress, inv.CustomerCity,
		)},
	}

	if inv.Note != "" {
		doc.Note = []string{inv.Note}
	}

	if inv.DueDate != nil {
		doc.PaymentMeans = &outPayment{Code: "1", DueDate: inv.DueDate.In(istanbul).Format(time.DateOnly)}
	}

	var (
		subtotal = decimal.Zero
		taxTotal = decimal.Zero
		byRate   = map[string]*[2]decimal.Decimal{}
	)

	for i, l := range inv.Lines {
		lineTotal := l.LineTotal
		if lineTotal.IsZero() {
			lineTotal = l.Quantity.Mul(l.UnitPrice).Round(2)
		}

		vat := l.VATAmount
		if vat.IsZero() {
			vat = lineTotal.Mul(l.VATRate).Div(hundred).Round(2)
		}

		subtotal = subtotal.Add(lineTotal)
		taxTotal = taxTotal.Add(vat)

		key := l.VATRate.String()
		if byRate[key] == nil {
			byRate[key] = &[2]decimal.Decimal{}
		}

		byRate[key][0] = byRate[key][0].Add(lineTotal)
		byRate[key][1] = byRate[key][1].Add(vat)

		number := l.LineNumber
		if number <= 0 {
			number = i + 1
		}

		doc.Lines = append(doc.Lines, outLine{
			ID:                  number,
			InvoicedQuantity:    outQuantity{Value: l.Quantity.String(), UnitCode: or(l.UnitCode, DefaultUnitCode)},
			LineExtensionAmount: money(lineTotal),
			TaxTotal: outTaxTotal{
				TaxAmount: money(vat),
				Subtotals: []outTaxSubtotal{vatSubtotal(money, lineTotal, vat, l.VATRate)},
			},
			ItemName:    or(l.Description, fmt.Sprintf("Ürün %d", number)),
			PriceAmount: money(l.UnitPrice),
		})
	}

	rates := make([]string, 0, len(byRate))
	for k := range byRate {
		rates = append(rates, k)
	}

	sort.Slice(rates, func(i, j int) bool {
		return decimal.RequireFromString(rates[i]).LessThan(decimal.RequireFromString(rates[j]))
	})

	doc.TaxTotal.TaxAmount = money(taxTotal)
	for _, k := range rates {
		doc.TaxTotal.Subtotals = append(doc.TaxTotal.Subtotals,
			vatSubtotal(money, byRate[k][0], byRate[k][1], decimal.RequireFromString(k)))
	}

	total := subtotal.Add(taxTotal)
	doc.LegalMonetaryTotal = outMonetary{
		LineExtensionAmount: money(subtotal),
		TaxExclusiveAmount:  money(subtotal),
		TaxInclusiveAmount:  money(total),
		PayableAmount:       money(total),
	}

	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal invoice: %w", err)
	}

	return append([]byte(xml.Header), b...), nil
}

func vatSubtotal(money func(decimal.Decimal) outAmount, taxable, vat, rate decimal.Decimal) outTaxSubtotal {
	return outTaxSubtotal{
		TaxableAmount: money(taxable),
		TaxAmount:     money(vat),
		Percent:       rate.String(),
		SchemeName:    vatSchemeName,
		SchemeCode:    vatTypeCode,
	}
}

func party(name, taxNumber, taxOffice, address, city string) outParty {
	scheme := "VKN"
	if len(taxNumber) == 11 {
		scheme = "TCKN"
	}

	return outParty{
		Identification: outSchemeID{Value: taxNumber, SchemeID: scheme},
		Name:           name,
		Address:        outAddress{StreetName: address, CityName: city, Country: "Türkiye"},
		TaxScheme:      outTaxScheme{Name: taxOffice},
	}
}
