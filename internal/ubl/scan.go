package ubl

import (
	"fmt"
	"html"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
)

var (
	reLineBlock = regexp.MustCompile(`(?s)<(?:\w+:)?InvoiceLine[\s>].*?</(?:\w+:)?InvoiceLine>`)
	reItemName  = regexp.MustCompile(`(?s)<(?:\w+:)?Item[\s>].*?<(?:\w+:)?Name[^>]*>(.*?)</(?:\w+:)?Name>`)
	reQuantity  = regexp.MustCompile(`<(?:\w+:)?InvoicedQuantity([^>]*)>([^<]*)<`)
	reUnitCode  = regexp.MustCompile(`unitCode="([^"]*)"`)
	rePrice     = regexp.MustCompile(`<(?:\w+:)?PriceAmount[^>]*>([^<]*)<`)
	reLineTotal = regexp.MustCompile(`<(?:\w+:)?LineExtensionAmount[^>]*>([^<]*)<`)
	reTaxAmount = regexp.MustCompile(`<(?:\w+:)?TaxAmount[^>]*>([^<]*)<`)
	rePercent   = regexp.MustCompile(`<(?:\w+:)?Percent[^>]*>([^<]*)<`)
)

// ScanLines pulls invoice lines out of a document that does not decode as UBL,
// for example one with a broken envelope. Each InvoiceLine block is read on its own.
func ScanLines(doc []byte) []entity.InvoiceLine {
	blocks := reLineBlock.FindAll(doc, -1)
	out := make([]entity.InvoiceLine, 0, len(blocks))

	for i, b := range blocks {
		l := entity.InvoiceLine{
			LineNumber:  i + 1,
			Description: fmt.Sprintf("Ürün %d", i+1),
			Quantity:    decimal.NewFromInt(1),
			UnitCode:    DefaultUnitCode,
			VATRate:     defaultVATRate,
		}

		if m := reItemName.FindSubmatch(b); m != nil && trim(string(m[1])) != "" {
			l.Description = html.UnescapeString(trim(string(m[1])))
		}

		if m := reQuantity.FindSubmatch(b); m != nil {
			if q := amount(string(m[2])); !q.IsZero() {
				l.Quantity = q
			}

			if u := reUnitCode.FindSubmatch(m[1]); u != nil && trim(string(u[1])) != "" {
				l.UnitCode = trim(string(u[1]))
			}
		}

		l.Unit = UnitName(l.UnitCode)
		l.UnitPrice = firstAmount(rePrice, b)
		l.LineTotal = firstAmount(reLineTotal, b)
		l.VATAmount = firstAmount(reTaxAmount, b)

		if m := rePercent.FindSubmatch(b); m != nil && trim(string(m[1])) != "" {
			l.VATRate = amount(string(m[1]))
		}

		if l.LineTotal.IsZero() {
			l.LineTotal = l.Quantity.Mul(l.UnitPrice)
		}

		out = append(out, l)
	}

	return out
}

// PlaceholderLine is shown when a document carries no readable lines at all. The unit price is the
// net total when known, otherwise the payable amount.
func PlaceholderLine(taxExclusive, taxTotal, payable decimal.Decimal) entity.InvoiceLine {
	price := taxExclusive
	if price.IsZero() {
		price = payable
	}

	return entity.InvoiceLine{
		LineNumber:  1,
		Description: "Fatura Kalemi (Detay bulunamadı)",
		Quantity:    decimal.NewFromInt(1),
		UnitCode:    DefaultUnitCode,
		Unit:        UnitName(DefaultUnitCode),
		UnitPrice:   price,
		VATRate:     defaultVATRate,
		VATAmount:   taxTotal,
		LineTotal:   payable,
	}
}

func firstAmount(re *regexp.Regexp, b []byte) decimal.Decimal {
	m := re.FindSubmatch(b)
	if m == nil {
		return decimal.Zero
	}

	return amount(string(m[1]))
}
