package ubl_test

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/ubl"
)

const sampleInvoice = `<?xml version="1.0" encoding="UTF-8"?>
<Invoice xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
	<cbc:UBLVersionID>2.1</cbc:UBLVersionID>
	<cbc:ProfileID>TICARIFATURA</cbc:ProfileID>
	<cbc:ID>ABC2025000000017</cbc:ID>
	<cbc:UUID>0f8fad5b-d9cb-469f-a165-70867728950e</cbc:UUID>
	<cbc:IssueDate>2025-03-14</cbc:IssueDate>
	<cbc:IssueTime>10:15:00</cbc:IssueTime>
	<cbc:InvoiceTypeCode>SATIS</cbc:InvoiceTypeCode>
	<cbc:Note>Birinci not</cbc:Note>
	<cbc:Note>İkinci not</cbc:Note>
	<cbc:DocumentCurrencyCode>TRY</cbc:DocumentCurrencyCode>
	<cac:AccountingSupplierParty>
		<cac:Party>
			<cac:PartyIdentification><cbc:ID schemeID="MERSISNO">0123</cbc:ID></cac:PartyIdentification>
			<cac:PartyIdentification><cbc:ID schemeID="VKN">1234567890</cbc:ID></cac:PartyIdentification>
			<cac:PartyName><cbc:Name>Tedarik A.Ş.</cbc:Name></cac:PartyName>
			<cac:PostalAddress>
				<cbc:StreetName>Atatürk Cad. 1</cbc:StreetName>
				<cbc:CitySubdivisionName>Kadıköy</cbc:CitySubdivisionName>
				<cbc:CityName>İstanbul</cbc:CityName>
				<cac:Country><cbc:Name>Türkiye</cbc:Name></cac:Country>
			</cac:PostalAddress>
			<cac:PartyTaxScheme><cac:TaxScheme><cbc:Name>Kadıköy VD</cbc:Name></cac:TaxScheme></cac:PartyTaxScheme>
		</cac:Party>
	</cac:AccountingSupplierParty>
	<cac:AccountingCustomerParty>
		<cac:Party>
			<cac:PartyIdentification><cbc:ID schemeID="VKN">9876543210</cbc:ID></cac:PartyIdentification>
			<cac:PartyName><cbc:Name>Alıcı Ltd.</cbc:Name></cac:PartyName>
			<cac:PostalAddress><cbc:CityName>Ankara</cbc:CityName></cac:PostalAddress>
		</cac:Party>
	</cac:AccountingCustomerParty>
	<cac:PaymentMeans>
		<cbc:PaymentMeansCode>42</cbc:PaymentMeansCode>
		<cbc:PaymentDueDate>2025-04-14</cbc:PaymentDueDate>
		<cac:PayeeFinancialAccount><cbc:ID>TR000000000000000000000001</cbc:ID></cac:PayeeFinancialAccount>
	</cac:PaymentMeans>
	<cac:TaxTotal><cbc:TaxAmount currencyID="TRY">200.00</cbc:TaxAmount></cac:TaxTotal>
	<cac:LegalMonetaryTotal>
		<cbc:LineExtensionAmount currencyID="TRY">1000.00</cbc:LineExtensionAmount>
		<cbc:TaxExclusiveAmount currencyID="TRY">1000.00</cbc:TaxExclusiveAmount>
		<cbc:PayableAmount currencyID="TRY">1200.00</cbc:PayableAmount>
	</cac:LegalMonetaryTotal>
	<cac:InvoiceLine>
		<cbc:ID>1</cbc:ID>
		<cbc:InvoicedQuantity unitCode="KGM">10</cbc:InvoicedQuantity>
		<cbc:LineExtensionAmount currencyID="TRY">900.00</cbc:LineExtensionAmount>
		<cac:AllowanceCharge>
			<cbc:ChargeIndicator>false</cbc:ChargeIndicator>
			<cbc:MultiplierFactorNumeric>0.1</cbc:MultiplierFactorNumeric>
			<cbc:Amount currencyID="TRY">100.00</cbc:Amount>
		</cac:AllowanceCharge>
		<cac:TaxTotal>
			<cbc:TaxAmount currencyID="TRY">180.00</cbc:TaxAmount>
			<cac:TaxSubtotal><cbc:Percent>20</cbc:Percent></cac:TaxSubtotal>
		</cac:TaxTotal>
		<cac:Item>
			<cbc:Name>Un</cbc:Name>
			<cac:SellersItemIdentification><cbc:ID>UN-01</cbc:ID></cac:SellersItemIdentification>
		</cac:Item>
		<cac:Price><cbc:PriceAmount currencyID="TRY">100</cbc:PriceAmount></cac:Price>
	</cac:InvoiceLine>
	<cac:InvoiceLine>
		<cbc:InvoicedQuantity>1</cbc:InvoicedQuantity>
		<cbc:LineExtensionAmount currencyID="TRY">100.00</cbc:LineExtensionAmount>
		<cac:TaxTotal><cbc:TaxAmount currencyID="TRY">20.00</cbc:TaxAmount></cac:TaxTotal>
		<cac:Item></cac:Item>
		<cac:Price><cbc:PriceAmount currencyID="TRY">100</cbc:PriceAmount></cac:Price>
	</cac:InvoiceLine>
</Invoice>`

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParse(t *testing.T) {
	t.Parallel()

	inv, err := ubl.Parse([]byte(sampleInvoice))
	require.NoError(t, err)

	require.Equal(t, "ABC2025000000017", inv.Number)
	require.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", inv.UUID)
	require.Equal(t, "TICARIFATURA", inv.ProfileID)
	require.Equal(t, "Birinci not\nİkinci not", inv.Note)

	require.Equal(t, "Tedarik A.Ş.", inv.Supplier.Name)
	require.Equal(t, "1234567890", inv.Supplier.TaxNumber)
	require.Equal(t, "Kadıköy VD", inv.Supplier.TaxOffice)
	require.Equal(t, "Kadıköy", inv.Supplier.District)
	require.Equal(t, "9876543210", inv.Customer.TaxNumber)

	require.True(t, dec("200").Equal(inv.Totals.TaxTotal))
	require.True(t, dec("1200").Equal(inv.Totals.Payable))

	require.NotNil(t, inv.Payment)
	require.Equal(t, "42", inv.Payment.MeansCode)
	require.Equal(t, "2025-04-14", inv.Payment.DueDate)

	require.Len(t, inv.Lines, 2)

	first := inv.Lines[0]
	require.Equal(t, "Un", first.Description)
	require.Equal(t, "UN-01", first.ProductCode)
	require.Equal(t, "KGM", first.UnitCode)
	require.Equal(t, "Kilogram", first.Unit)
	require.True(t, dec("20").Equal(first.VATRate))
	require.True(t, dec("100").Equal(first.DiscountAmount))
	require.True(t, dec("10").Equal(first.DiscountRate))

	second := inv.Lines[1]
	require.Equal(t, 2, second.LineNumber)
	require.Equal(t, "Ürün 2", second.Description)
	require.Equal(t, ubl.DefaultUnitCode, second.UnitCode)
	require.True(t, dec("18").Equal(second.VATRate))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ubl.Parse([]byte("not xml <"))
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestExtractXML(t *testing.T) {
	t.Parallel()

	zipped := new(bytes.Buffer)
	zw := zip.NewWriter(zipped)

	readme, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = readme.Write([]byte("ignore me"))
	require.NoError(t, err)

	doc, err := zw.Create("fatura.XML")
	require.NoError(t, err)
	_, err = doc.Write([]byte(sampleInvoice))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	tests := []struct {
		name    string
		payload string
		want    string
		wantErr error
	}{
		{
			name:    "zip archive",
			payload: base64.StdEncoding.EncodeToString(zipped.Bytes()),
			want:    sampleInvoice,
		},
		{
			name:    "plain xml with line breaks",
			payload: "PEludm9pY2U+\nPC9JbnZvaWNlPg==",
			want:    "<Invoice></Invoice>",
		},
		{
			name:    "empty",
			payload: "  ",
			wantErr: ubl.ErrNoXML,
		},
		{
			name:    "not xml",
			payload: base64.StdEncoding.EncodeToString([]byte("hello")),
			wantErr: ubl.ErrNoXML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ubl.ExtractXML(tt.payload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestPackXML(t *testing.T) {
	t.Parallel()

	archive, hash, err := ubl.PackXML("ABC2025000000017.xml", []byte(sampleInvoice))
	require.NoError(t, err)
	require.Len(t, hash, 32)
	require.Regexp(t, `^[0-9A-F]{32}$`, hash)

	got, err := ubl.ExtractXML(base64.StdEncoding.EncodeToString(archive))
	require.NoError(t, err)
	require.Equal(t, sampleInvoice, string(got))
}

func TestUnitName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Adet", ubl.UnitName("C62"))
	require.Equal(t, "Litre", ubl.UnitName("LTR"))
	require.Equal(t, "Adet", ubl.UnitName("???"))
}

func TestScanLines(t *testing.T) {
	t.Parallel()

	broken := `<Envelope><cac:InvoiceLine><cbc:ID>1</cbc:ID>
		<cbc:InvoicedQuantity unitCode="LTR">3</cbc:InvoicedQuantity>
		<cbc:LineExtensionAmount currencyID="TRY">45.00</cbc:LineExtensionAmount>
		<cac:TaxTotal><cbc:TaxAmount currencyID="TRY">4.50</cbc:TaxAmount>
		<cac:TaxSubtotal><cbc:Percent>10</cbc:Percent></cac:TaxSubtotal></cac:TaxTotal>
		<cac:Item><cbc:Name>S&amp;t</cbc:Name></cac:Item>
		<cac:Price><cbc:PriceAmount currencyID="TRY">15</cbc:PriceAmount></cac:Price>
	</cac:InvoiceLine><cac:InvoiceLine><cac:Price><cbc:PriceAmount>7</cbc:PriceAmount></cac:Price></cac:InvoiceLine>`

	lines := ubl.ScanLines([]byte(broken))
	require.Len(t, lines, 2)

	require.Equal(t, "S&t", lines[0].Description)
	require.Equal(t, "LTR", lines[0].UnitCode)
	require.Equal(t, "Litre", lines[0].Unit)
	require.True(t, dec("3").Equal(lines[0].Quantity))
	require.True(t, dec("45").Equal(lines[0].LineTotal))
	require.True(t, dec("4.5").Equal(lines[0].VATAmount))
	require.True(t, dec("10").Equal(lines[0].VATRate))

	require.Equal(t, "Ürün 2", lines[1].Description)
	require.True(t, dec("7").Equal(lines[1].LineTotal))

	require.Empty(t, ubl.ScanLines([]byte("<Invoice/>")))
}

func TestPlaceholderLine(t *testing.T) {
	t.Parallel()

	l := ubl.PlaceholderLine(dec("100"), dec("18"), dec("118"))
	require.Equal(t, "Fatura Kalemi (Detay bulunamadı)", l.Description)
	require.True(t, dec("100").Equal(l.UnitPrice))
	require.True(t, dec("18").Equal(l.VATAmount))
	require.True(t, dec("118").Equal(l.LineTotal))

	l = ubl.PlaceholderLine(decimal.Zero, decimal.Zero, dec("59"))
	require.True(t, dec("59").Equal(l.UnitPrice))
}

func TestBuild_RoundTrip(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)
	due := issued.AddDate(0, 0, 30)
	id := uuid.Must(uuid.NewV4())

	inv := entity.SalesInvoice{
		InvoiceNumber:     "FAT2025000000001",
		EInvoiceUUID:      id,
		InvoiceDate:       &issued,
		DueDate:           &due,
		Note:              "Teşekkürler",
		CustomerName:      "Alıcı Ltd.",
		CustomerTaxNumber: "12345678901",
		CustomerCity:      "İzmir",
		Seller: entity.Company{
			Name:      "Satıcı A.Ş.",
			TaxNumber: "1234567890",
			TaxOffice: "Konak VD",
			City:      "İzmir",
		},
		Lines: []entity.SalesInvoiceLine{
			{Description: "Danışmanlık", Quantity: dec("2"), UnitCode: "HUR", UnitPrice: dec("500"), VATRate: dec("20")},
			{Quantity: dec("1"), UnitPrice: dec("100"), VATRate: dec("10")},
		},
	}

	doc, err := ubl.Build(inv)
	require.NoError(t, err)
	require.Contains(t, string(doc), `<cbc:ID schemeID="TCKN">12345678901</cbc:ID>`)

	got, err := ubl.Parse(doc)
	require.NoError(t, err)

	require.Equal(t, "FAT2025000000001", got.Number)
	require.Equal(t, id.String(), got.UUID)
	require.Equal(t, "2025-05-02", got.IssueDate)
	require.Equal(t, "12:30:00", got.IssueTime)
	require.Equal(t, "TEMELFATURA", got.ProfileID)
	require.Equal(t, "Satıcı A.Ş.", got.Supplier.Name)
	require.Equal(t, "1234567890", got.Supplier.TaxNumber)
	require.Equal(t, "Konak VD", got.Supplier.TaxOffice)
	require.Equal(t, "12345678901", got.Customer.TaxNumber)
	require.Equal(t, "2025-06-01", got.Payment.DueDate)

	require.True(t, dec("1100").Equal(got.Totals.LineExtension))
	require.True(t, dec("210").Equal(got.Totals.TaxTotal))
	require.True(t, dec("1310").Equal(got.Totals.Payable))

	require.Len(t, got.Lines, 2)
	require.Equal(t, "Danışmanlık", got.Lines[0].Description)
	require.Equal(t, "HUR", got.Lines[0].UnitCode)
	require.True(t, dec("1000").Equal(got.Lines[0].LineTotal))
	require.True(t, dec("200").Equal(got.Lines[0].VATAmount))
	require.True(t, dec("20").Equal(got.Lines[0].VATRate))
	require.Equal(t, "Ürün 2", got.Lines[1].Description)
	require.Equal(t, ubl.DefaultUnitCode, got.Lines[1].UnitCode)
}

func TestBuild_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ubl.Build(entity.SalesInvoice{InvoiceNumber: "FAT2025000000001"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
