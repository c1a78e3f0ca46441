// Package nilvera talks to the Nilvera e-invoice REST API.
package nilvera

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/pkg/config"
	"github.com/samandr77/microservices/erp/pkg/transport"
)

const (
	detailsPath = "/api/e-fatura-api/gelen-faturalar/detaylari-getirir"

	pdfMagic       = "%PDF"
	pdfBase64Magic = "JVBERi0"
	maxErrBody     = 200
	maxPDFSize     = 50 << 20
)

type Client struct {
	http    *http.Client
	testURL string
	prodURL string
}

func NewClient(cfg config.Nilvera) *Client {
	return &Client{
		http:    transport.NewRetryClient(cfg.RetryAttempts, cfg.Timeout),
		testURL: strings.TrimRight(cfg.TestURL, "/"),
		prodURL: strings.TrimRight(cfg.ProdURL, "/"),
	}
}

// Details is an incoming invoice as Nilvera describes it. Raw keeps every field of the answer.
type Details struct {
	Raw          map[string]any
	Lines        []entity.InvoiceLine
	TaxExclusive decimal.Decimal
	TaxTotal     decimal.Decimal
	Payable      decimal.Decimal
}

type detailsRequest struct {
	ETTN string `json:"ettn"`
	UUID string `json:"uuid"`
}

type detailsResponse struct {
	TaxExclusiveAmount decimal.NullDecimal `json:"TaxExclusiveAmount"`
	TaxTotalAmount     decimal.NullDecimal `json:"TaxTotalAmount"`
	PayableAmount      decimal.NullDecimal `json:"PayableAmount"`
	Lines              []detailsLine       `json:"Lines"`
}

type detailsLine struct {
	Description    string              `json:"Description"`
	Name           string              `json:"Name"`
	ProductCode    string              `json:"ProductCode"`
	ItemCode       string              `json:"ItemCode"`
	Quantity       decimal.NullDecimal `json:"Quantity"`
	Unit           string              `json:"Unit"`
	UnitCode       string              `json:"UnitCode"`
	UnitPrice      decimal.NullDecimal `json:"UnitPrice"`
	Price          decimal.NullDecimal `json:"Price"`
	VATRate        decimal.NullDecimal `json:"VATRate"`
	TaxRate        decimal.NullDecimal `json:"TaxRate"`
	VATAmount      decimal.NullDecimal `json:"VATAmount"`
	TaxAmount      decimal.NullDecimal `json:"TaxAmount"`
	TotalAmount    decimal.NullDecimal `json:"TotalAmount"`
	LineTotal      decimal.NullDecimal `json:"LineTotal"`
	DiscountRate   decimal.NullDecimal `json:"DiscountRate"`
	DiscountAmount decimal.NullDecimal `json:"DiscountAmount"`
	LineNumber     int                 `json:"LineNumber"`
}

// InvoiceDetails fetches the detail record of an incoming e-fatura. The envelope UUID is the ETTN
// when known, otherwise the invoice UUID stands in for it.
func (c *Client) InvoiceDetails(ctx context.Context, creds entity.NilveraCredentials, invoiceID, envelopeUUID string) (Details, error) {
	if envelopeUUID == "" {
		envelopeUUID = invoiceID
	}

	j, err := json.Marshal(detailsRequest{ETTN: envelopeUUID, UUID: invoiceID})
	if err != nil {
		return Details{}, fmt.Errorf("marshal request: %w", err)
	}

	body, _, err := c.do(ctx, creds, http.MethodPost, detailsPath, bytes.NewReader(j), "application/json")
	if err != nil {
		return Details{}, err
	}

	var resp detailsResponse

	err = json.Unmarshal(body, &resp)
	if err != nil {
		return Details{}, fmt.Errorf("%w: decode details: %w", entity.ErrProvider, err)
	}

	out := Details{
		TaxExclusive: resp.TaxExclusiveAmount.Decimal,
		TaxTotal:     resp.TaxTotalAmount.Decimal,
		Payable:      resp.PayableAmount.Decimal,
		Lines:        make([]entity.InvoiceLine, 0, len(resp.Lines)),
	}

	err = json.Unmarshal(body, &out.Raw)
	if err != nil {
		return Details{}, fmt.Errorf("%w: decode details: %w", entity.ErrProvider, err)
	}

	for i, l := range resp.Lines {
		out.Lines = append(out.Lines, l.toEntity(i))
	}

	return out, nil
}

// InvoiceXML returns the UBL document of an incoming invoice.
func (c *Client) InvoiceXML(ctx context.Context, creds entity.NilveraCredentials, invoiceID string) ([]byte, error) {
	body, _, err := c.do(ctx, creds, http.MethodGet, "/einvoice/Purchase/"+url.PathEscape(invoiceID)+"/Xml", nil, "")
	if err != nil {
		return nil, err
	}

	return body, nil
}

// InvoicePDF downloads the rendered invoice. E-fatura documents are purchase invoices,
// e-arşiv documents are sales invoices.
func (c *Client) InvoicePDF(ctx context.Context, creds entity.NilveraCredentials, invoiceID string, kind entity.EInvoiceKind) ([]byte, error) {
	var path string

	switch kind {
	case entity.KindEFatura:
		path = "/einvoice/Purchase/" + url.PathEscape(invoiceID) + "/pdf"
	case entity.KindEArsiv:
		path = "/einvoice/Sale/" + url.PathEscape(invoiceID) + "/pdf"
	default:
		return nil, fmt.Errorf("%w: unknown invoice kind %q", entity.ErrInvalidArgument, kind)
	}

	body, contentType, err := c.do(ctx, creds, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/json" {
		return pdfFromJSON(body)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty pdf", entity.ErrProvider)
	}

	if !bytes.HasPrefix(body, []byte(pdfMagic)) {
		return nil, fmt.Errorf("%w: response is not a pdf (%s)", entity.ErrProvider, contentType)
	}

	return body, nil
}

// pdfFromJSON handles answers where the PDF arrives base64 encoded inside a JSON object,
// sometimes in the "error" field.
func pdfFromJSON(body []byte) ([]byte, error) {
	var fields map[string]any

	err := json.Unmarshal(body, &fields)
	if err != nil {
		return nil, fmt.Errorf("%w: decode pdf response: %w", entity.ErrProvider, err)
	}

	candidates := make([]string, 0, len(fields))
	if s, ok := fields["error"].(string); ok {
		candidates = append(candidates, s)
	}

	for k, v := range fields {
		if s, ok := v.(string); ok && k != "error" {
			candidates = append(candidates, s)
		}
	}

	for _, s := range candidates {
		if !strings.HasPrefix(s, pdfBase64Magic) {
			continue
		}

		pdf, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: decode pdf: %w", entity.ErrProvider, err)
		}

		return pdf, nil
	}

	msg := "PDF indirilemedi"
	if m, ok := fields["message"].(string); ok && m != "" {
		msg = m
	} else if e, ok := fields["error"].(string); ok && e != "" {
		msg = truncate(e)
	}

	return nil, fmt.Errorf("%w: %s", entity.ErrProvider, msg)
}

func (c *Client) baseURL(creds entity.NilveraCredentials) string {
	if creds.TestMode {
		return c.testURL
	}

	return c.prodURL
}

func (c *Client) do(
	ctx context.Context,
	creds entity.NilveraCredentials,
	method, path string,
	body io.Reader,
	contentType string,
) ([]byte, string, error) {
	if creds.APIKey == "" || !creds.IsActive {
		return nil, "", fmt.Errorf("%w: nilvera", entity.ErrNotConfigured)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL(creds)+path, body)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	req.Header.Set("Accept", "*/*")

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: do request: %w", entity.ErrProvider, err)
	}

	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxPDFSize))
	if err != nil {
		return nil, "", fmt.Errorf("%w: read body: %w", entity.ErrProvider, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, "", fmt.Errorf("%w: nilvera rejected the api key (%d)", entity.ErrNotConfigured, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, "", fmt.Errorf("%w: nilvera invoice", entity.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, "", fmt.Errorf("%w: nilvera status %d: %s", entity.ErrProvider, resp.StatusCode, truncate(string(b)))
	}

	return b, resp.Header.Get("Content-Type"), nil
}

func (l detailsLine) toEntity(index int) entity.InvoiceLine {
	unit := first(l.Unit, l.UnitCode)

	out := entity.InvoiceLine{
		LineNumber:     l.LineNumber,
		Description:    first(l.Description, l.Name),
		ProductCode:    first(l.ProductCode, l.ItemCode),
		Quantity:       l.Quantity.Decimal,
		UnitCode:       unit,
		Unit:           unit,
		UnitPrice:      firstDec(l.UnitPrice, l.Price),
		VATRate:        firstDec(l.VATRate, l.TaxRate),
		VATAmount:      firstDec(l.VATAmount, l.TaxAmount),
		LineTotal:      firstDec(l.TotalAmount, l.LineTotal),
		DiscountRate:   l.DiscountRate.Decimal,
		DiscountAmount: l.DiscountAmount.Decimal,
	}

	if out.LineNumber <= 0 {
		out.LineNumber = index + 1
	}

	if out.Unit == "" {
		out.Unit = "Adet"
	}

	if out.VATRate.IsZero() {
		out.VATRate = decimal.NewFromInt(18)
	}

	return out
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// firstDec picks the first non-zero value, matching how the API fills one alias or the other.
func firstDec(values ...decimal.NullDecimal) decimal.Decimal {
	for _, v := range values {
		if v.Valid && !v.Decimal.IsZero() {
			return v.Decimal
		}
	}

	return decimal.Zero
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxErrBody {
		return string(r[:maxErrBody])
	}

	return s
}
