// Package veriban is a SOAP client for the Veriban e-invoice integration webservice.
package veriban

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/pkg/cache"
	"github.com/samandr77/microservices/erp/pkg/config"
	"github.com/samandr77/microservices/erp/pkg/transport"
)

const (
	dataTypeXMLInZip = "XML_INZIP"
	dateLayout       = "2006-01-02"
	maxInvoiceNumber = 50
	maxBody          = 50 << 20
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	// Words Veriban sometimes puts into InvoiceNumber instead of a number.
	placeholderNumbers = []string{"DOKUMAN", "TASLAK", "MESSAGE", "DESCRIPTION", "ERROR", "STATE", "ANSWER"}
)

type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Client struct {
	http       *http.Client
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewClient(cfg config.Veriban, sessions SessionStore) *Client {
	return &Client{
		http:       transport.NewRetryClient(cfg.RetryAttempts, cfg.Timeout),
		sessions:   sessions,
		sessionTTL: cfg.SessionTTL,
	}
}

type TransferFile struct {
	FileName        string
	ZipData         []byte
	Hash            string
	CustomerAlias   string
	IsDirectSend    bool
	IntegrationCode string
}

type TransferResult struct {
	TransferFileUniqueID string
	InvoiceNumber        string
}

type InvoiceStatus struct {
	entity.TransferState
	AnswerStateCode int
	InvoiceProfile  string
}

type loginRequest struct {
	XMLName  xml.Name `xml:"tem:Login"`
	UserName string   `xml:"tem:userName"`
	Password string   `xml:"tem:password"`
}

type logoutRequest struct {
	XMLName     xml.Name `xml:"tem:Logout"`
	SessionCode string   `xml:"tem:sessionCode"`
}

type transferFile struct {
	FileNameWithExtension string `xml:"tem:FileNameWithExtension"`
	FileDataType          string `xml:"tem:FileDataType"`
	BinaryData            string `xml:"tem:BinaryData"`
	BinaryDataHash        string `xml:"tem:BinaryDataHash"`
	CustomerAlias         string `xml:"tem:CustomerAlias"`
	IsDirectSend          bool   `xml:"tem:IsDirectSend"`
}

type transferRequest struct {
	XMLName      xml.Name     `xml:"tem:TransferSalesInvoiceFile"`
	SessionCode  string       `xml:"tem:sessionCode"`
	TransferFile transferFile `xml:"tem:transferFile"`
}

type transferWithCodeRequest struct {
	XMLName               xml.Name     `xml:"tem:TransferSalesInvoiceFileWithIntegrationCode"`
	SessionCode           string       `xml:"tem:sessionCode"`
	TransferFile          transferFile `xml:"tem:transferFile"`
	UniqueIntegrationCode string       `xml:"tem:uniqueIntegrationCode"`
}

type transferStatusRequest struct {
	XMLName              xml.Name `xml:"tem:GetTransferSalesInvoiceFileStatus"`
	SessionCode          string   `xml:"tem:sessionCode"`
	TransferFileUniqueID string   `xml:"tem:transferFileUniqueId"`
}

type salesStatusRequest struct {
	XMLName     xml.Name `xml:"tem:GetSalesInvoiceStatusWithInvoiceUUID"`
	SessionCode string   `xml:"tem:sessionCode"`
	InvoiceUUID string   `xml:"tem:invoiceUUID"`
}

type uuidListRequest struct {
	XMLName     xml.Name `xml:"tem:GetPurchaseInvoiceUUIDList"`
	SessionCode string   `xml:"tem:sessionCode"`
	StartDate   string   `xml:"tem:startDate"`
	EndDate     string   `xml:"tem:endDate"`
}

type downloadRequest struct {
	XMLName          xml.Name `xml:"tem:DownloadPurchaseInvoiceWithInvoiceUUID"`
	SessionCode      string   `xml:"tem:sessionCode"`
	DownloadDataType string   `xml:"tem:downloadDataType"`
	InvoiceUUID      string   `xml:"tem:invoiceUUID"`
}

// Login opens a session and returns its code.
func (c *Client) Login(ctx context.Context, creds entity.VeribanCredentials) (string, error) {
	resp, err := c.call(ctx, creds.WebserviceURL, "Login", loginRequest{UserName: creds.Username, Password: creds.Password})
	if err != nil {
		return "", err
	}

	code := resp.get("LoginResult")
	if code == "" {
		return "", &Fault{Code: 5002, Message: "Giriş başarısız - session code alınamadı"}
	}

	return code, nil
}

// Logout drops the cached session of the company and closes it at Veriban. It does nothing
// when no session is cached.
func (c *Client) Logout(ctx context.Context, creds entity.VeribanCredentials) error {
	key := sessionKey(creds)

	code, err := c.sessions.Get(ctx, key)
	if errors.Is(err, cache.ErrMiss) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	err = c.sessions.Delete(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Failed to drop veriban session", "company_id", creds.CompanyID, "error", err)
	}

	if creds.WebserviceURL == "" {
		return nil
	}

	_, err = c.call(ctx, creds.WebserviceURL, "Logout", logoutRequest{SessionCode: code})

	return err
}

// TransferSalesInvoice uploads a zipped UBL document. A non-empty integration code switches to the
// WithIntegrationCode operation.
func (c *Client) TransferSalesInvoice(ctx context.Context, creds entity.VeribanCredentials, f TransferFile) (TransferResult, error) {
	resp, err := c.withSession(ctx, creds, func(session string) (response, error) {
		file := transferFile{
			FileNameWithExtension: f.FileName,
			FileDataType:          dataTypeXMLInZip,
			BinaryData:            base64.StdEncoding.EncodeToString(f.ZipData),
			BinaryDataHash:        f.Hash,
			CustomerAlias:         f.CustomerAlias,
			IsDirectSend:          f.IsDirectSend,
		}

		if f.IntegrationCode != "" {
			return c.call(ctx, creds.WebserviceURL, "TransferSalesInvoiceFileWithIntegrationCode", transferWithCodeRequest{
				SessionCode:           session,
				TransferFile:          file,
				UniqueIntegrationCode: f.IntegrationCode,
			})
		}

		return c.call(ctx, creds.WebserviceURL, "TransferSalesInvoiceFile", transferRequest{
			SessionCode:  session,
			TransferFile: file,
		})
	})
	if err != nil {
		return TransferResult{}, err
	}

	if !resp.flag("OperationCompleted") {
		msg := firstNonEmpty(resp.get("ErrorMessage"), resp.get("Message"), resp.get("Description"))
		if msg == "" {
			msg = "Transfer tamamlanamadı"
		}

		return TransferResult{}, fmt.Errorf("%w: %s", entity.ErrProvider, msg)
	}

	return TransferResult{
		TransferFileUniqueID: resp.get("TransferFileUniqueId"),
		InvoiceNumber:        invoiceNumber(resp.get("InvoiceNumber")),
	}, nil
}

func (c *Client) TransferStatus(ctx context.Context, creds entity.VeribanCredentials, transferFileID string) (entity.TransferState, error) {
	resp, err := c.withSession(ctx, creds, func(session string) (response, error) {
		return c.call(ctx, creds.WebserviceURL, "GetTransferSalesInvoiceFileStatus", transferStatusRequest{
			SessionCode:          session,
			TransferFileUniqueID: transferFileID,
		})
	})
	if err != nil {
		return entity.TransferState{}, err
	}

	return transferState(resp), nil
}

func (c *Client) SalesInvoiceStatus(ctx context.Context, creds entity.VeribanCredentials, invoiceUUID string) (InvoiceStatus, error) {
	resp, err := c.withSession(ctx, creds, func(session string) (response, error) {
		return c.call(ctx, creds.WebserviceURL, "GetSalesInvoiceStatusWithInvoiceUUID", salesStatusRequest{
			SessionCode: session,
			InvoiceUUID: invoiceUUID,
		})
	})
	if err != nil {
		return InvoiceStatus{}, err
	}

	return InvoiceStatus{
		TransferState:   transferState(resp),
		AnswerStateCode: resp.number("AnswerStateCode"),
		InvoiceProfile:  resp.get("InvoiceProfile"),
	}, nil
}

// PurchaseInvoiceUUIDs lists received invoices in the date range. Items that are not UUIDs are dropped.
func (c *Client) PurchaseInvoiceUUIDs(ctx context.Context, creds entity.VeribanCredentials, from, to time.Time) ([]string, error) {
	resp, err := c.withSession(ctx, creds, func(session string) (response, error) {
		return c.call(ctx, creds.WebserviceURL, "GetPurchaseInvoiceUUIDList", uuidListRequest{
			SessionCode: session,
			StartDate:   from.Format(dateLayout),
			EndDate:     to.Format(dateLayout),
		})
	})
	if err != nil {
		return nil, err
	}

	uuids := make([]string, 0, len(resp.strings))

	for _, s := range resp.strings {
		if !reUUID.MatchString(s) {
			slog.WarnContext(ctx, "Skipping malformed invoice uuid", "value", s)
			continue
		}

		uuids = append(uuids, s)
	}

	return uuids, nil
}

// DownloadPurchaseInvoice returns the base64 zip holding the invoice XML.
func (c *Client) DownloadPurchaseInvoice(ctx context.Context, creds entity.VeribanCredentials, invoiceUUID string) (string, error) {
	resp, err := c.withSession(ctx, creds, func(session string) (response, error) {
		return c.call(ctx, creds.WebserviceURL, "DownloadPurchaseInvoiceWithInvoiceUUID", downloadRequest{
			SessionCode:      session,
			DownloadDataType: dataTypeXMLInZip,
			InvoiceUUID:      invoiceUUID,
		})
	})
	if err != nil {
		return "", err
	}

	data := firstNonEmpty(resp.get("BinaryData"), resp.get("FileData"))
	if data == "" {
		msg := resp.get("DownloadDescription")
		if msg == "" {
			msg = "Binary data bulunamadı"
		}

		return "", fmt.Errorf("%w: %s", entity.ErrProvider, msg)
	}

	return data, nil
}

// withSession runs fn with a cached session code. A session fault drops the cached code and
// retries once after a fresh login.
func (c *Client) withSession(ctx context.Context, creds entity.VeribanCredentials, fn func(session string) (response, error)) (response, error) {
	if !creds.IsActive || creds.Username == "" || creds.WebserviceURL == "" {
		return response{}, fmt.Errorf("%w: veriban", entity.ErrNotConfigured)
	}

	session, err := c.session(ctx, creds, false)
	if err != nil {
		return response{}, err
	}

	resp, err := fn(session)
	if !IsSessionFault(err) {
		return resp, err
	}

	slog.InfoContext(ctx, "Veriban session expired, logging in again", "company_id", creds.CompanyID)

	session, err = c.session(ctx, creds, true)
	if err != nil {
		return response{}, err
	}

	return fn(session)
}

func (c *Client) session(ctx context.Context, creds entity.VeribanCredentials, fresh bool) (string, error) {
	key := sessionKey(creds)

	if !fresh {
		code, err := c.sessions.Get(ctx, key)
		if err == nil {
			return code, nil
		}

		if !errors.Is(err, cache.ErrMiss) {
			slog.WarnContext(ctx, "Failed to read veriban session", "company_id", creds.CompanyID, "error", err)
		}
	}

	code, err := c.Login(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	err = c.sessions.Set(ctx, key, code, c.sessionTTL)
	if err != nil {
		slog.WarnContext(ctx, "Failed to store veriban session", "company_id", creds.CompanyID, "error", err)
	}

	return code, nil
}

func (c *Client) call(ctx context.Context, url, action string, operation any) (response, error) {
	body, err := marshalEnvelope(operation)
	if err != nil {
		return response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", action)

	resp, err := c.http.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("%w: %s: %w", entity.ErrProvider, action, err)
	}

	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return response{}, fmt.Errorf("%w: read %s response: %w", entity.ErrProvider, action, err)
	}

	// Faults arrive with status 500, so the body is inspected before the status.
	parsed, parseErr := readResponse(b)
	if parseErr == nil {
		err = parsed.fault()
		if err != nil {
			return response{}, err
		}
	}

	if resp.StatusCode != http.StatusOK {
		return response{}, fmt.Errorf("%w: %s: unexpected code %d", entity.ErrProvider, action, resp.StatusCode)
	}

	if parseErr != nil {
		return response{}, parseErr
	}

	return parsed, nil
}

func transferState(resp response) entity.TransferState {
	code := resp.number("StateCode")

	state := entity.TransferState{
		StateCode:        code,
		StateName:        resp.get("StateName"),
		StateDescription: resp.get("StateDescription"),
		InvoiceNumber:    invoiceNumber(resp.get("InvoiceNumber")),
	}

	if state.StateName == "" {
		state.StateName = StateName(code)
	}

	return state
}

func invoiceNumber(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > maxInvoiceNumber || slices.Contains(placeholderNumbers, strings.ToUpper(v)) {
		return ""
	}

	return v
}

// sessionKey is relative to the prefix of the store.
func sessionKey(creds entity.VeribanCredentials) string {
	return creds.CompanyID.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
