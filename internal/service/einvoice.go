package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/ubl"
	"github.com/samandr77/microservices/erp/pkg/broker"
)

const (
	maxSyncInvoices  = 20
	syncParallelism  = 5
	syncWindow       = 7 * 24 * time.Hour
	issueDateLayout  = "2006-01-02"
	defaultPageLimit = 20
)

type DetailsSource string

const (
	SourceStored      DetailsSource = "stored"
	SourceProvider    DetailsSource = "provider"
	SourceXML         DetailsSource = "xml"
	SourceScan        DetailsSource = "scan"
	SourcePlaceholder DetailsSource = "placeholder"
)

// InvoiceDetails is an incoming invoice with the best line list that could be recovered.
type InvoiceDetails struct {
	Invoice entity.IncomingInvoice `json:"invoice"`
	Lines   []entity.InvoiceLine   `json:"lines"`
	Source  DetailsSource          `json:"source"`
	Raw     map[string]any         `json:"raw,omitempty"`
}

// SyncSummary counts one sync run. Stored invoices were already imported and are not downloaded
// again; at most maxSyncInvoices of the rest are downloaded per run.
type SyncSummary struct {
	Found    int `json:"found"`
	Stored   int `json:"stored"`
	Imported int `json:"imported"`
	New      int `json:"new"`
	Skipped  int `json:"skipped"`
}

// ParseInvoice reads a UBL-TR document given as XML or as a base64 encoded (zipped) payload.
func (s *Service) ParseInvoice(_ context.Context, payload []byte) (entity.Invoice, error) {
	doc := bytes.TrimSpace(payload)

	if !bytes.HasPrefix(bytes.TrimPrefix(doc, []byte("\xef\xbb\xbf")), []byte("<")) {
		var err error

		doc, err = ubl.ExtractXML(string(doc))
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err)
		}
	}

	return ubl.Parse(doc)
}

func (s *Service) IncomingInvoices(ctx context.Context, f entity.IncomingInvoiceFilter) ([]entity.IncomingInvoice, int, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	f.CompanyID = user.CompanyID

	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit == 0 {
		f.Limit = defaultPageLimit
	}

	return s.repo.IncomingInvoices(ctx, f)
}

// InvoiceDetails returns the lines of an incoming invoice. Stored details win. Otherwise the
// provider's JSON lines are used, then the lines of its UBL document, then a tolerant scan of
// that document, and finally one placeholder line built from the totals.
func (s *Service) InvoiceDetails(ctx context.Context, id uuid.UUID) (InvoiceDetails, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return InvoiceDetails{}, err
	}

	inv, err := s.repo.IncomingInvoice(ctx, user.CompanyID, id)
	if err != nil {
		return InvoiceDetails{}, fmt.Errorf("incoming invoice %s: %w", id, err)
	}

	if inv.Details != nil && len(inv.Details.Lines) > 0 {
		return InvoiceDetails{Invoice: inv, Lines: inv.Details.Lines, Source: SourceStored}, nil
	}

	if inv.Provider != entity.ProviderNilvera {
		return placeholderDetails(inv), nil
	}

	creds, err := s.nilveraCredentials(ctx, user.CompanyID)
	if err != nil {
		return InvoiceDetails{}, err
	}

	d, err := s.nilvera.InvoiceDetails(ctx, creds, inv.EInvoiceUUID, inv.EnvelopeUUID)
	if err != nil {
		return InvoiceDetails{}, fmt.Errorf("nilvera details: %w", err)
	}

	out := InvoiceDetails{Invoice: inv, Lines: d.Lines, Source: SourceProvider, Raw: d.Raw}
	if len(out.Lines) > 0 {
		return out, nil
	}

	doc, err := s.nilvera.InvoiceXML(ctx, creds, inv.EInvoiceUUID)
	if err != nil {
		slog.WarnContext(ctx, "nilvera xml unavailable", "invoice_id", id, "error", err)
	} else {
		parsed, err := ubl.Parse(doc)

		switch {
		case err == nil && len(parsed.Lines) > 0:
			out.Lines, out.Source = parsed.Lines, SourceXML

			inv.Details = &parsed

			_, err = s.repo.SaveIncomingInvoice(ctx, inv)
			if err != nil {
				slog.WarnContext(ctx, "store parsed invoice", "invoice_id", id, "error", err)
			}

			return out, nil

		case err != nil:
			slog.WarnContext(ctx, "nilvera xml does not parse", "invoice_id", id, "error", err)
		}

		if lines := ubl.ScanLines(doc); len(lines) > 0 {
			out.Lines, out.Source = lines, SourceScan
			return out, nil
		}
	}

	if d.Payable.IsZero() {
		d.Payable = inv.PayableAmount
	}

	if d.TaxTotal.IsZero() {
		d.TaxTotal = inv.TaxTotal
	}

	out.Lines = []entity.InvoiceLine{ubl.PlaceholderLine(d.TaxExclusive, d.TaxTotal, d.Payable)}
	out.Source = SourcePlaceholder

	return out, nil
}

func placeholderDetails(inv entity.IncomingInvoice) InvoiceDetails {
	taxExclusive := inv.PayableAmount.Sub(inv.TaxTotal)

	return InvoiceDetails{
		Invoice: inv,
		Lines:   []entity.InvoiceLine{ubl.PlaceholderLine(taxExclusive, inv.TaxTotal, inv.PayableAmount)},
		Source:  SourcePlaceholder,
	}
}

// InvoicePDF downloads the rendered invoice from Nilvera.
func (s *Service) InvoicePDF(ctx context.Context, id uuid.UUID, kind entity.EInvoiceKind) ([]byte, string, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return nil, "", err
	}

	if kind == "" {
		kind = entity.KindEFatura
	}

	if !kind.IsValid() {
		return nil, "", fmt.Errorf("%w: unknown invoice kind %q", entity.ErrInvalidArgument, kind)
	}

	inv, err := s.repo.IncomingInvoice(ctx, user.CompanyID, id)
	if err != nil {
		return nil, "", fmt.Errorf("incoming invoice %s: %w", id, err)
	}

	creds, err := s.nilveraCredentials(ctx, user.CompanyID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := s.nilvera.InvoicePDF(ctx, creds, inv.EInvoiceUUID, kind)
	if err != nil {
		return nil, "", fmt.Errorf("nilvera pdf: %w", err)
	}

	name := inv.InvoiceNumber
	if name == "" {
		name = inv.EInvoiceUUID
	}

	return pdf, name + ".pdf", nil
}

// SyncIncoming imports the purchase invoices Veriban lists for the caller's company in the window.
func (s *Service) SyncIncoming(ctx context.Context, from, to time.Time) (SyncSummary, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return SyncSummary{}, err
	}

	if to.Before(from) {
		return SyncSummary{}, fmt.Errorf("%w: end of range is before its start", entity.ErrInvalidArgument)
	}

	return s.syncCompany(ctx, user.CompanyID, from, to)
}

// SyncAllIncoming imports the last week of purchase invoices for every company with an active
// Veriban account. A failing company does not stop the others.
func (s *Service) SyncAllIncoming(ctx context.Context) error {
	companies, err := s.repo.VeribanCompanies(ctx)
	if err != nil {
		return fmt.Errorf("list veriban companies: %w", err)
	}

	to := s.now()
	from := to.Add(-syncWindow)

	var errs []error

	for _, companyID := range companies {
		sum, err := s.syncCompany(ctx, companyID, from, to)
		if err != nil {
			errs = append(errs, fmt.Errorf("company %s: %w", companyID, err))
			continue
		}

		slog.InfoContext(ctx, "incoming invoices synced",
			"company_id", companyID, "found", sum.Found, "stored", sum.Stored, "new", sum.New, "skipped", sum.Skipped)
	}

	return errors.Join(errs...)
}

func (s *Service) syncCompany(ctx context.Context, companyID uuid.UUID, from, to time.Time) (SyncSummary, error) {
	creds, err := s.veribanCredentials(ctx, companyID)
	if err != nil {
		return SyncSummary{}, err
	}

	uuids, err := s.veriban.PurchaseInvoiceUUIDs(ctx, creds, from, to)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("list purchase invoices: %w", err)
	}

	sum := SyncSummary{Found: len(uuids)}
	if len(uuids) == 0 {
		return sum, nil
	}

	stored, err := s.repo.StoredInvoiceUUIDs(ctx, companyID, uuids)
	if err != nil {
		return sum, fmt.Errorf("stored invoice uuids: %w", err)
	}

	uuids = slices.DeleteFunc(uuids, func(id string) bool { return slices.Contains(stored, id) })
	sum.Stored = len(stored)
	uuids = uuids[:min(len(uuids), maxSyncInvoices)]

	invoices := make([]*entity.IncomingInvoice, len(uuids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncParallelism)

	for i, id := range uuids {
		g.Go(func() error {
			inv, err := s.downloadPurchaseInvoice(gctx, creds, id)
			if err != nil {
				slog.WarnContext(gctx, "skip purchase invoice", "einvoice_uuid", id, "error", err)
				return nil
			}

			invoices[i] = &inv

			return nil
		})
	}

	_ = g.Wait()

	for _, inv := range invoices {
		if inv == nil {
			sum.Skipped++
			continue
		}

		inserted, err := s.repo.SaveIncomingInvoice(ctx, *inv)
		if err != nil {
			return sum, fmt.Errorf("save incoming invoice %s: %w", inv.EInvoiceUUID, err)
		}

		sum.Imported++

		if !inserted {
			continue
		}

		sum.New++

		s.publisher.SendInvoiceReceived(ctx, broker.InvoiceReceivedEvent{
			InvoiceID:     inv.ID,
			CompanyID:     inv.CompanyID,
			EInvoiceUUID:  inv.EInvoiceUUID,
			InvoiceNumber: inv.InvoiceNumber,
			SupplierName:  inv.SupplierName,
			PayableAmount: inv.PayableAmount,
			Currency:      inv.Currency,
			IssueDate:     inv.IssueDate,
		})
	}

	return sum, nil
}

func (s *Service) downloadPurchaseInvoice(ctx context.Context, creds entity.VeribanCredentials, id string) (entity.IncomingInvoice, error) {
	payload, err := s.veriban.DownloadPurchaseInvoice(ctx, creds, id)
	if err != nil {
		return entity.IncomingInvoice{}, fmt.Errorf("download: %w", err)
	}

	doc, err := ubl.ExtractXML(payload)
	if err != nil {
		return entity.IncomingInvoice{}, fmt.Errorf("extract xml: %w", err)
	}

	parsed, err := ubl.Parse(doc)
	if err != nil {
		return entity.IncomingInvoice{}, err
	}

	inv := entity.IncomingInvoice{
		ID:            newID(),
		CompanyID:     creds.CompanyID,
		Provider:      entity.ProviderVeriban,
		EInvoiceUUID:  id,
		InvoiceNumber: parsed.Number,
		SupplierName:  parsed.Supplier.Name,
		SupplierTaxNo: parsed.Supplier.TaxNumber,
		Currency:      parsed.Currency,
		TaxTotal:      parsed.Totals.TaxTotal,
		PayableAmount: parsed.Totals.Payable,
		Details:       &parsed,
		CreatedAt:     s.now(),
	}

	if d, err := time.Parse(issueDateLayout, parsed.IssueDate); err == nil {
		inv.IssueDate = &d
	}

	return inv, nil
}

// NotifyInvoiceReceived mails the company's finance contact about a new purchase invoice.
func (s *Service) NotifyInvoiceReceived(ctx context.Context, event broker.InvoiceReceivedEvent) error {
	company, err := s.repo.Company(ctx, event.CompanyID)
	if err != nil {
		return fmt.Errorf("company %s: %w", event.CompanyID, err)
	}

	if company.FinanceEmail == "" {
		slog.InfoContext(ctx, "no finance e-mail, notification skipped", "company_id", company.ID)
		return nil
	}

	issued := "-"
	if event.IssueDate != nil {
		issued = event.IssueDate.Format("02.01.2006")
	}

	subject := fmt.Sprintf("Yeni e-fatura: %s", event.InvoiceNumber)
	body := fmt.Sprintf(
		"<p>%s adına yeni bir alış faturası alındı.</p>"+
			"<p>Fatura No: <b>%s</b><br>Tedarikçi: %s<br>Tarih: %s<br>Tutar: %s %s</p>",
		company.Name, event.InvoiceNumber, event.SupplierName, issued, event.PayableAmount.StringFixed(2), event.Currency,
	)

	err = s.mailer.Send(subject, body, company.FinanceEmail)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	slog.InfoContext(ctx, "invoice notification sent", "company_id", company.ID, "invoice_id", event.InvoiceID)

	return nil
}

func (s *Service) nilveraCredentials(ctx context.Context, companyID uuid.UUID) (entity.NilveraCredentials, error) {
	creds, err := s.repo.NilveraCredentials(ctx, companyID)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.NilveraCredentials{}, fmt.Errorf("%w: Nilvera hesabı tanımlı değil", entity.ErrNotConfigured)
	}

	if err != nil {
		return entity.NilveraCredentials{}, fmt.Errorf("nilvera credentials: %w", err)
	}

	if !creds.IsActive || creds.APIKey == "" {
		return entity.NilveraCredentials{}, fmt.Errorf("%w: Nilvera hesabı aktif değil", entity.ErrNotConfigured)
	}

	return creds, nil
}

func (s *Service) veribanCredentials(ctx context.Context, companyID uuid.UUID) (entity.VeribanCredentials, error) {
	creds, err := s.repo.VeribanCredentials(ctx, companyID)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.VeribanCredentials{}, fmt.Errorf("%w: Veriban hesabı tanımlı değil", entity.ErrNotConfigured)
	}

	if err != nil {
		return entity.VeribanCredentials{}, fmt.Errorf("veriban credentials: %w", err)
	}

	if !creds.IsActive {
		// A session opened before the account was turned off must not stay usable.
		err = s.veriban.Logout(ctx, creds)
		if err != nil {
			slog.WarnContext(ctx, "Failed to close veriban session", "company_id", companyID, "error", err)
		}

		return entity.VeribanCredentials{}, fmt.Errorf("%w: Veriban hesabı aktif değil", entity.ErrNotConfigured)
	}

	return creds, nil
}
