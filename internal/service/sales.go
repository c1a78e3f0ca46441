package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/httpclients/veriban"
	"github.com/samandr77/microservices/erp/internal/ubl"
)

const (
	pendingCheckAge   = 2 * time.Hour
	pendingCheckBatch = 50
	numberAttempts    = 3
)

var hundred = decimal.NewFromInt(100)

type SalesInvoiceLineInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitCode    string
	UnitPrice   decimal.Decimal
	VATRate     decimal.Decimal
}

type SalesInvoiceInput struct {
	Series            string
	InvoiceDate       *time.Time
	DueDate           *time.Time
	ProfileID         string
	InvoiceType       string
	Currency          string
	Note              string
	CustomerName      string
	CustomerTaxNumber string
	CustomerTaxOffice string
	CustomerAddress   string
	CustomerCity      string
	CustomerAlias     string
	Lines             []SalesInvoiceLineInput
}

// NextInvoiceNumber proposes the next GİB number of the series for the current year. An empty
// series means the company's own, or FAT.
func (s *Service) NextInvoiceNumber(ctx context.Context, series string) (string, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return "", err
	}

	return s.nextInvoiceNumber(ctx, user.CompanyID, series)
}

func (s *Service) nextInvoiceNumber(ctx context.Context, companyID uuid.UUID, series string) (string, error) {
	series = strings.ToUpper(strings.TrimSpace(series))

	if series == "" {
		company, err := s.repo.Company(ctx, companyID)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return "", fmt.Errorf("company %s: %w", companyID, err)
		}

		series = company.InvoiceSeries
		if series == "" {
			series = entity.DefaultSeries
		}
	}

	err := entity.ValidateInvoiceSeries(series)
	if err != nil {
		return "", err
	}

	year := s.now().Year()

	numbers, err := s.repo.InvoiceNumbers(ctx, companyID, series, year)
	if err != nil {
		return "", fmt.Errorf("invoice numbers: %w", err)
	}

	return entity.NextInvoiceNumber(series, year, numbers)
}

// CreateSalesInvoice stores a draft with the next free number of its series. Line totals and
// VAT are computed here, prices are VAT exclusive.
func (s *Service) CreateSalesInvoice(ctx context.Context, in SalesInvoiceInput) (entity.SalesInvoice, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return entity.SalesInvoice{}, err
	}

	if strings.TrimSpace(in.CustomerName) == "" || len(in.Lines) == 0 {
		return entity.SalesInvoice{}, fmt.Errorf("%w: customer and at least one line are required", entity.ErrInvalidArgument)
	}

	now := s.now()

	inv := entity.SalesInvoice{
		ID:                newID(),
		CompanyID:         user.CompanyID,
		EInvoiceUUID:      newID(),
		ProfileID:         or(in.ProfileID, "TEMELFATURA"),
		InvoiceType:       or(in.InvoiceType, "SATIS"),
		InvoiceDate:       in.InvoiceDate,
		DueDate:           in.DueDate,
		Currency:          or(in.Currency, "TRY"),
		Note:              in.Note,
		CustomerName:      in.CustomerName,
		CustomerTaxNumber: in.CustomerTaxNumber,
		CustomerTaxOffice: in.CustomerTaxOffice,
		CustomerAddress:   in.CustomerAddress,
		CustomerCity:      in.CustomerCity,
		CustomerAlias:     in.CustomerAlias,
		TransferStatus:    entity.TransferDraft,
		CreatedAt:         now,
		Lines:             make([]entity.SalesInvoiceLine, 0, len(in.Lines)),
	}

	if inv.InvoiceDate == nil {
		inv.InvoiceDate = &now
	}

	for i, l := range in.Lines {
		if !l.Quantity.IsPositive() || l.UnitPrice.IsNegative() || l.VATRate.IsNegative() {
			return entity.SalesInvoice{}, fmt.Errorf("%w: line %d has an invalid amount", entity.ErrInvalidArgument, i+1)
		}

		net := l.Quantity.Mul(l.UnitPrice).Round(2)
		vat := net.Mul(l.VATRate).Div(hundred).Round(2)

		inv.Lines = append(inv.Lines, entity.SalesInvoiceLine{
			ID:          newID(),
			InvoiceID:   inv.ID,
			LineNumber:  i + 1,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitCode:    or(l.UnitCode, ubl.DefaultUnitCode),
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
			VATAmount:   vat,
			LineTotal:   net.Add(vat),
		})

		inv.Subtotal = inv.Subtotal.Add(net)
		inv.TaxTotal = inv.TaxTotal.Add(vat)
	}

	inv.Total = inv.Subtotal.Add(inv.TaxTotal)

	// Another draft may take the proposed number first, the unique index tells.
	for attempt := 1; ; attempt++ {
		inv.InvoiceNumber, err = s.nextInvoiceNumber(ctx, user.CompanyID, in.Series)
		if err != nil {
			return entity.SalesInvoice{}, err
		}

		err = s.repo.CreateSalesInvoice(ctx, inv)
		if err == nil {
			break
		}

		if !errors.Is(err, entity.ErrAlreadyExists) || attempt == numberAttempts {
			return entity.SalesInvoice{}, fmt.Errorf("create sales invoice: %w", err)
		}
	}

	slog.InfoContext(ctx, "sales invoice created", "invoice_id", inv.ID, "number", inv.InvoiceNumber)

	return inv, nil
}

// SendSalesInvoice transfers a draft (or a failed invoice) to Veriban and queues it for status checks.
func (s *Service) SendSalesInvoice(ctx context.Context, id uuid.UUID) (entity.SalesInvoice, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return entity.SalesInvoice{}, err
	}

	inv, err := s.repo.SalesInvoice(ctx, user.CompanyID, id)
	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("sales invoice %s: %w", id, err)
	}

	if inv.TransferStatus != entity.TransferDraft && inv.TransferStatus != entity.TransferFailed {
		return entity.SalesInvoice{}, fmt.Errorf("%w: invoice is already %s", entity.ErrAlreadyExists, inv.TransferStatus)
	}

	inv.Seller, err = s.repo.Company(ctx, user.CompanyID)
	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("company %s: %w", user.CompanyID, err)
	}

	creds, err := s.veribanCredentials(ctx, user.CompanyID)
	if err != nil {
		return entity.SalesInvoice{}, err
	}

	doc, err := ubl.Build(inv)
	if err != nil {
		return entity.SalesInvoice{}, err
	}

	name := inv.EInvoiceUUID.String()

	zipped, hash, err := ubl.PackXML(name+".xml", doc)
	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("pack invoice: %w", err)
	}

	res, err := s.veriban.TransferSalesInvoice(ctx, creds, veriban.TransferFile{
		FileName:        name + ".zip",
		ZipData:         zipped,
		Hash:            hash,
		CustomerAlias:   inv.CustomerAlias,
		IsDirectSend:    true,
		IntegrationCode: inv.IntegrationCode,
	})
	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("transfer invoice: %w", err)
	}

	inv.TransferFileID = res.TransferFileUniqueID
	inv.TransferStatus = entity.TransferQueued
	inv.StatusMessage = ""
	inv.LastStatusCheckAt = nil

	if res.InvoiceNumber != "" {
		inv.InvoiceNumber = res.InvoiceNumber
	}

	err = s.repo.SaveTransferState(ctx, inv)
	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("save transfer state: %w", err)
	}

	slog.InfoContext(ctx, "sales invoice sent", "invoice_id", inv.ID, "transfer_file_id", inv.TransferFileID)

	return inv, nil
}

// SalesInvoiceStatus asks Veriban for the current state and stores it. Invoices sent from
// elsewhere have no transfer file and are looked up by their UUID.
func (s *Service) SalesInvoiceStatus(ctx context.Context, id uuid.UUID) (entity.SalesInvoice, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return entity.SalesInvoice{}, err
	}

	inv, err := s.repo.SalesInvoice(ctx, user.CompanyID, id)
	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("sales invoice %s: %w", id, err)
	}

	creds, err := s.veribanCredentials(ctx, user.CompanyID)
	if err != nil {
		return entity.SalesInvoice{}, err
	}

	var st entity.TransferState

	if inv.TransferFileID != "" {
		st, err = s.veriban.TransferStatus(ctx, creds, inv.TransferFileID)
	} else {
		var status veriban.InvoiceStatus

		status, err = s.veriban.SalesInvoiceStatus(ctx, creds, inv.EInvoiceUUID.String())
		st = status.TransferState
	}

	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("query status: %w", err)
	}

	inv = s.applyState(inv, st)

	err = s.repo.SaveTransferState(ctx, inv)
	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("save transfer state: %w", err)
	}

	return inv, nil
}

// CheckPendingTransfers refreshes queued and processing invoices not checked for two hours.
func (s *Service) CheckPendingTransfers(ctx context.Context) error {
	pending, err := s.repo.PendingTransfers(ctx, s.now().Add(-pendingCheckAge), pendingCheckBatch)
	if err != nil {
		return fmt.Errorf("pending transfers: %w", err)
	}

	creds := make(map[uuid.UUID]entity.VeribanCredentials)

	var errs []error

	for _, inv := range pending {
		c, ok := creds[inv.CompanyID]
		if !ok {
			c, err = s.veribanCredentials(ctx, inv.CompanyID)
			if err != nil {
				errs = append(errs, fmt.Errorf("invoice %s: %w", inv.ID, err))
				continue
			}

			creds[inv.CompanyID] = c
		}

		st, err := s.veriban.TransferStatus(ctx, c, inv.TransferFileID)
		if err != nil {
			errs = append(errs, fmt.Errorf("invoice %s: %w", inv.ID, err))
			continue
		}

		before := inv.TransferStatus
		inv = s.applyState(inv, st)

		err = s.repo.SaveTransferState(ctx, inv)
		if err != nil {
			errs = append(errs, fmt.Errorf("invoice %s: %w", inv.ID, err))
			continue
		}

		if inv.TransferStatus != before {
			slog.InfoContext(ctx, "transfer status changed",
				"invoice_id", inv.ID, "from", before, "to", inv.TransferStatus, "state", st.StateName)
		}
	}

	return errors.Join(errs...)
}

func (s *Service) applyState(inv entity.SalesInvoice, st entity.TransferState) entity.SalesInvoice {
	now := s.now()

	inv.TransferStatus = entity.TransferStatusFromState(st.StateCode)
	inv.GIBStateCode = ptr(st.StateCode)
	inv.GIBStateName = st.StateName
	inv.StatusMessage = st.StateDescription
	inv.LastStatusCheckAt = &now

	if st.InvoiceNumber != "" {
		inv.InvoiceNumber = st.InvoiceNumber
	}

	return inv
}

func or(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}

	return v
}
