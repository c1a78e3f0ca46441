package service_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/httpclients/nilvera"
	"github.com/samandr77/microservices/erp/internal/service"
	"github.com/samandr77/microservices/erp/internal/ubl"
	"github.com/samandr77/microservices/erp/pkg/broker"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// purchaseDoc renders a one-line UBL invoice from Tedarikçi A.Ş. with a payable of 1200 TRY.
func purchaseDoc(t *testing.T, number string) []byte {
	t.Helper()

	issued := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	doc, err := ubl.Build(entity.SalesInvoice{
		InvoiceNumber:     number,
		EInvoiceUUID:      uuid.Must(uuid.NewV4()),
		InvoiceDate:       &issued,
		CustomerName:      "Alıcı Ltd.",
		CustomerTaxNumber: "1234567890",
		Seller:            entity.Company{Name: "Tedarikçi A.Ş.", TaxNumber: "9876543210"},
		Lines: []entity.SalesInvoiceLine{
			{Description: "Kağıt", Quantity: dec("2"), UnitPrice: dec("500"), VATRate: dec("20")},
		},
	})
	require.NoError(t, err)

	return doc
}

func TestService_ParseInvoice(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	doc := purchaseDoc(t, "TED2025000000007")

	zipped, _, err := ubl.PackXML("invoice.xml", doc)
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "xml", payload: doc},
		{name: "base64 xml", payload: []byte(base64.StdEncoding.EncodeToString(doc))},
		{name: "base64 zip", payload: []byte(base64.StdEncoding.EncodeToString(zipped))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv, err := ts.s.ParseInvoice(context.Background(), tt.payload)
			require.NoError(t, err)
			require.Equal(t, "TED2025000000007", inv.Number)
			require.Equal(t, "Tedarikçi A.Ş.", inv.Supplier.Name)
			require.Len(t, inv.Lines, 1)
			require.True(t, dec("1200").Equal(inv.Totals.Payable))
		})
	}

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		_, err := ts.s.ParseInvoice(context.Background(), []byte("bm90IGFuIGludm9pY2U="))
		require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
	})
}

func TestService_IncomingInvoices(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	list := []entity.IncomingInvoice{{ID: uuid.Must(uuid.NewV4()), InvoiceNumber: "A1"}}

	ts.repo.EXPECT().IncomingInvoices(gomock.Any(), entity.IncomingInvoiceFilter{
		CompanyID: ts.user.CompanyID,
		Page:      1,
		Limit:     20,
	}).Return(list, 1, nil)

	got, total, err := ts.s.IncomingInvoices(ts.ctx(), entity.IncomingInvoiceFilter{})
	r.NoError(err)
	r.Equal(list, got)
	r.Equal(1, total)
}

func TestService_InvoiceDetails(t *testing.T) { //nolint:funlen
	t.Parallel()

	creds := entity.NilveraCredentials{APIKey: "key", IsActive: true}

	incoming := func(ts *TestService) entity.IncomingInvoice {
		return entity.IncomingInvoice{
			ID:            uuid.Must(uuid.NewV4()),
			CompanyID:     ts.user.CompanyID,
			Provider:      entity.ProviderNilvera,
			EInvoiceUUID:  "2f1a2b3c-0000-4000-8000-000000000001",
			EnvelopeUUID:  "env-1",
			InvoiceNumber: "TED2025000000007",
			TaxTotal:      dec("200"),
			PayableAmount: dec("1200"),
		}
	}

	t.Run("stored", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		inv := incoming(ts)
		inv.Details = &entity.Invoice{Lines: []entity.InvoiceLine{{Description: "Kağıt"}}}

		ts.repo.EXPECT().IncomingInvoice(gomock.Any(), ts.user.CompanyID, inv.ID).Return(inv, nil)

		d, err := ts.s.InvoiceDetails(ts.ctx(), inv.ID)
		r.NoError(err)
		r.Equal(service.SourceStored, d.Source)
		r.Equal("Kağıt", d.Lines[0].Description)
	})

	t.Run("provider lines", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		inv := incoming(ts)
		lines := []entity.InvoiceLine{{Description: "Toner"}}

		ts.repo.EXPECT().IncomingInvoice(gomock.Any(), ts.user.CompanyID, inv.ID).Return(inv, nil)
		ts.repo.EXPECT().NilveraCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
		ts.nilvera.EXPECT().InvoiceDetails(gomock.Any(), creds, inv.EInvoiceUUID, "env-1").
			Return(nilvera.Details{Lines: lines, Raw: map[string]any{"ok": true}}, nil)

		d, err := ts.s.InvoiceDetails(ts.ctx(), inv.ID)
		r.NoError(err)
		r.Equal(service.SourceProvider, d.Source)
		r.Equal(lines, d.Lines)
		r.Equal(true, d.Raw["ok"])
	})

	t.Run("xml lines are stored", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		inv := incoming(ts)

		ts.repo.EXPECT().IncomingInvoice(gomock.Any(), ts.user.CompanyID, inv.ID).Return(inv, nil)
		ts.repo.EXPECT().NilveraCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
		ts.nilvera.EXPECT().InvoiceDetails(gomock.Any(), creds, inv.EInvoiceUUID, "env-1").Return(nilvera.Details{}, nil)
		ts.nilvera.EXPECT().InvoiceXML(gomock.Any(), creds, inv.EInvoiceUUID).Return(purchaseDoc(t, inv.InvoiceNumber), nil)
		ts.repo.EXPECT().SaveIncomingInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved entity.IncomingInvoice) (bool, error) {
				r.Equal(inv.ID, saved.ID)
				r.NotNil(saved.Details)
				r.Len(saved.Details.Lines, 1)
				return false, nil
			})

		d, err := ts.s.InvoiceDetails(ts.ctx(), inv.ID)
		r.NoError(err)
		r.Equal(service.SourceXML, d.Source)
		r.Equal("Kağıt", d.Lines[0].Description)
	})

	t.Run("scanned lines", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		inv := incoming(ts)
		broken := `<Envelope><cac:InvoiceLine><cac:Item><cbc:Name>Zımba</cbc:Name></cac:Item>
			<cbc:LineExtensionAmount>45.00</cbc:LineExtensionAmount></cac:InvoiceLine>`

		ts.repo.EXPECT().IncomingInvoice(gomock.Any(), ts.user.CompanyID, inv.ID).Return(inv, nil)
		ts.repo.EXPECT().NilveraCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
		ts.nilvera.EXPECT().InvoiceDetails(gomock.Any(), creds, inv.EInvoiceUUID, "env-1").Return(nilvera.Details{}, nil)
		ts.nilvera.EXPECT().InvoiceXML(gomock.Any(), creds, inv.EInvoiceUUID).Return([]byte(broken), nil)

		d, err := ts.s.InvoiceDetails(ts.ctx(), inv.ID)
		r.NoError(err)
		r.Equal(service.SourceScan, d.Source)
		r.Equal("Zımba", d.Lines[0].Description)
	})

	t.Run("placeholder from stored totals", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		inv := incoming(ts)

		ts.repo.EXPECT().IncomingInvoice(gomock.Any(), ts.user.CompanyID, inv.ID).Return(inv, nil)
		ts.repo.EXPECT().NilveraCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
		ts.nilvera.EXPECT().InvoiceDetails(gomock.Any(), creds, inv.EInvoiceUUID, "env-1").Return(nilvera.Details{}, nil)
		ts.nilvera.EXPECT().InvoiceXML(gomock.Any(), creds, inv.EInvoiceUUID).Return(nil, entity.ErrProvider)

		d, err := ts.s.InvoiceDetails(ts.ctx(), inv.ID)
		r.NoError(err)
		r.Equal(service.SourcePlaceholder, d.Source)
		r.Len(d.Lines, 1)
		r.True(dec("1200").Equal(d.Lines[0].LineTotal))
		r.True(dec("200").Equal(d.Lines[0].VATAmount))
	})

	t.Run("veriban invoice", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		inv := incoming(ts)
		inv.Provider = entity.ProviderVeriban

		ts.repo.EXPECT().IncomingInvoice(gomock.Any(), ts.user.CompanyID, inv.ID).Return(inv, nil)

		d, err := ts.s.InvoiceDetails(ts.ctx(), inv.ID)
		r.NoError(err)
		r.Equal(service.SourcePlaceholder, d.Source)
		r.True(dec("1000").Equal(d.Lines[0].UnitPrice))
	})

	t.Run("nilvera not configured", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		inv := incoming(ts)

		ts.repo.EXPECT().IncomingInvoice(gomock.Any(), ts.user.CompanyID, inv.ID).Return(inv, nil)
		ts.repo.EXPECT().NilveraCredentials(gomock.Any(), ts.user.CompanyID).
			Return(entity.NilveraCredentials{IsActive: true}, nil)

		_, err := ts.s.InvoiceDetails(ts.ctx(), inv.ID)
		require.ErrorIs(t, err, entity.ErrNotConfigured)
	})
}

func TestService_InvoicePDF(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	creds := entity.NilveraCredentials{APIKey: "key", IsActive: true}
	inv := entity.IncomingInvoice{ID: uuid.Must(uuid.NewV4()), EInvoiceUUID: "abc", InvoiceNumber: "TED2025000000007"}

	ts.repo.EXPECT().IncomingInvoice(gomock.Any(), ts.user.CompanyID, inv.ID).Return(inv, nil)
	ts.repo.EXPECT().NilveraCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
	ts.nilvera.EXPECT().InvoicePDF(gomock.Any(), creds, "abc", entity.KindEFatura).Return([]byte("%PDF"), nil)

	pdf, name, err := ts.s.InvoicePDF(ts.ctx(), inv.ID, "")
	r.NoError(err)
	r.Equal([]byte("%PDF"), pdf)
	r.Equal("TED2025000000007.pdf", name)

	_, _, err = ts.s.InvoicePDF(ts.ctx(), inv.ID, "e-irsaliye")
	r.ErrorIs(err, entity.ErrInvalidArgument)
}

func TestService_SyncIncoming(t *testing.T) {
	t.Parallel()

	from := testNow.AddDate(0, 0, -3)

	t.Run("imports and publishes new invoices", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		creds := entity.VeribanCredentials{CompanyID: ts.user.CompanyID, Username: "u", IsActive: true}

		zipped, _, err := ubl.PackXML("a.xml", purchaseDoc(t, "TED2025000000001"))
		r.NoError(err)

		payloads := map[string]string{
			"u1": base64.StdEncoding.EncodeToString(zipped),
			"u3": base64.StdEncoding.EncodeToString(purchaseDoc(t, "TED2025000000003")),
		}

		ts.repo.EXPECT().VeribanCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
		ts.veriban.EXPECT().PurchaseInvoiceUUIDs(gomock.Any(), creds, from, testNow).
			Return([]string{"u1", "u2", "u3"}, nil)
		ts.repo.EXPECT().StoredInvoiceUUIDs(gomock.Any(), ts.user.CompanyID, []string{"u1", "u2", "u3"}).Return(nil, nil)
		ts.veriban.EXPECT().DownloadPurchaseInvoice(gomock.Any(), creds, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entity.VeribanCredentials, id string) (string, error) {
				p, ok := payloads[id]
				if !ok {
					return "", entity.ErrProvider
				}

				return p, nil
			}).Times(3)

		ts.repo.EXPECT().SaveIncomingInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv entity.IncomingInvoice) (bool, error) {
				r.Equal(entity.ProviderVeriban, inv.Provider)
				r.Equal(ts.user.CompanyID, inv.CompanyID)
				r.Equal("Tedarikçi A.Ş.", inv.SupplierName)
				r.NotNil(inv.IssueDate)
				return inv.EInvoiceUUID == "u1", nil
			}).Times(2)

		ts.publisher.EXPECT().SendInvoiceReceived(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e broker.InvoiceReceivedEvent) {
				r.Equal("u1", e.EInvoiceUUID)
				r.Equal("TED2025000000001", e.InvoiceNumber)
				r.True(dec("1200").Equal(e.PayableAmount))
			})

		sum, err := ts.s.SyncIncoming(ts.ctx(), from, testNow)
		r.NoError(err)
		r.Equal(service.SyncSummary{Found: 3, Imported: 2, New: 1, Skipped: 1}, sum)
	})

	t.Run("caps the batch", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		creds := entity.VeribanCredentials{CompanyID: ts.user.CompanyID, IsActive: true}

		ids := make([]string, 25)
		for i := range ids {
			ids[i] = uuid.Must(uuid.NewV4()).String()
		}

		ts.repo.EXPECT().VeribanCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
		ts.veriban.EXPECT().PurchaseInvoiceUUIDs(gomock.Any(), creds, from, testNow).Return(ids, nil)
		ts.repo.EXPECT().StoredInvoiceUUIDs(gomock.Any(), ts.user.CompanyID, gomock.Any()).Return(nil, nil)
		ts.veriban.EXPECT().DownloadPurchaseInvoice(gomock.Any(), creds, gomock.Any()).
			Return("", entity.ErrProvider).Times(20)

		sum, err := ts.s.SyncIncoming(ts.ctx(), from, testNow)
		r.NoError(err)
		r.Equal(service.SyncSummary{Found: 25, Skipped: 20}, sum)
	})

	t.Run("stored invoices do not use the batch", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		creds := entity.VeribanCredentials{CompanyID: ts.user.CompanyID, IsActive: true}

		ids := make([]string, 25)
		for i := range ids {
			ids[i] = uuid.Must(uuid.NewV4()).String()
		}

		stored := slices.Clone(ids[:20])
		fresh := slices.Clone(ids[20:])

		var (
			mu         sync.Mutex
			downloaded []string
		)

		ts.repo.EXPECT().VeribanCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
		ts.veriban.EXPECT().PurchaseInvoiceUUIDs(gomock.Any(), creds, from, testNow).Return(ids, nil)
		ts.repo.EXPECT().StoredInvoiceUUIDs(gomock.Any(), ts.user.CompanyID, gomock.Any()).Return(stored, nil)
		ts.veriban.EXPECT().DownloadPurchaseInvoice(gomock.Any(), creds, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entity.VeribanCredentials, id string) (string, error) {
				mu.Lock()
				defer mu.Unlock()

				downloaded = append(downloaded, id)

				return "", entity.ErrProvider
			}).Times(5)

		sum, err := ts.s.SyncIncoming(ts.ctx(), from, testNow)
		r.NoError(err)
		r.Equal(service.SyncSummary{Found: 25, Stored: 20, Skipped: 5}, sum)
		r.ElementsMatch(fresh, downloaded)
	})

	t.Run("stored lookup fails", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		creds := entity.VeribanCredentials{CompanyID: ts.user.CompanyID, IsActive: true}

		ts.repo.EXPECT().VeribanCredentials(gomock.Any(), ts.user.CompanyID).Return(creds, nil)
		ts.veriban.EXPECT().PurchaseInvoiceUUIDs(gomock.Any(), creds, from, testNow).Return([]string{"u1"}, nil)
		ts.repo.EXPECT().StoredInvoiceUUIDs(gomock.Any(), ts.user.CompanyID, []string{"u1"}).Return(nil, io.ErrUnexpectedEOF)

		_, err := ts.s.SyncIncoming(ts.ctx(), from, testNow)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("reversed range", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		_, err := ts.s.SyncIncoming(ts.ctx(), testNow, from)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestService_SyncAllIncoming(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	missing := uuid.Must(uuid.NewV4())
	active := uuid.Must(uuid.NewV4())
	creds := entity.VeribanCredentials{CompanyID: active, IsActive: true}

	ts.repo.EXPECT().VeribanCompanies(gomock.Any()).Return([]uuid.UUID{missing, active}, nil)
	ts.repo.EXPECT().VeribanCredentials(gomock.Any(), missing).Return(entity.VeribanCredentials{}, entity.ErrNotFound)
	ts.repo.EXPECT().VeribanCredentials(gomock.Any(), active).Return(creds, nil)
	ts.veriban.EXPECT().PurchaseInvoiceUUIDs(gomock.Any(), creds, testNow.Add(-7*24*time.Hour), testNow).Return(nil, nil)

	err := ts.s.SyncAllIncoming(context.Background())
	r.ErrorIs(err, entity.ErrNotConfigured)
	r.Contains(err.Error(), missing.String())
}

func TestService_NotifyInvoiceReceived(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	event := broker.InvoiceReceivedEvent{
		InvoiceID:     uuid.Must(uuid.NewV4()),
		CompanyID:     uuid.Must(uuid.NewV4()),
		InvoiceNumber: "TED2025000000001",
		SupplierName:  "Tedarikçi A.Ş.",
		PayableAmount: dec("1200"),
		Currency:      "TRY",
		IssueDate:     &issued,
	}

	t.Run("mails finance", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		ts.repo.EXPECT().Company(gomock.Any(), event.CompanyID).
			Return(entity.Company{ID: event.CompanyID, Name: "Alıcı Ltd.", FinanceEmail: "finans@alici.com.tr"}, nil)
		ts.mailer.EXPECT().Send("Yeni e-fatura: TED2025000000001", gomock.Any(), "finans@alici.com.tr").
			DoAndReturn(func(_, body string, _ ...string) error {
				r.Contains(body, "Tedarikçi A.Ş.")
				r.Contains(body, "10.03.2025")
				r.Contains(body, "1200.00 TRY")
				return nil
			})

		r.NoError(ts.s.NotifyInvoiceReceived(context.Background(), event))
	})

	t.Run("no finance address", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		ts.repo.EXPECT().Company(gomock.Any(), event.CompanyID).Return(entity.Company{ID: event.CompanyID}, nil)

		require.NoError(t, ts.s.NotifyInvoiceReceived(context.Background(), event))
	})

	t.Run("mail failure", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		ts.repo.EXPECT().Company(gomock.Any(), event.CompanyID).
			Return(entity.Company{ID: event.CompanyID, FinanceEmail: "finans@alici.com.tr"}, nil)
		ts.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		require.Error(t, ts.s.NotifyInvoiceReceived(context.Background(), event))
	})
}
