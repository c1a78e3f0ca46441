package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samandr77/microservices/erp/internal/entity"
)

type Mode string

const (
	ModeChat       Mode = "chat"
	ModeSQL        Mode = "sql"
	ModeAnalyze    Mode = "analyze"
	ModeMapColumns Mode = "map-columns"
	ModeReport     Mode = "report"
)

// Sampling returns the temperature, token limit and whether a JSON object is requested for a mode.
func (m Mode) Sampling() (temperature float64, maxTokens int, jsonObject bool) {
	switch m {
	case ModeSQL:
		return 0.1, 500, false
	case ModeAnalyze, ModeMapColumns, ModeReport:
		return 0.7, 2000, true
	default:
		return 0.7, 2000, false
	}
}

const analyzeSampleRows = 10

const databaseSchema = `
TABLOLAR VE İLİŞKİLER:

1. proposals (Teklifler)
   - id, customer_id, status, total_amount, currency, created_at, valid_until
   - status: 'draft', 'sent', 'accepted', 'rejected', 'expired'

2. sales_invoice_items (Satış Faturası Kalemleri)
   - id, invoice_id, description, quantity, unit_price, vat_rate, line_total

3. customers (Müşteriler)
   - id, name, email, phone, address, city, balance, type, status, created_at

4. products (Ürünler)
   - id, name, code, price, quantity (stok), category_id, unit, created_at

5. orders (Siparişler)
   - id, customer_id, status, total_amount, created_at

6. sales_invoices (Satış Faturaları)
   - id, customer_name, total, transfer_status, invoice_date, due_date

7. incoming_invoices (Alış Faturaları)
   - id, supplier_name, payable_amount, issue_date

8. suppliers (Tedarikçiler)
   - id, name, email, phone, balance, created_at

9. service_requests (Servis Talepleri)
   - id, customer_id, service_status, priority, created_at, completed_at, assigned_to

10. employees (Çalışanlar)
    - id, first_name, last_name, email, department_id, is_active, hire_date

11. vehicles (Araçlar)
    - id, plate_number, brand, model, year, status

12. opportunities (Satış Fırsatları)
    - id, customer_id, value, status, stage, probability, expected_close_date

13. activities (Aktiviteler/Görevler)
    - id, title, status, priority, due_date, assignee_id
`

// ReportContext narrows a report question.
type ReportContext struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

type TargetField struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ReportPlan is the model's answer in report mode.
type ReportPlan struct {
	SQL         string      `json:"sql"`
	Explanation string      `json:"explanation"`
	ChartType   string      `json:"chartType"`
	ChartConfig ChartConfig `json:"chartConfig"`
}

type ChartConfig struct {
	XKey  string `json:"xKey"`
	YKey  string `json:"yKey"`
	Title string `json:"title"`
}

type Analysis struct {
	Summary         string   `json:"summary"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	Alerts          []string `json:"alerts"`
}

type ColumnMapping struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Confidence float64 `json:"confidence"`
}

type ColumnMappings struct {
	Mappings []ColumnMapping `json:"mappings"`
}

func system(content string) entity.ChatMessage {
	return entity.ChatMessage{Role: entity.RoleSystemMsg, Content: content}
}

func user(content string) entity.ChatMessage {
	return entity.ChatMessage{Role: entity.RoleUserMsg, Content: content}
}

func SQLMessages(query string) []entity.ChatMessage {
	return []entity.ChatMessage{
		system(`Sen bir SQL uzmanısın. Kullanıcının doğal dil sorgularını PostgreSQL SELECT sorgularına çeviriyorsun.
` + databaseSchema + `
KURALLAR:
- SADECE SELECT sorguları oluştur
- INSERT, UPDATE, DELETE, DROP, ALTER, CREATE gibi değiştirici ifadeler YASAK
- Sorguyu düz metin olarak döndür, markdown formatı kullanma
- Sadece SQL sorgusunu döndür, açıklama ekleme
- Tablo ve sütun adlarını doğru kullan
- Sadece yukarıda listelenen tabloları kullan, şema adı yazma`),
		user(query),
	}
}

func ReportMessages(query string, rc *ReportContext) []entity.ChatMessage {
	content := query

	if rc != nil {
		content += fmt.Sprintf("\nFİLTRELER:\n- Başlangıç: %s\n- Bitiş: %s\n- Para Birimi: %s",
			or(rc.StartDate, "Belirtilmedi"), or(rc.EndDate, "Belirtilmedi"), or(rc.Currency, "TRY"))
	}

	return []entity.ChatMessage{
		system(`Sen bir iş analizi ve raporlama uzmanısın. Kullanıcının Türkçe sorularını analiz edip:
1. Uygun PostgreSQL SELECT sorgusu oluştur
2. Sonuçların nasıl görselleştirileceğini öner
3. Kısa bir açıklama yaz
` + databaseSchema + `
KURALLAR:
- SADECE SELECT sorguları oluştur, veri değiştiren sorgular YASAK
- Tarih filtrelerini WHERE clause'a ekle
- Aggregate fonksiyonları (SUM, COUNT, AVG) kullan
- Anlamlı alias'lar kullan

YANIT FORMATI (JSON):
{
  "sql": "SELECT sorgusu",
  "explanation": "Türkçe kısa açıklama",
  "chartType": "table|bar|line|pie|area",
  "chartConfig": {
    "xKey": "x ekseni alan adı",
    "yKey": "y ekseni alan adı",
    "title": "Grafik başlığı"
  }
}`),
		user(content),
	}
}

func AnalyzeMessages(tableName string, rows []map[string]any, summary map[string]any) ([]entity.ChatMessage, error) {
	sample := rows
	if len(sample) > analyzeSampleRows {
		sample = sample[:analyzeSampleRows]
	}

	sampleJSON, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sample: %w", err)
	}

	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Aşağıdaki verileri analiz et:\n\nTABLO: %s\nKAYIT SAYISI: %d\n\n", tableName, len(rows))
	fmt.Fprintf(&b, "VERİ ÖZETİ:\n%s\n\nÖRNEK VERİLER:\n%s\n\n", summaryJSON, sampleJSON)
	b.WriteString(`JSON formatında yanıt ver:
{
  "summary": "2-3 cümlelik özet",
  "insights": ["önemli bulgu 1", "bulgu 2", "bulgu 3"],
  "recommendations": ["öneri 1", "öneri 2"],
  "alerts": ["dikkat edilmesi gereken durum"]
}`)

	return []entity.ChatMessage{
		system("Sen bir veri analiz uzmanısın. Verileri analiz edip Türkçe olarak içgörüler sunuyorsun.\n" +
			"Kısa, öz ve aksiyon odaklı analizler yap."),
		user(b.String()),
	}, nil
}

func MapColumnsMessages(sourceColumns []string, targets []TargetField) ([]entity.ChatMessage, error) {
	src, err := json.Marshal(sourceColumns)
	if err != nil {
		return nil, fmt.Errorf("marshal source columns: %w", err)
	}

	dst, err := json.Marshal(targets)
	if err != nil {
		return nil, fmt.Errorf("marshal target fields: %w", err)
	}

	return []entity.ChatMessage{
		system(`Sen bir veri eşleştirme uzmanısın. Excel/CSV kolon isimlerini veritabanı alanlarıyla eşleştiriyorsun.

Yanıtını JSON formatında ver:
{
  "mappings": [
    { "source": "kaynak_kolon", "target": "hedef_alan", "confidence": 0.95 }
  ]
}`),
		user(fmt.Sprintf("Kaynak kolonlar: %s\nHedef alanlar: %s\n\nBu kolonları en uygun hedef alanlarla eşleştir.", src, dst)),
	}, nil
}

// ParseJSON decodes a json_object answer. When the model returned something else, the raw text
// is handed back in a ParseFailure so the caller can still show it.
func ParseJSON[T any](content string) (T, *ParseFailure) {
	var out T

	err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out)
	if err != nil {
		return out, &ParseFailure{Content: content, ParseError: true}
	}

	return out, nil
}

type ParseFailure struct {
	Content    string `json:"content"`
	ParseError bool   `json:"parseError"`
}

func or(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
