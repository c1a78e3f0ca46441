package api

import (
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/erp/internal/assistant"
	"github.com/samandr77/microservices/erp/internal/entity"
)

type ChatMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessageRequest `json:"messages" validate:"required,min=1,max=100,dive"`
}

func (r ChatRequest) messages() []entity.ChatMessage {
	out := make([]entity.ChatMessage, len(r.Messages))
	for i, m := range r.Messages {
		out[i] = entity.ChatMessage{Role: entity.ChatRole(m.Role), Content: m.Content}
	}

	return out
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type AssistantStatusResponse struct {
	Configured bool `json:"configured"`
}

// AssistantStatus godoc
// @Summary      Asistan durumu
// @Description  Yapay zekâ sağlayıcısının yapılandırılıp yapılandırılmadığını döner
// @Tags         assistant
// @Produce      json
// @Success      200 {object} AssistantStatusResponse
// @Security     BearerAuth
// @Router       /assistant/status [get]
func (h *Handler) AssistantStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	SendJSON(ctx, w, http.StatusOK, AssistantStatusResponse{Configured: h.s.AssistantStatus(ctx)})
}

// Chat godoc
// @Summary      Sohbet
// @Description  Mesajları dil modeline iletir ve tek parça yanıt döner
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Sohbet geçmişi"
// @Success      200 {object} ChatResponse
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Failure      502 {object} ResponseError "Sağlayıcı hatası"
// @Failure      503 {object} ResponseError "Asistan yapılandırılmamış"
// @Security     BearerAuth
// @Router       /assistant/chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	reply, err := h.s.Chat(ctx, req.messages())
	if err != nil {
		SendServiceErr(ctx, w, err, "yanıt alınamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ChatResponse{Reply: reply})
}

// ChatStream godoc
// @Summary      Akışlı sohbet
// @Description  Modelin yanıtını server-sent events olarak aktarır
// @Tags         assistant
// @Accept       json
// @Produce      text/event-stream
// @Param        request body ChatRequest true "Sohbet geçmişi"
// @Success      200 {string} string "SSE akışı"
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Failure      503 {object} ResponseError "Asistan yapılandırılmamış"
// @Security     BearerAuth
// @Router       /assistant/chat/stream [post]
func (h *Handler) ChatStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	stream := &eventStream{w: w}

	err = h.s.ChatStream(ctx, req.messages(), stream)
	if err != nil {
		if stream.started {
			// headers are already sent, the client sees a cut stream
			slog.ErrorContext(ctx, "chat stream", "error", err)
			return
		}

		SendServiceErr(ctx, w, err, "yanıt alınamadı")
	}
}

type QuestionRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// GenerateSQL godoc
// @Summary      SQL üretimi
// @Description  Soruyu tek bir SELECT sorgusuna çevirir
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body QuestionRequest true "Soru"
// @Success      200 {object} service.SQLResult
// @Failure      400 {object} ResponseError "Geçersiz istek veya izin verilmeyen SQL"
// @Failure      502 {object} ResponseError "Sağlayıcı hatası"
// @Security     BearerAuth
// @Router       /assistant/sql [post]
func (h *Handler) GenerateSQL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuestionRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	res, err := h.s.GenerateSQL(ctx, req.Question)
	if err != nil {
		SendServiceErr(ctx, w, err, "sorgu üretilemedi")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// RunQuery godoc
// @Summary      Sorgu çalıştırma
// @Description  Üretilen SELECT sorgusunu salt okunur işlemde çalıştırır
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body QuestionRequest true "Soru"
// @Success      200 {object} service.QueryResult
// @Failure      400 {object} ResponseError "Geçersiz istek veya izin verilmeyen SQL"
// @Failure      403 {object} ResponseError "Yetki yok"
// @Security     BearerAuth
// @Router       /assistant/query [post]
func (h *Handler) RunQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuestionRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	res, err := h.s.RunQuery(ctx, req.Question)
	if err != nil {
		SendServiceErr(ctx, w, err, "sorgu çalıştırılamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

type AnalyzeRequest struct {
	Table   string           `json:"table" validate:"required,max=100"`
	Rows    []map[string]any `json:"rows" validate:"max=1000"`
	Summary map[string]any   `json:"summary"`
}

// Analyze godoc
// @Summary      Veri analizi
// @Description  Tablo verisi için içgörü ve öneriler üretir
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body AnalyzeRequest true "Tablo verisi"
// @Success      200 {object} assistant.Analysis
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Security     BearerAuth
// @Router       /assistant/analyze [post]
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnalyzeRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	ans, err := h.s.Analyze(ctx, req.Table, req.Rows, req.Summary)
	if err != nil {
		SendServiceErr(ctx, w, err, "analiz yapılamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ans.Value())
}

type MapColumnsRequest struct {
	Columns []string                `json:"columns" validate:"required,min=1,max=200"`
	Targets []assistant.TargetField `json:"targets"`
}

// MapColumns godoc
// @Summary      Sütun eşleme
// @Description  İçe aktarılan dosyanın sütunlarını hedef alanlara eşler
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body MapColumnsRequest true "Sütunlar"
// @Success      200 {object} assistant.ColumnMappings
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Security     BearerAuth
// @Router       /assistant/map-columns [post]
func (h *Handler) MapColumns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MapColumnsRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	ans, err := h.s.MapColumns(ctx, req.Columns, req.Targets)
	if err != nil {
		SendServiceErr(ctx, w, err, "sütunlar eşlenemedi")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ans.Value())
}

type ReportRequest struct {
	Question string                   `json:"question" validate:"required,max=2000"`
	Context  *assistant.ReportContext `json:"context"`
}

// Report godoc
// @Summary      Rapor planı
// @Description  Sorudan SQL, açıklama ve grafik yapılandırması üretir
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body ReportRequest true "Rapor sorusu"
// @Success      200 {object} assistant.ReportPlan
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Security     BearerAuth
// @Router       /assistant/report [post]
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReportRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	ans, err := h.s.Report(ctx, req.Question, req.Context)
	if err != nil {
		SendServiceErr(ctx, w, err, "rapor hazırlanamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ans.Value())
}

type DispatchRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// Dispatch godoc
// @Summary      Fonksiyon çağrısı
// @Description  Mesajda Excel dışa aktarma veya görev yönetimi isteği varsa çalıştırır
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request body DispatchRequest true "Mesaj"
// @Success      200 {object} service.DispatchResult
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Failure      404 {object} ResponseError "Görev bulunamadı"
// @Security     BearerAuth
// @Router       /assistant/dispatch [post]
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DispatchRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	res, err := h.s.Dispatch(ctx, req.Message)
	if err != nil {
		SendServiceErr(ctx, w, err, "istek işlenemedi")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
