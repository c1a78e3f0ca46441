package api

import (
	"net/http"
	"time"

	"github.com/samandr77/microservices/erp/internal/entity"
)

type CalendarEventsResponse struct {
	Events []entity.CalendarEvent `json:"events"`
}

// CalendarEvents godoc
// @Summary      Takvim olayları
// @Description  Şirketin kayıtlarını tek bir takvim zaman çizelgesine dönüştürür
// @Tags         calendar
// @Produce      json
// @Param        from query string false "Başlangıç tarihi (YYYY-MM-DD)"
// @Param        to query string false "Bitiş tarihi (YYYY-MM-DD)"
// @Param        types query string false "Virgülle ayrılmış olay türleri, ör. activity,order"
// @Success      200 {object} CalendarEventsResponse
// @Failure      400 {object} ResponseError "Geçersiz istek parametreleri"
// @Failure      500 {object} ResponseError "Sunucu hatası"
// @Security     BearerAuth
// @Router       /calendar/events [get]
func (h *Handler) CalendarEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	from, err := parseDate(q, "from")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	to, err := parseDate(q, "to")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	// a plain end date covers the whole day
	if to != nil && len(q.Get("to")) == len(dateLayout) {
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	var types []entity.EventType
	for _, t := range splitList(q, "types") {
		types = append(types, entity.EventType(t))
	}

	events, err := h.s.CalendarEvents(ctx, from, to, types)
	if err != nil {
		SendServiceErr(ctx, w, err, "takvim olayları alınamadı")
		return
	}

	if events == nil {
		events = []entity.CalendarEvent{}
	}

	SendJSON(ctx, w, http.StatusOK, CalendarEventsResponse{Events: events})
}
