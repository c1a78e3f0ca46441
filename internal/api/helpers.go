package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const (
	errInternalText  = "Sunucu hatası"
	errBadBodyText   = "Geçersiz istek gövdesi"
	errBadParamsText = "Geçersiz istek parametreleri"

	dateLayout   = "2006-01-02"
	periodLayout = "2006-01"

	maxBodySize = 10 << 20
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// SendServiceErr maps a service error onto a status code. msg is used for errors without a
// more specific message.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrIncorrectRequestBody):
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
	case errors.Is(err, entity.ErrInvalidArgument):
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
	case errors.Is(err, entity.ErrForbiddenSQL):
		SendErr(ctx, w, http.StatusBadRequest, err, "Yalnızca SELECT sorgularına izin verilir")
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, "Bu işlem için yetkiniz yok")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Kayıt bulunamadı")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, "Kayıt zaten mevcut")
	case errors.Is(err, entity.ErrNotConfigured):
		SendErr(ctx, w, http.StatusServiceUnavailable, err, "Entegrasyon yapılandırılmamış veya aktif değil")
	case errors.Is(err, entity.ErrProvider):
		SendErr(ctx, w, http.StatusBadGateway, err, "Entegratör isteği başarısız oldu")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

// decodeJSON reads the request body into dst and runs the struct's validate tags.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err)
	}

	err = validate.Struct(dst)
	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrInvalidArgument, validationMessage(err))
	}

	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))

	for _, e := range verrs {
		if e.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s (%s=%s)", e.Field(), e.Tag(), e.Param()))
		} else {
			fields = append(fields, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
		}
	}

	return "invalid fields: " + strings.Join(fields, ", ")
}

// parseDate accepts a plain date or an RFC 3339 timestamp. An empty value is nil.
func parseDate(q url.Values, key string) (*time.Time, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil //nolint:nilnil
	}

	t, err := time.Parse(dateLayout, v)
	if err != nil {
		t, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not a date", entity.ErrInvalidArgument, key, v)
		}
	}

	return &t, nil
}

func parseLimit(q url.Values, key string, def, maxValue uint64) uint64 {
	n, err := strconv.ParseUint(q.Get(key), 10, 64)
	if err != nil || n == 0 || n > maxValue {
		return def
	}

	return n
}

// splitList reads a comma separated query parameter, which may also be repeated.
func splitList(q url.Values, key string) []string {
	var out []string

	for _, v := range q[key] {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}

	return out
}

func attachment(w http.ResponseWriter, contentType, name string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(name)))
}

// eventStream relays written chunks to the client as server-sent events. Headers are only
// sent with the first chunk so that a failure before any output still gets a JSON error.
type eventStream struct {
	w       http.ResponseWriter
	started bool
}

func (s *eventStream) Write(p []byte) (int, error) {
	if !s.started {
		s.started = true

		s.w.Header().Set("Content-Type", "text/event-stream")
		s.w.Header().Set("Cache-Control", "no-cache")
		s.w.Header().Set("Connection", "keep-alive")
		s.w.WriteHeader(http.StatusOK)
	}

	n, err := s.w.Write(p)
	if err != nil {
		return n, err
	}

	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}

	return n, nil
}
