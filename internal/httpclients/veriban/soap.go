package veriban

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const (
	nsSoapEnv = "http://schemas.xmlsoap.org/soap/envelope/"
	nsTempuri = "http://tempuri.org/"
)

type envelope struct {
	XMLName xml.Name `xml:"soapenv:Envelope"`
	SoapEnv string   `xml:"xmlns:soapenv,attr"`
	Tem     string   `xml:"xmlns:tem,attr"`
	Header  struct{} `xml:"soapenv:Header"`
	Body    struct {
		Operation any
	} `xml:"soapenv:Body"`
}

func marshalEnvelope(operation any) ([]byte, error) {
	env := envelope{SoapEnv: nsSoapEnv, Tem: nsTempuri}
	env.Body.Operation = operation

	b, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	return append([]byte(xml.Header), b...), nil
}

// Fault is an error reported by the webservice. Code is zero when the fault carries no Veriban code.
type Fault struct {
	Code    int
	Message string
}

func (f *Fault) Error() string {
	if f.Code != 0 {
		return fmt.Sprintf("veriban fault %d: %s", f.Code, f.Message)
	}

	return "veriban fault: " + f.Message
}

func (f *Fault) Unwrap() error {
	return entity.ErrProvider
}

// IsSessionFault reports whether err means the session code is no longer accepted.
func IsSessionFault(err error) bool {
	var f *Fault

	return errors.As(err, &f) && f.Code == codeSession
}

const codeSession = 5003

var errorCodes = map[int]string{
	5000: "Sistem hatası",
	5001: "Parametre hatası",
	5002: "Giriş başarısız",
	5003: "Oturum hatası",
	5004: "Erişim hatası",
	5101: "Hash hatası",
	5102: "Arşiv ekleme hatası",
	5103: "Kuyruk ekleme hatası",
	5201: "İptal hatası",
	5301: "Kuyruk sorgulama hatası",
	5302: "Belge sorgulama hatası",
	5401: "Belge indirme hatası",
	5501: "İşlem hatası",
}

var stateNames = map[int]string{
	1: "İşleniyor",
	2: "İşlenmeye Bekliyor",
	3: "İşleniyor",
	4: "Hatalı",
	5: "Başarılı",
}

func ErrorMessage(code int) string {
	if m, ok := errorCodes[code]; ok {
		return m
	}

	return fmt.Sprintf("Bilinmeyen hata (kod: %d)", code)
}

func StateName(code int) string {
	if m, ok := stateNames[code]; ok {
		return m
	}

	return fmt.Sprintf("Bilinmeyen durum (kod: %d)", code)
}

// response holds the text of every leaf element of a SOAP answer keyed by local name, both as
// written and lower-cased. Only the first occurrence of a name is kept; <string> items are
// collected separately.
type response struct {
	fields  map[string]string
	strings []string
}

func (r response) get(name string) string {
	if v, ok := r.fields[name]; ok {
		return v
	}

	return r.fields[strings.ToLower(name)]
}

func (r response) has(name string) bool {
	_, exact := r.fields[name]
	_, folded := r.fields[strings.ToLower(name)]

	return exact || folded
}

func (r response) number(name string) int {
	v, _ := strconv.Atoi(r.get(name))
	return v
}

func (r response) flag(name string) bool {
	return strings.EqualFold(r.get(name), "true")
}

func readResponse(body []byte) (response, error) {
	resp := response{fields: map[string]string{}}

	dec := xml.NewDecoder(bytes.NewReader(body))

	var (
		stack []string
		text  strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return response{}, fmt.Errorf("%w: decode soap response: %w", entity.ErrProvider, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			text.Reset()
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}

			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			value := strings.TrimSpace(text.String())
			text.Reset()

			if name == "string" {
				resp.strings = append(resp.strings, value)
				continue
			}

			for _, key := range []string{name, strings.ToLower(name)} {
				if _, ok := resp.fields[key]; !ok {
					resp.fields[key] = value
				}
			}
		}
	}

	return resp, nil
}

// fault extracts a fault from the answer. Veriban's own FaultDescription wins over the generic
// SOAP faultstring.
func (r response) fault() error {
	if !r.has("FaultCode") && !r.has("FaultDescription") && !r.has("faultstring") && !r.has("faultcode") {
		return nil
	}

	f := &Fault{}

	f.Code, _ = strconv.Atoi(r.get("FaultCode"))
	if f.Code == 0 {
		f.Code = leadingCode(r.get("faultstring"))
	}

	for _, m := range []string{r.get("FaultDescription"), r.get("faultstring"), r.get("FaultCode"), r.get("faultcode")} {
		if m != "" {
			f.Message = m
			break
		}
	}

	if f.Message == "" && f.Code != 0 {
		f.Message = ErrorMessage(f.Code)
	}

	if f.Message == "" {
		f.Message = "Bilinmeyen SOAP hatası"
	}

	return f
}

// leadingCode picks a four digit 5xxx code from messages like "5003 - Oturum hatası".
func leadingCode(s string) int {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return 0
	}

	code, err := strconv.Atoi(s[:4])
	if err != nil || code < 5000 || code > 5999 {
		return 0
	}

	return code
}
