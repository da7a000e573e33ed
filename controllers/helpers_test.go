package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mohitt09/Counselling/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test; cache=shared keeps it alive
	// across the pool's connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Appointment{},
		&models.Doctor{},
		&models.TimeSlot{},
		&models.Blog{},
		&models.Contact{},
		&models.Payment{},
		&models.Admin{},
		&models.Credentials{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type sentMail struct {
	to, subject, body, attachmentName string
	attachment                        []byte
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, htmlBody, attachmentName string, attachment []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, htmlBody, attachmentName, attachment})
	return nil
}

type sentWhatsapp struct {
	name, number, doctorName string
}

type fakeNotifier struct {
	smsBodies []string
	whatsapps []sentWhatsapp
	err       error
}

func (f *fakeNotifier) SendSMS(body string) error {
	if f.err != nil {
		return f.err
	}
	f.smsBodies = append(f.smsBodies, body)
	return nil
}

func (f *fakeNotifier) SendWhatsapp(name, number, doctorName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.whatsapps = append(f.whatsapps, sentWhatsapp{name, number, doctorName})
	return "SM123", nil
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, r http.Handler, method, path string, fields map[string]string, filename string, file []byte, fileContentType string) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write form field %s: %v", k, err)
		}
	}
	if filename != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
		h.Set("Content-Type", fileContentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(file); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// validationMessages extracts the msg of each entry in a 400 errors payload.
func validationMessages(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var out struct {
		Errors []FieldError `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode validation response %q: %v", w.Body.String(), err)
	}
	msgs := make([]string, 0, len(out.Errors))
	for _, fe := range out.Errors {
		msgs = append(msgs, fe.Message)
	}
	return msgs
}

func containsMessage(msgs []string, want string) bool {
	for _, m := range msgs {
		if m == want {
			return true
		}
	}
	return false
}
