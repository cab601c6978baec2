package handler

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"gorm.io/datatypes"
)

func TestDashboardStats(t *testing.T) {
	api := setupTestAPI(t)

	for i, status := range []string{db.EnquiryNew, db.EnquiryNew, db.EnquiryClosed} {
		e := db.Enquiry{Name: "E", Email: "e@example.com", Phone: "1", MatterType: db.MatterOther, Subject: string(rune('a' + i)), Message: "m", Status: status}
		if err := api.db.Create(&e).Error; err != nil {
			t.Fatalf("failed to seed enquiry: %v", err)
		}
	}
	ap := db.Appointment{
		Name: "A", Email: "a@example.com", Phone: "1", MatterType: db.MatterOther,
		PreferredDate: datatypes.Date(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)),
		PreferredTime: datatypes.NewTime(9, 0, 0, 0),
		Status:        db.AppointmentPending,
	}
	if err := api.db.Create(&ap).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	subs := []db.NewsletterSubscriber{{Email: "a@x.com", IsActive: true}, {Email: "b@x.com", IsActive: false}}
	if err := api.db.Create(&subs).Error; err != nil {
		t.Fatalf("failed to seed subscribers: %v", err)
	}

	w := perform(t, api.DashboardStats, testRequest{method: http.MethodGet, target: "/api/admin/dashboard/stats/"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeJSON(t, w)
	want := map[string]float64{
		"total_enquiries":      3,
		"new_enquiries":        2,
		"total_appointments":   1,
		"pending_appointments": 1,
		"total_subscribers":    1,
		"total_news":           0,
	}
	for key, value := range want {
		if body[key] != value {
			t.Fatalf("expected %s=%v, got %v", key, value, body[key])
		}
	}
	if len(body["recent_enquiries"].([]any)) != 3 {
		t.Fatalf("expected 3 recent enquiries, got %v", body["recent_enquiries"])
	}
	recent := body["recent_appointments"].([]any)
	if len(recent) != 1 || recent[0].(map[string]any)["preferred_date"] != "2026-12-01" {
		t.Fatalf("unexpected recent appointments: %v", recent)
	}
}

func TestSEOByPage(t *testing.T) {
	api := setupTestAPI(t)

	meta := db.SEOMetadata{PageName: "home", Title: "Advocates", Description: "Trusted counsel", OgImage: "seo/og.png"}
	if err := api.db.Create(&meta).Error; err != nil {
		t.Fatalf("failed to seed seo metadata: %v", err)
	}

	w := perform(t, api.SEOByPage, testRequest{method: http.MethodGet, target: "/api/seo/home/", params: gin.Params{{Key: "page_name", Value: "home"}}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeJSON(t, w)
	if body["title"] != "Advocates" || body["og_image_url"] != "http://example.com/media/seo/og.png" {
		t.Fatalf("unexpected seo body: %v", body)
	}

	missing := perform(t, api.SEOByPage, testRequest{method: http.MethodGet, target: "/api/seo/about/", params: gin.Params{{Key: "page_name", Value: "about"}}})
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", missing.Code)
	}
	if msg := decodeJSON(t, missing)["message"]; msg != "SEO metadata not found" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestUploadImage(t *testing.T) {
	api := setupTestAPI(t)

	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	upload := func(name string, content []byte) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		mw.WriteField("folder", "team")
		part, _ := mw.CreateFormFile("file", name)
		part.Write(content)
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads/", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		api.UploadImage(c)
		return w
	}

	w := upload("photo.png", img.Bytes())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	path, _ := body["path"].(string)
	if !strings.HasPrefix(path, "team/") || !strings.HasSuffix(path, ".png") {
		t.Fatalf("unexpected stored path %q", path)
	}
	if body["url"] != "http://example.com/media/"+path {
		t.Fatalf("unexpected url %v", body["url"])
	}

	bad := upload("notes.png", []byte("not an image"))
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", bad.Code)
	}
}

func TestHealth(t *testing.T) {
	api := setupTestAPI(t)

	w := perform(t, api.Health, testRequest{method: http.MethodGet, target: "/healthz"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
