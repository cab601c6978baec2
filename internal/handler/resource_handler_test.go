package handler

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
)

func TestCreatePracticeAreaDerivesSlugAndLogsActivity(t *testing.T) {
	api := setupTestAPI(t)
	user := seedStaff(t, api)

	w := perform(t, api.PracticeAreas.Create, testRequest{
		method: http.MethodPost,
		target: "/api/admin/practice-areas/",
		body:   map[string]any{"title": "Family Law", "description": "Divorce and custody"},
		user:   user,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeJSON(t, w)
	if body["slug"] != "family-law" {
		t.Fatalf("expected derived slug, got %v", body["slug"])
	}
	if body["is_active"] != true || body["icon"] != "⚖️" {
		t.Fatalf("expected defaults to apply, got %v", body)
	}

	var logs []db.ActivityLog
	if err := api.db.Find(&logs).Error; err != nil {
		t.Fatalf("failed to load activity logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 activity log, got %d", len(logs))
	}
	entry := logs[0]
	if entry.Action != "Created" || entry.ModelName != "PracticeArea" || entry.Details != "Family Law" {
		t.Fatalf("unexpected activity log: %+v", entry)
	}
	if entry.UserID == nil || *entry.UserID != user.ID {
		t.Fatalf("expected activity log to reference the acting user, got %v", entry.UserID)
	}
	if entry.ObjectID == nil || *entry.ObjectID != uint(body["id"].(float64)) {
		t.Fatalf("expected activity log object id, got %v", entry.ObjectID)
	}
}

func TestCreatePracticeAreaDuplicateSlug(t *testing.T) {
	api := setupTestAPI(t)
	user := seedStaff(t, api)

	for i, want := range []int{http.StatusCreated, http.StatusBadRequest} {
		w := perform(t, api.PracticeAreas.Create, testRequest{
			method: http.MethodPost,
			target: "/api/admin/practice-areas/",
			body:   map[string]any{"title": "Family Law", "description": "Desc"},
			user:   user,
		})
		if w.Code != want {
			t.Fatalf("request %d: expected status %d, got %d: %s", i, want, w.Code, w.Body.String())
		}
		if want == http.StatusBadRequest {
			if msgs := fieldMessages(t, decodeJSON(t, w), "slug"); len(msgs) == 0 {
				t.Fatalf("expected slug error, got %s", w.Body.String())
			}
		}
	}

	var count int64
	api.db.Model(&db.PracticeArea{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 practice area, got %d", count)
	}
}

func TestCreatePracticeAreaRequiresTitle(t *testing.T) {
	api := setupTestAPI(t)

	w := perform(t, api.PracticeAreas.Create, testRequest{
		method: http.MethodPost,
		target: "/api/admin/practice-areas/",
		body:   map[string]any{"description": "Desc"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	msgs := fieldMessages(t, decodeJSON(t, w), "title")
	if len(msgs) != 1 || msgs[0] != "This field is required." {
		t.Fatalf("unexpected title errors: %v", msgs)
	}
}

func TestPublicListHidesInactiveRecords(t *testing.T) {
	api := setupTestAPI(t)

	seed := []db.PracticeArea{
		{Title: "Visible", Slug: "visible", Description: "d", IsActive: true},
		{Title: "Hidden", Slug: "hidden", Description: "d", IsActive: false},
	}
	if err := api.db.Create(&seed).Error; err != nil {
		t.Fatalf("failed to seed practice areas: %v", err)
	}

	public := decodeJSON(t, perform(t, api.PracticeAreas.PublicList, testRequest{method: http.MethodGet, target: "/api/practice-areas/"}))
	if public["count"] != float64(1) {
		t.Fatalf("expected 1 public record, got %v", public["count"])
	}
	results := public["results"].([]any)
	if results[0].(map[string]any)["slug"] != "visible" {
		t.Fatalf("unexpected public results: %v", results)
	}

	admin := decodeJSON(t, perform(t, api.PracticeAreas.AdminList, testRequest{method: http.MethodGet, target: "/api/admin/practice-areas/"}))
	if admin["count"] != float64(2) {
		t.Fatalf("expected 2 admin records, got %v", admin["count"])
	}

	w := perform(t, api.PracticeAreas.PublicRetrieve, testRequest{method: http.MethodGet, target: "/api/practice-areas/hidden/", params: keyParam("hidden")})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected hidden record to be 404, got %d", w.Code)
	}
}

func TestListPaginationLinks(t *testing.T) {
	api := setupTestAPI(t)

	for i := 0; i < 12; i++ {
		faq := db.FAQ{Question: "Q" + strconv.Itoa(i), Answer: "A", IsPublished: true}
		if err := api.db.Create(&faq).Error; err != nil {
			t.Fatalf("failed to seed faq: %v", err)
		}
	}

	first := decodeJSON(t, perform(t, api.FAQs.PublicList, testRequest{method: http.MethodGet, target: "/api/faqs/"}))
	if first["count"] != float64(12) || len(first["results"].([]any)) != 10 {
		t.Fatalf("unexpected first page: count=%v results=%d", first["count"], len(first["results"].([]any)))
	}
	if first["next"] != "http://example.com/api/faqs/?page=2" || first["previous"] != nil {
		t.Fatalf("unexpected links on first page: next=%v previous=%v", first["next"], first["previous"])
	}

	second := decodeJSON(t, perform(t, api.FAQs.PublicList, testRequest{method: http.MethodGet, target: "/api/faqs/?page=2"}))
	if len(second["results"].([]any)) != 2 || second["next"] != nil {
		t.Fatalf("unexpected second page: %v", second)
	}
	if second["previous"] != "http://example.com/api/faqs/" {
		t.Fatalf("expected previous link without page param, got %v", second["previous"])
	}

	sized := decodeJSON(t, perform(t, api.FAQs.PublicList, testRequest{method: http.MethodGet, target: "/api/faqs/?page_size=5"}))
	if len(sized["results"].([]any)) != 5 {
		t.Fatalf("expected page_size to apply, got %d", len(sized["results"].([]any)))
	}

	for _, target := range []string{"/api/faqs/?page=3", "/api/faqs/?page=abc"} {
		w := perform(t, api.FAQs.PublicList, testRequest{method: http.MethodGet, target: target})
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected status 404, got %d", target, w.Code)
		}
		if decodeJSON(t, w)["message"] != msgInvalidPage {
			t.Fatalf("%s: unexpected body %s", target, w.Body.String())
		}
	}
}

func TestNewsDetailIncrementsViews(t *testing.T) {
	api := setupTestAPI(t)

	article := db.NewsArticle{Title: "Ruling", Slug: "ruling", Category: db.NewsCivil, Summary: "s", Content: "**bold**", IsPublished: true}
	if err := api.db.Create(&article).Error; err != nil {
		t.Fatalf("failed to seed article: %v", err)
	}

	for want := 1; want <= 2; want++ {
		w := perform(t, api.News.PublicRetrieve, testRequest{method: http.MethodGet, target: "/api/news/ruling/", params: keyParam("ruling")})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		body := decodeJSON(t, w)
		if body["views"] != float64(want) {
			t.Fatalf("expected views %d, got %v", want, body["views"])
		}
		if body["content_html"] != "<p><strong>bold</strong></p>\n" {
			t.Fatalf("unexpected content_html: %q", body["content_html"])
		}
	}

	var stored db.NewsArticle
	api.db.First(&stored, article.ID)
	if stored.Views != 2 {
		t.Fatalf("expected stored views 2, got %d", stored.Views)
	}
}

func TestNewsPublishedDateIsStampedOnce(t *testing.T) {
	api := setupTestAPI(t)
	user := seedStaff(t, api)

	w := perform(t, api.News.Create, testRequest{
		method: http.MethodPost,
		target: "/api/admin/news/",
		body: map[string]any{
			"title": "Draft", "category": "tax", "summary": "s", "content": "c",
		},
		user: user,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decodeJSON(t, w)
	if created["published_date"] != nil {
		t.Fatalf("expected no published_date on a draft, got %v", created["published_date"])
	}
	if created["author"] != float64(user.ID) || created["author_name"] != "" {
		t.Fatalf("expected author to be the acting user, got %v / %v", created["author"], created["author_name"])
	}
	id := uint(created["id"].(float64))

	publish := perform(t, api.News.Update, testRequest{
		method: http.MethodPatch,
		target: "/api/admin/news/" + strconv.Itoa(int(id)) + "/",
		body:   map[string]any{"is_published": true},
		params: idParam(id),
		user:   user,
	})
	if publish.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", publish.Code, publish.Body.String())
	}
	stamped := decodeJSON(t, publish)["published_date"]
	if stamped == nil {
		t.Fatal("expected published_date to be stamped")
	}

	time.Sleep(10 * time.Millisecond)
	edit := perform(t, api.News.Update, testRequest{
		method: http.MethodPatch,
		target: "/api/admin/news/" + strconv.Itoa(int(id)) + "/",
		body:   map[string]any{"title": "Final"},
		params: idParam(id),
		user:   user,
	})
	body := decodeJSON(t, edit)
	if body["published_date"] != stamped {
		t.Fatalf("expected published_date to stay %v, got %v", stamped, body["published_date"])
	}
	if body["title"] != "Final" || body["slug"] != "draft" {
		t.Fatalf("expected patch to keep slug and change title, got %v", body)
	}
}

func TestCaseStudyBlankPracticeAreaEqualsOmitted(t *testing.T) {
	api := setupTestAPI(t)

	base := map[string]any{"challenge": "c", "solution": "s", "outcome": "o"}
	for i, practiceArea := range []any{"", nil} {
		payload := map[string]any{"title": "Case " + strconv.Itoa(i)}
		for k, v := range base {
			payload[k] = v
		}
		if practiceArea != nil {
			payload["practice_area"] = practiceArea
		}

		w := perform(t, api.CaseStudies.Create, testRequest{method: http.MethodPost, target: "/api/admin/case-studies/", body: payload})
		if w.Code != http.StatusCreated {
			t.Fatalf("case %d: expected status 201, got %d: %s", i, w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["practice_area"] != nil || body["practice_area_name"] != nil {
			t.Fatalf("case %d: expected no practice area, got %v", i, body)
		}
	}
}

func TestCaseStudyPracticeAreaReference(t *testing.T) {
	api := setupTestAPI(t)

	area := db.PracticeArea{Title: "Corporate", Slug: "corporate", Description: "d", IsActive: true}
	if err := api.db.Create(&area).Error; err != nil {
		t.Fatalf("failed to seed practice area: %v", err)
	}

	w := perform(t, api.CaseStudies.Create, testRequest{
		method: http.MethodPost,
		target: "/api/admin/case-studies/",
		body: map[string]any{
			"title": "Merger", "challenge": "c", "solution": "s", "outcome": "o",
			"practice_area": strconv.Itoa(int(area.ID)),
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if name := decodeJSON(t, w)["practice_area_name"]; name != "Corporate" {
		t.Fatalf("expected practice_area_name, got %v", name)
	}

	missing := perform(t, api.CaseStudies.Create, testRequest{
		method: http.MethodPost,
		target: "/api/admin/case-studies/",
		body: map[string]any{
			"title": "Other", "challenge": "c", "solution": "s", "outcome": "o",
			"practice_area": 999,
		},
	})
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", missing.Code)
	}
	if msgs := fieldMessages(t, decodeJSON(t, missing), "practice_area"); len(msgs) == 0 {
		t.Fatalf("expected practice_area error, got %s", missing.Body.String())
	}
}

func TestPutResetsOmittedFieldsWhilePatchKeepsThem(t *testing.T) {
	api := setupTestAPI(t)

	faq := db.FAQ{Question: "How?", Answer: "Like this", Category: "general", Order: 4, IsPublished: true}
	if err := api.db.Create(&faq).Error; err != nil {
		t.Fatalf("failed to seed faq: %v", err)
	}

	patch := decodeJSON(t, perform(t, api.FAQs.Update, testRequest{
		method: http.MethodPatch,
		target: "/api/admin/faqs/1/",
		body:   map[string]any{"answer": "Differently"},
		params: idParam(faq.ID),
	}))
	if patch["category"] != "general" || patch["order"] != float64(4) || patch["answer"] != "Differently" {
		t.Fatalf("unexpected patch result: %v", patch)
	}

	w := perform(t, api.FAQs.Update, testRequest{
		method: http.MethodPut,
		target: "/api/admin/faqs/1/",
		body:   map[string]any{"question": "Why?", "answer": "Because"},
		params: idParam(faq.ID),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	put := decodeJSON(t, w)
	if put["category"] != "" || put["order"] != float64(0) || put["is_published"] != true {
		t.Fatalf("expected PUT to reset omitted fields to defaults, got %v", put)
	}

	missing := perform(t, api.FAQs.Update, testRequest{
		method: http.MethodPut,
		target: "/api/admin/faqs/1/",
		body:   map[string]any{"question": "Only question"},
		params: idParam(faq.ID),
	})
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("expected PUT without answer to fail, got %d", missing.Code)
	}
}

func TestDeleteRemovesRecordAndLogs(t *testing.T) {
	api := setupTestAPI(t)
	user := seedStaff(t, api)

	svc := db.Service{Title: "Drafting", Slug: "drafting", Category: db.ServiceDocumentation, Description: "d", IsActive: true}
	if err := api.db.Create(&svc).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}

	w := perform(t, api.Services.Delete, testRequest{method: http.MethodDelete, target: "/api/admin/services/1/", params: idParam(svc.ID), user: user})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	var count int64
	api.db.Model(&db.Service{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected service to be deleted, got %d rows", count)
	}

	var entry db.ActivityLog
	if err := api.db.Where("action = ?", "Deleted").First(&entry).Error; err != nil {
		t.Fatalf("expected a delete activity log: %v", err)
	}
	if entry.ModelName != "Service" || entry.Details != "Drafting" {
		t.Fatalf("unexpected activity log: %+v", entry)
	}

	again := perform(t, api.Services.Delete, testRequest{method: http.MethodDelete, target: "/api/admin/services/1/", params: idParam(svc.ID), user: user})
	if again.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for a missing record, got %d", again.Code)
	}
}

func TestTeamMemberImageURLIsAbsolute(t *testing.T) {
	api := setupTestAPI(t)

	member := db.TeamMember{
		Name: "Asha Rao", Slug: "asha-rao", Role: db.RolePartner, Specialization: "Tax",
		Bio: "b", Image: "team/2026/01/photo.png", IsActive: true,
	}
	if err := api.db.Create(&member).Error; err != nil {
		t.Fatalf("failed to seed team member: %v", err)
	}

	body := decodeJSON(t, perform(t, api.Team.PublicRetrieve, testRequest{method: http.MethodGet, target: "/api/team/asha-rao/", params: keyParam("asha-rao")}))
	want := "http://example.com/media/team/2026/01/photo.png"
	if body["image_url"] != want || body["image"] != want {
		t.Fatalf("expected absolute image URL %q, got %v / %v", want, body["image"], body["image_url"])
	}

	// echoing the absolute URL back keeps the stored relative path
	w := perform(t, api.Team.Update, testRequest{
		method: http.MethodPatch,
		target: "/api/admin/team/1/",
		body:   map[string]any{"image": want},
		params: idParam(member.ID),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var stored db.TeamMember
	api.db.First(&stored, member.ID)
	if stored.Image != "team/2026/01/photo.png" {
		t.Fatalf("expected stored path to be unchanged, got %q", stored.Image)
	}
}

func TestActivityLogsAreReadOnly(t *testing.T) {
	api := setupTestAPI(t)

	if !api.ActivityLogs.ReadOnly() {
		t.Fatal("expected activity logs to be read only")
	}
	for _, res := range api.AdminResources() {
		if res != ResourceRoutes(api.ActivityLogs) && res.ReadOnly() {
			t.Fatalf("expected %s to be writable", res.Resource().Name)
		}
	}
}
