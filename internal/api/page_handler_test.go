package api

import (
	"encoding/base64"
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"pawtrait/internal/entities"
	"pawtrait/internal/repository"
	"pawtrait/internal/service"
	"pawtrait/internal/templates"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	page, err := templates.Page()
	if err != nil {
		t.Fatalf("parse page template: %v", err)
	}
	catalog := repository.NewCatalogRepository()
	money := service.NewMoney(currency.USD, language.AmericanEnglish)
	calendar := service.NewCalendarService("-//PetShoot//EN", "petshoot.local")
	inquiry := service.NewInquiryService("bookings@yourstudio.com", money)
	bookings := service.NewBookingService(catalog, inquiry, calendar, time.UTC)
	studio := Studio{Name: "Pawtrait Studio", Email: "bookings@yourstudio.com", Phone: "(555) 123-4567", City: "Your City"}

	return NewRouter(
		NewPageHandler(page, catalog, bookings, calendar, money, studio),
		NewCatalogHandler(catalog, money),
	)
}

func alexDoeForm() url.Values {
	return url.Values{
		"name":     {"Alex Doe"},
		"email":    {"alex@example.com"},
		"pet_name": {"Mochi"},
		"pet_type": {"Dog"},
		"package":  {"classic"},
		"date":     {"2025-06-01"},
		"time":     {"10:00"},
	}
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

var (
	mailtoAttr = regexp.MustCompile(`id="inquiry-mailto" href="([^"]+)"`)
	holdData   = regexp.MustCompile(`id="hold-download" href="data:text/calendar;charset=utf-8;base64,([A-Za-z0-9+/=]+)"`)
)

func TestIndex(t *testing.T) {
	h := newTestRouter(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("expected html content type, got %s", ct)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Classic Session",
		"$149.00",
		"$299.00",
		"$499.00",
		`<option value="classic" selected>`,
		`<option value="Dog" selected>`,
		"Pet photo 9",
		"Do you work with all pets?",
		"Taylor &amp; Mochi",
		"Book Deluxe Session",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
	if strings.Contains(body, `id="acknowledgement"`) {
		t.Errorf("fresh page must not show the acknowledgement")
	}
}

func TestIndexUsesVisitorLocale(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "$299,00") {
		t.Errorf("expected German price formatting in page")
	}
}

func TestSubmitBooking(t *testing.T) {
	w := postForm(t, newTestRouter(t), alexDoeForm())
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="acknowledgement"`) {
		t.Errorf("acknowledgement missing from page")
	}
	if !strings.Contains(body, `value="Alex Doe"`) {
		t.Errorf("form values should be re-filled")
	}

	m := mailtoAttr.FindStringSubmatch(body)
	if m == nil {
		t.Fatal("mailto link missing from page")
	}
	href := html.UnescapeString(m[1])
	_, rawQuery, _ := strings.Cut(href, "?")
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		t.Fatalf("mailto query does not parse: %v", err)
	}
	if got := q.Get("subject"); got != "Pet Photoshoot Inquiry – CLASSIC – Alex Doe" {
		t.Errorf("subject = %q", got)
	}
	if !strings.Contains(q.Get("body"), "Package: Classic Session ($299.00)") {
		t.Errorf("body = %q", q.Get("body"))
	}

	d := holdData.FindStringSubmatch(body)
	if d == nil {
		t.Fatal("calendar hold link missing from page")
	}
	payload, err := base64.StdEncoding.DecodeString(d[1])
	if err != nil {
		t.Fatalf("hold payload is not base64: %v", err)
	}
	for _, want := range []string{
		"SUMMARY:Pet Photoshoot Hold – Alex Doe",
		"DTSTART:20250601T100000Z",
		"DTEND:20250601T110000Z",
		"LOCATION:TBD",
	} {
		if !strings.Contains(string(payload), want) {
			t.Errorf("hold payload does not contain %q:\n%s", want, payload)
		}
	}
	if !strings.Contains(body, `download="pet-photoshoot-hold.ics"`) {
		t.Errorf("hold link has no download filename")
	}
}

func TestSubmitBookingWithoutSchedule(t *testing.T) {
	form := alexDoeForm()
	form.Del("time")
	w := postForm(t, newTestRouter(t), form)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="acknowledgement"`) {
		t.Errorf("acknowledgement missing from page")
	}
	if mailtoAttr.FindStringSubmatch(body) == nil {
		t.Errorf("mailto link missing from page")
	}
	if strings.Contains(body, `id="hold-download"`) {
		t.Errorf("no hold should be offered without a time")
	}
}

func TestSubmitBookingValidation(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{name: "missing name", field: "name", value: ""},
		{name: "missing email", field: "email", value: ""},
		{name: "malformed email", field: "email", value: "alex-at-example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := alexDoeForm()
			form.Set(tt.field, tt.value)
			w := postForm(t, newTestRouter(t), form)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			body := w.Body.String()
			if !strings.Contains(body, `id="form-error"`) {
				t.Errorf("form error message missing")
			}
			if strings.Contains(body, `id="acknowledgement"`) {
				t.Errorf("invalid submission must not be acknowledged")
			}
		})
	}
}

func TestSubmitBookingNormalisesPetType(t *testing.T) {
	form := alexDoeForm()
	form.Set("pet_type", "Ferret")
	w := postForm(t, newTestRouter(t), form)
	if !strings.Contains(w.Body.String(), `<option value="Other" selected>`) {
		t.Errorf("unknown pet type should fall back to Other")
	}
}

func TestBookingRequiresPost(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/booking", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestDownloadHold(t *testing.T) {
	q := url.Values{
		"name":     {"Alex Doe"},
		"package":  {"deluxe"},
		"pet_name": {"Mochi"},
		"pet_type": {"Dog"},
		"date":     {"2025-06-01"},
		"time":     {"10:00"},
		"location": {"Dolores Park"},
	}
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/booking/hold.ics?"+q.Encode(), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("unexpected content type %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=pet-photoshoot-hold.ics" {
		t.Errorf("unexpected content disposition %s", cd)
	}
	body := w.Body.String()
	for _, want := range []string{"BEGIN:VCALENDAR", "DTEND:20250601T120000Z", "LOCATION:Dolores Park"} {
		if !strings.Contains(body, want) {
			t.Errorf("hold does not contain %q:\n%s", want, body)
		}
	}
}

func TestDownloadHoldRequiresSchedule(t *testing.T) {
	tests := []string{
		"/booking/hold.ics?name=Alex&date=2025-06-01",
		"/booking/hold.ics?name=Alex&time=10:00",
		"/booking/hold.ics?name=Alex&date=June&time=10:00",
	}
	for _, target := range tests {
		w := httptest.NewRecorder()
		newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, w.Code)
		}
	}
}

func TestGetPackages(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/packages", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}
	var res []entities.PackageResponse
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(res))
	}
	if res[1].ID != "classic" || res[1].FormattedPrice != "$299.00" || res[1].DurationMinutes != 60 {
		t.Errorf("unexpected classic package %+v", res[1])
	}
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("unexpected health response %d %q", w.Code, w.Body.String())
	}
}
