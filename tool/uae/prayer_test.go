package uae

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func TestPrayerTimesAllEmirates(t *testing.T) {
	pt, err := NewPrayerTimeTool(WithClock(fixedClock))
	if err != nil {
		t.Fatalf("NewPrayerTimeTool() error = %v", err)
	}

	for _, city := range defaults.Emirates {
		result := pt.PrayerTimes(city)
		for _, prayer := range []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"} {
			if !strings.Contains(result, "**"+prayer+":**") {
				t.Errorf("PrayerTimes(%q) missing %s: %s", city, prayer, result)
			}
		}
		if got := strings.Count(result, "• **"); got != 5 {
			t.Errorf("PrayerTimes(%q) should list exactly 5 times, got %d", city, got)
		}
	}
}

func TestPrayerTimesStaticValues(t *testing.T) {
	pt, _ := NewPrayerTimeTool(WithClock(fixedClock))

	result := pt.PrayerTimes("Sharjah")
	if !strings.Contains(result, "**Fajr:** 05:28") {
		t.Errorf("Sharjah Fajr mismatch: %s", result)
	}
	if !strings.Contains(result, "**Isha:** 19:57") {
		t.Errorf("Sharjah Isha mismatch: %s", result)
	}
	if !strings.Contains(result, "**Prayer Times for Sharjah (2024-03-15):**") {
		t.Errorf("header mismatch: %s", result)
	}
	if !strings.Contains(result, "Times are approximate") {
		t.Errorf("disclaimer missing: %s", result)
	}
}

func TestPrayerTimesExplicitDate(t *testing.T) {
	pt, _ := NewPrayerTimeTool(WithClock(fixedClock))

	result := pt.PrayerTimes("Dubai, 2024-06-01")
	if !strings.Contains(result, "(2024-06-01)") {
		t.Errorf("explicit date not used: %s", result)
	}
}

func TestPrayerTimesUnknownCity(t *testing.T) {
	pt, _ := NewPrayerTimeTool(WithClock(fixedClock))

	result := pt.PrayerTimes("London")
	if !strings.Contains(result, "Prayer times not available for 'london'") {
		t.Errorf("unknown-city message mismatch: %s", result)
	}
	want := "Dubai, Abu Dhabi, Sharjah, Ajman, Ras Al Khaimah, Fujairah, Umm Al Quwain"
	if !strings.Contains(result, want) {
		t.Errorf("valid city list missing, want %q in: %s", want, result)
	}
}

func TestPrayerTimesIdempotent(t *testing.T) {
	pt, _ := NewPrayerTimeTool(WithClock(fixedClock))

	first := pt.PrayerTimes("Ajman,2024-03-15")
	second := pt.PrayerTimes("Ajman,2024-03-15")
	if first != second {
		t.Errorf("PrayerTimes is not idempotent:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestPrayerTimesRemoteFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25.2048", r.URL.Query().Get("latitude"))
		assert.Equal(t, "55.2708", r.URL.Query().Get("longitude"))
		assert.Equal(t, "2", r.URL.Query().Get("method"))
		assert.True(t, strings.HasSuffix(r.URL.Path, "/2024-03-15"))

		fmt.Fprint(w, `{"data": {"timings": {"Fajr": "05:02", "Dhuhr": "12:29", "Asr": "15:55", "Maghrib": "18:39", "Isha": "19:54"}}}`)
	}))
	defer server.Close()

	pt, err := NewPrayerTimeTool(
		WithAladhanAPI(true),
		WithAladhanURL(server.URL),
		WithHTTPClient(server.Client()),
		WithClock(fixedClock),
	)
	assert.Nil(t, err)

	result := pt.PrayerTimes("Dubai,2024-03-15")
	assert.Contains(t, result, "**Fajr:** 05:02")
	assert.Contains(t, result, "**Isha:** 19:54")
	assert.NotContains(t, result, "Times are approximate")
}

func TestPrayerTimesRemoteFailureFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "ServerError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "MalformedPayload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data": "oops"`)
			},
		},
		{
			name: "EmptyTimings",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data": {"timings": {}}}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			pt, _ := NewPrayerTimeTool(
				WithAladhanAPI(true),
				WithAladhanURL(server.URL),
				WithHTTPClient(server.Client()),
				WithClock(fixedClock),
			)

			result := pt.PrayerTimes("Dubai")
			// Silent fallback to the static schedule.
			assert.Contains(t, result, "**Fajr:** 05:30")
			assert.Contains(t, result, "Times are approximate")
		})
	}
}

func TestPrayerTimesRemoteUnknownCitySkipsFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an unknown city")
	}))
	defer server.Close()

	pt, _ := NewPrayerTimeTool(
		WithAladhanAPI(true),
		WithAladhanURL(server.URL),
		WithHTTPClient(server.Client()),
		WithClock(fixedClock),
	)

	result := pt.PrayerTimes("Cairo")
	assert.Contains(t, result, "Prayer times not available for 'cairo'")
}

func TestPrayerTimeToolCall(t *testing.T) {
	pt, _ := NewPrayerTimeTool(WithClock(fixedClock))
	ctx := context.Background()

	result, err := pt.Call(ctx, `{"query": "Fujairah"}`)
	if err != nil {
		t.Errorf("Call() error = %v", err)
	}
	if !strings.Contains(result, "**Prayer Times for Fujairah") {
		t.Errorf("Call() result mismatch: %s", result)
	}

	result, err = pt.Call(ctx, `{}`)
	if err != nil {
		t.Errorf("Call() error = %v", err)
	}
	if result != "query parameter is required" {
		t.Errorf("Call() without query = %q", result)
	}
}
