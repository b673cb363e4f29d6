package uae

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smartuae/uaetools/tool"
	"github.com/smartuae/uaetools/utils/json"
	"github.com/smartuae/uaetools/utils/request"
)

const (
	_defaultAladhanURL = "http://api.aladhan.com/v1/timings"
	_aladhanTimeout    = 5 * time.Second
	// ISNA calculation method.
	_aladhanMethod = "2"
)

// PrayerTimeTool returns Islamic prayer times for the seven emirates,
// either from the built-in schedule or from the Aladhan service when the
// remote lookup is enabled.
type PrayerTimeTool struct {
	times      map[string]PrayerSchedule
	coords     map[string]Coordinates
	useAPI     bool
	aladhanURL string
	client     *http.Client
	now        func() time.Time
}

var _ tool.Tool = &PrayerTimeTool{}

// aladhanResponse is the subset of the Aladhan timings payload we read.
type aladhanResponse struct {
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
	} `json:"data"`
}

// NewPrayerTimeTool creates a new prayer times tool.
func NewPrayerTimeTool(opts ...Option) (*PrayerTimeTool, error) {
	options := &Options{
		AladhanURL: _defaultAladhanURL,
		Clock:      time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &PrayerTimeTool{
		times:      defaults.PrayerTimes,
		coords:     defaults.Coordinates,
		useAPI:     options.AladhanAPI,
		aladhanURL: options.AladhanURL,
		client:     options.HTTPClient,
		now:        options.Clock,
	}, nil
}

// Name returns the name of the tool.
func (t *PrayerTimeTool) Name() string {
	return "prayer_times"
}

// Description returns the description of the tool.
func (t *PrayerTimeTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Get Islamic prayer times for UAE cities.
Available cities: Dubai, Abu Dhabi, Sharjah, Ajman, Ras Al Khaimah, Fujairah, Umm Al Quwain.
Input must be json schema: ` + string(bytes) + `
Example Input: {"query": "Dubai,2024-03-15"}`
}

func (t *PrayerTimeTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"query": {
				Type:        tool.TypeString,
				Description: "City name, optionally followed by a date: 'city_name' or 'city_name,YYYY-MM-DD'",
			},
		},
		Required: []string{"query"},
	}
}

func (t *PrayerTimeTool) Strict() bool {
	return true
}

// Call looks up prayer times for a city.
func (t *PrayerTimeTool) Call(ctx context.Context, input string) (result string, callErr error) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error getting prayer times: %v", r)
			callErr = nil
		}
	}()

	var params map[string]interface{}
	err := json.Unmarshal([]byte(input), &params)
	if err != nil {
		return "json unmarshal error, please try again", nil
	}

	query, ok := params["query"].(string)
	if !ok || query == "" {
		return "query parameter is required", nil
	}

	return t.PrayerTimes(query), nil
}

// PrayerTimes answers a "<city>" or "<city>,<YYYY-MM-DD>" query. The date
// defaults to today when omitted.
func (t *PrayerTimeTool) PrayerTimes(query string) string {
	parts := strings.Split(query, ",")
	city := strings.ToLower(strings.TrimSpace(parts[0]))
	date := t.now().Format("2006-01-02")
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		date = strings.TrimSpace(parts[1])
	}

	if t.useAPI {
		return t.remotePrayerTimes(city, date)
	}
	return t.staticPrayerTimes(city, date)
}

func (t *PrayerTimeTool) staticPrayerTimes(city, date string) string {
	times, ok := t.times[city]
	if !ok {
		available := titleCase(strings.Join(defaults.Emirates, ", "))
		return fmt.Sprintf("Prayer times not available for '%s'. Available cities: %s", city, available)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Prayer Times for %s (%s):**\n", titleCase(city), date)
	fmt.Fprintf(&b, "• **Fajr:** %s\n", times.Fajr)
	fmt.Fprintf(&b, "• **Dhuhr:** %s\n", times.Dhuhr)
	fmt.Fprintf(&b, "• **Asr:** %s\n", times.Asr)
	fmt.Fprintf(&b, "• **Maghrib:** %s\n", times.Maghrib)
	fmt.Fprintf(&b, "• **Isha:** %s\n", times.Isha)
	b.WriteString("\n*Note: Times are approximate and may vary by season. For precise times, consult local Islamic centers.*")

	return b.String()
}

// remotePrayerTimes fetches the schedule from the Aladhan service. Any
// failure falls back silently to the static table.
func (t *PrayerTimeTool) remotePrayerTimes(city, date string) string {
	coords, ok := t.coords[city]
	if !ok {
		return t.staticPrayerTimes(city, date)
	}

	ctx, cancel := context.WithTimeout(context.Background(), _aladhanTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%v", coords.Latitude))
	params.Set("longitude", fmt.Sprintf("%v", coords.Longitude))
	params.Set("method", _aladhanMethod)
	endpoint := fmt.Sprintf("%s/%s?%s", t.aladhanURL, date, params.Encode())

	var payload aladhanResponse
	err := request.Request(ctx, t.client, http.MethodGet, endpoint, "", &payload)
	if err != nil {
		log.Printf("Warning: prayer times fetch failed, falling back to static schedule: %v", err)
		return t.staticPrayerTimes(city, date)
	}

	timings := payload.Data.Timings
	if timings.Fajr == "" {
		return t.staticPrayerTimes(city, date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Prayer Times for %s (%s):**\n", titleCase(city), date)
	fmt.Fprintf(&b, "• **Fajr:** %s\n", timings.Fajr)
	fmt.Fprintf(&b, "• **Dhuhr:** %s\n", timings.Dhuhr)
	fmt.Fprintf(&b, "• **Asr:** %s\n", timings.Asr)
	fmt.Fprintf(&b, "• **Maghrib:** %s\n", timings.Maghrib)
	fmt.Fprintf(&b, "• **Isha:** %s\n", timings.Isha)

	return b.String()
}
