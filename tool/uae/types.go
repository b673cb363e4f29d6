package uae

// Document is the loaded tourism knowledge base. A zero Document is a
// valid empty knowledge base; every lookup against it yields "no match".
type Document struct {
	Cities         map[string]City              `json:"cities" mapstructure:"cities"`
	CulturalTips   []CulturalTip                `json:"cultural_tips" mapstructure:"cultural_tips"`
	Activities     map[string][]string          `json:"activities" mapstructure:"activities"`
	Transportation map[string]map[string]string `json:"transportation" mapstructure:"transportation"`
	Food           Food                         `json:"food" mapstructure:"food"`
	Weather        Weather                      `json:"weather" mapstructure:"weather"`
}

// City holds the knowledge-base entry for a single city.
type City struct {
	Description        string       `json:"description" mapstructure:"description"`
	Attractions        []Attraction `json:"major_attractions" mapstructure:"major_attractions"`
	BestTimeToVisit    string       `json:"best_time_to_visit" mapstructure:"best_time_to_visit"`
	AverageTemperature string       `json:"average_temperature" mapstructure:"average_temperature"`
}

// Attraction is a point of interest within a city. MustVisit marks the
// higher-priority recommendations; it defaults to false when absent.
type Attraction struct {
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`
	MustVisit   bool   `json:"must_visit" mapstructure:"must_visit"`
}

// CulturalTip is a single etiquette or customs recommendation.
type CulturalTip struct {
	Category string `json:"category" mapstructure:"category"`
	Tip      string `json:"tip" mapstructure:"tip"`
}

// Dish is a traditional dish with its description.
type Dish struct {
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`
}

// Food groups the dining-related sections of the knowledge base.
type Food struct {
	TraditionalDishes    []Dish   `json:"traditional_dishes" mapstructure:"traditional_dishes"`
	PopularInternational []string `json:"popular_international" mapstructure:"popular_international"`
	DiningEtiquette      []string `json:"dining_etiquette" mapstructure:"dining_etiquette"`
}

// Season describes the climate during one part of the year.
type Season struct {
	Months      string `json:"months" mapstructure:"months"`
	Temperature string `json:"temperature" mapstructure:"temperature"`
	Description string `json:"description" mapstructure:"description"`
}

// Weather maps season names to their climate descriptions.
type Weather struct {
	Seasons map[string]Season `json:"seasons" mapstructure:"seasons"`
}

// PrayerSchedule holds the five daily prayer times as HH:MM strings.
type PrayerSchedule struct {
	Fajr    string `yaml:"fajr"`
	Dhuhr   string `yaml:"dhuhr"`
	Asr     string `yaml:"asr"`
	Maghrib string `yaml:"maghrib"`
	Isha    string `yaml:"isha"`
}

// Coordinates is an approximate city location used for remote lookups.
type Coordinates struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}
