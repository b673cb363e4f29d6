package uae

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed config.yaml
var rawTables []byte

// tables holds every static lookup the tools rely on. One copy is parsed
// from the embedded YAML at init and never mutated afterwards.
type tables struct {
	Keywords           keywordSets               `yaml:"keywords"`
	ActivityCategories []string                  `yaml:"activity_categories"`
	TransportCities    []string                  `yaml:"transport_cities"`
	Emirates           []string                  `yaml:"emirates"`
	Styles             []string                  `yaml:"styles"`
	PrayerTimes        map[string]PrayerSchedule `yaml:"prayer_times"`
	Coordinates        map[string]Coordinates    `yaml:"coordinates"`
	Budget             budgetTables              `yaml:"budget"`
}

type keywordSets struct {
	Cities           []string `yaml:"cities"`
	Cultural         []string `yaml:"cultural"`
	Activities       []string `yaml:"activities"`
	Transportation   []string `yaml:"transportation"`
	Food             []string `yaml:"food"`
	Weather          []string `yaml:"weather"`
	AttractionDetail []string `yaml:"attraction_detail"`
	Overview         []string `yaml:"overview"`
}

type budgetTables struct {
	BaseCosts   map[string]float64 `yaml:"base_costs"`
	Multipliers map[string]float64 `yaml:"multipliers"`
	Inclusions  map[string]string  `yaml:"inclusions"`
}

var defaults tables

func init() {
	if err := yaml.Unmarshal(rawTables, &defaults); err != nil {
		panic(errors.Wrap(err, "failed to parse embedded UAE tables"))
	}
}
