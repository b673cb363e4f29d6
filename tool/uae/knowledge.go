package uae

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/thoas/go-funk"

	"github.com/smartuae/uaetools/tool"
	"github.com/smartuae/uaetools/utils/json"
)

const _defaultKnowledgePath = "testdata/uae_knowledge.json"

const _noMatchMessage = "I couldn't find specific information about your query. " +
	"Could you please be more specific or ask about UAE cities, attractions, " +
	"cultural tips, activities, transportation, food, or weather?"

// KnowledgeTool answers free-text questions from the static UAE tourism
// knowledge base.
type KnowledgeTool struct {
	doc  Document
	path string
}

var _ tool.Tool = &KnowledgeTool{}

// NewKnowledgeTool creates the knowledge search tool. A missing or
// malformed knowledge file is not fatal; the tool degrades to an empty
// document and every search yields the no-match message.
func NewKnowledgeTool(opts ...Option) (*KnowledgeTool, error) {
	options := &Options{
		KnowledgePath: _defaultKnowledgePath,
	}
	for _, opt := range opts {
		opt(options)
	}

	t := &KnowledgeTool{
		path: options.KnowledgePath,
	}
	t.loadDocument()

	return t, nil
}

func (t *KnowledgeTool) loadDocument() {
	content, err := os.ReadFile(t.path)
	if err != nil {
		log.Printf("Warning: knowledge base %s not found, using empty knowledge base", t.path)
		return
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(content, &raw); err != nil {
		log.Printf("Warning: invalid JSON in %s, using empty knowledge base", t.path)
		return
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &t.doc,
	})
	if err != nil {
		log.Printf("Warning: knowledge base decoder setup failed: %v", err)
		return
	}
	// Malformed sections decode to their zero values; the valid ones
	// still load.
	if err := decoder.Decode(raw); err != nil {
		log.Printf("Warning: knowledge base %s has malformed sections: %v", t.path, err)
	}
}

// Document returns the loaded knowledge base.
func (t *KnowledgeTool) Document() Document {
	return t.doc
}

// Name returns the name of the tool.
func (t *KnowledgeTool) Name() string {
	return "uae_knowledge_search"
}

// Description returns the description of the tool.
func (t *KnowledgeTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Search the UAE knowledge base for information about cities, attractions, cultural tips, activities, transportation, food, and weather.
Input must be json schema: ` + string(bytes) + `
Example Input: {"query": "attractions in Dubai"}`
}

func (t *KnowledgeTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"query": {
				Type:        tool.TypeString,
				Description: "A search query like 'attractions in Dubai' or 'cultural tips for UAE'",
			},
		},
		Required: []string{"query"},
	}
}

func (t *KnowledgeTool) Strict() bool {
	return true
}

// Call searches the knowledge base.
func (t *KnowledgeTool) Call(ctx context.Context, input string) (result string, callErr error) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error searching knowledge base: %v", r)
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

	return t.Search(query), nil
}

// Search runs the keyword classifier over the query and concatenates the
// output of every triggered section formatter. The six keyword sets are
// independent; a query may trigger several sections.
func (t *KnowledgeTool) Search(query string) string {
	query = strings.ToLower(query)
	var results []string

	if containsAny(query, defaults.Keywords.Cities) {
		results = append(results, t.searchCities(query)...)
	}
	if containsAny(query, defaults.Keywords.Cultural) {
		results = append(results, t.searchCulturalTips(query)...)
	}
	if containsAny(query, defaults.Keywords.Activities) {
		results = append(results, t.searchActivities(query)...)
	}
	if containsAny(query, defaults.Keywords.Transportation) {
		results = append(results, t.searchTransportation(query)...)
	}
	if containsAny(query, defaults.Keywords.Food) {
		results = append(results, t.searchFood(query)...)
	}
	if containsAny(query, defaults.Keywords.Weather) {
		results = append(results, t.searchWeather(query)...)
	}

	if len(results) == 0 {
		return _noMatchMessage
	}

	return strings.Join(results, "\n\n")
}

func (t *KnowledgeTool) searchCities(query string) []string {
	var results []string

	for _, name := range sortedKeys(t.doc.Cities) {
		if !strings.Contains(query, strings.ToLower(name)) {
			continue
		}
		city := t.doc.Cities[name]

		var b strings.Builder
		fmt.Fprintf(&b, "**%s:**\n%s\n", name, city.Description)

		if containsAny(query, defaults.Keywords.AttractionDetail) {
			fmt.Fprintf(&b, "\n**Top Attractions in %s:**\n", name)

			mustVisit := funk.Filter(city.Attractions, func(a Attraction) bool {
				return a.MustVisit
			}).([]Attraction)
			others := funk.Filter(city.Attractions, func(a Attraction) bool {
				return !a.MustVisit
			}).([]Attraction)

			if len(mustVisit) > 0 {
				b.WriteString("Must-Visit:\n")
				for _, attraction := range mustVisit {
					fmt.Fprintf(&b, "• %s: %s\n", attraction.Name, attraction.Description)
				}
			}

			// Show a few other attractions only when the must-visit
			// list leaves room, capped at 3 additional.
			if len(others) > 0 && len(mustVisit) < 5 {
				b.WriteString("\nOther Notable Attractions:\n")
				if len(others) > 3 {
					others = others[:3]
				}
				for _, attraction := range others {
					fmt.Fprintf(&b, "• %s: %s\n", attraction.Name, attraction.Description)
				}
			}
		}

		fmt.Fprintf(&b, "\n**Best Time to Visit:** %s", city.BestTimeToVisit)
		fmt.Fprintf(&b, "\n**Average Temperature:** %s", city.AverageTemperature)
		results = append(results, b.String())
	}

	// No specific city mentioned: offer the overview instead.
	if len(results) == 0 && containsAny(query, defaults.Keywords.Overview) {
		var b strings.Builder
		b.WriteString("**UAE Emirates Overview:**\n")
		for _, name := range sortedKeys(t.doc.Cities) {
			fmt.Fprintf(&b, "• **%s:** %s\n", name, t.doc.Cities[name].Description)
		}
		results = append(results, b.String())
	}

	return results
}

func (t *KnowledgeTool) searchCulturalTips(query string) []string {
	tips := t.doc.CulturalTips
	if len(tips) == 0 {
		return nil
	}

	relevant := funk.Filter(tips, func(tip CulturalTip) bool {
		return containsAny(query, []string{strings.ToLower(tip.Category), "all", "general"})
	}).([]CulturalTip)
	if len(relevant) == 0 {
		relevant = tips
	}

	var b strings.Builder
	b.WriteString("**Cultural Tips for Visiting UAE:**\n")
	for _, tip := range relevant {
		fmt.Fprintf(&b, "• **%s:** %s\n", tip.Category, tip.Tip)
	}

	return []string{b.String()}
}

func (t *KnowledgeTool) searchActivities(query string) []string {
	var results []string

	for _, category := range defaults.ActivityCategories {
		if !strings.Contains(query, category) &&
			!strings.Contains(query, "all") &&
			!strings.Contains(query, "activities") {
			continue
		}
		activities, ok := t.doc.Activities[category]
		if !ok {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "**%s Activities:**\n", titleCase(category))
		for _, activity := range activities {
			fmt.Fprintf(&b, "• %s\n", activity)
		}
		results = append(results, b.String())
	}

	return results
}

func (t *KnowledgeTool) searchTransportation(query string) []string {
	var results []string

	for _, city := range defaults.TransportCities {
		table, ok := t.doc.Transportation[city]
		if !ok || !strings.Contains(query, city) {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "**Transportation in %s:**\n", titleCase(strings.ReplaceAll(city, "_", " ")))
		for _, mode := range sortedKeys(table) {
			fmt.Fprintf(&b, "• **%s:** %s\n", titleCase(strings.ReplaceAll(mode, "_", " ")), table[mode])
		}
		results = append(results, b.String())
	}

	if strings.Contains(query, "general") || len(results) == 0 {
		if table, ok := t.doc.Transportation["general"]; ok {
			var b strings.Builder
			b.WriteString("**General Transportation Information:**\n")
			for _, mode := range sortedKeys(table) {
				fmt.Fprintf(&b, "• **%s:** %s\n", titleCase(strings.ReplaceAll(mode, "_", " ")), table[mode])
			}
			results = append(results, b.String())
		}
	}

	return results
}

func (t *KnowledgeTool) searchFood(query string) []string {
	food := t.doc.Food
	var results []string

	if strings.Contains(query, "traditional") && len(food.TraditionalDishes) > 0 {
		var b strings.Builder
		b.WriteString("**Traditional UAE Dishes:**\n")
		for _, dish := range food.TraditionalDishes {
			fmt.Fprintf(&b, "• **%s:** %s\n", dish.Name, dish.Description)
		}
		results = append(results, b.String())
	}

	if strings.Contains(query, "international") && len(food.PopularInternational) > 0 {
		var b strings.Builder
		b.WriteString("**Popular International Cuisines:**\n")
		for _, cuisine := range food.PopularInternational {
			fmt.Fprintf(&b, "• %s\n", cuisine)
		}
		results = append(results, b.String())
	}

	if strings.Contains(query, "etiquette") && len(food.DiningEtiquette) > 0 {
		var b strings.Builder
		b.WriteString("**Dining Etiquette:**\n")
		for _, rule := range food.DiningEtiquette {
			fmt.Fprintf(&b, "• %s\n", rule)
		}
		results = append(results, b.String())
	}

	// No specific category asked for: default to a short list of
	// traditional dishes.
	if len(results) == 0 && len(food.TraditionalDishes) > 0 {
		dishes := food.TraditionalDishes
		if len(dishes) > 5 {
			dishes = dishes[:5]
		}
		var b strings.Builder
		b.WriteString("**Traditional UAE Dishes:**\n")
		for _, dish := range dishes {
			fmt.Fprintf(&b, "• **%s:** %s\n", dish.Name, dish.Description)
		}
		results = append(results, b.String())
	}

	return results
}

func (t *KnowledgeTool) searchWeather(_ string) []string {
	seasons := t.doc.Weather.Seasons
	if len(seasons) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("**UAE Weather by Season:**\n")
	for _, season := range sortedKeys(seasons) {
		info := seasons[season]
		fmt.Fprintf(&b, "• **%s (%s):** %s, %s\n", titleCase(season), info.Months, info.Temperature, info.Description)
	}

	return []string{b.String()}
}
