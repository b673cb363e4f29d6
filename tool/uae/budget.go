package uae

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/thoas/go-funk"

	"github.com/smartuae/uaetools/tool"
	"github.com/smartuae/uaetools/utils/json"
)

// Conversion divisor for the AED peg to USD.
const _aedPerUSD = 3.67

// BudgetTool computes deterministic trip-cost estimates from the per-tier
// base daily cost and the per-city multiplier tables.
type BudgetTool struct {
	baseCosts   map[string]float64
	multipliers map[string]float64
	inclusions  map[string]string
}

var _ tool.Tool = &BudgetTool{}

// NewBudgetTool creates a new trip budget planner tool.
func NewBudgetTool(opts ...Option) (*BudgetTool, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return &BudgetTool{
		baseCosts:   defaults.Budget.BaseCosts,
		multipliers: defaults.Budget.Multipliers,
		inclusions:  defaults.Budget.Inclusions,
	}, nil
}

// Name returns the name of the tool.
func (t *BudgetTool) Name() string {
	return "trip_budget_planner"
}

// Description returns the description of the tool.
func (t *BudgetTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Calculate estimated budget for UAE trips based on city, duration, and travel style.
Travel style is one of: budget, standard, luxury.
Input must be json schema: ` + string(bytes) + `
Example Input: {"query": "Dubai,5,standard"}`
}

func (t *BudgetTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"query": {
				Type:        tool.TypeString,
				Description: "Trip description in the format 'city,days,style', e.g. 'Abu Dhabi,3,luxury'",
			},
		},
		Required: []string{"query"},
	}
}

func (t *BudgetTool) Strict() bool {
	return true
}

// Call calculates a trip budget estimate.
func (t *BudgetTool) Call(ctx context.Context, input string) (string, error) {
	var params map[string]interface{}
	err := json.Unmarshal([]byte(input), &params)
	if err != nil {
		return "json unmarshal error, please try again", nil
	}

	query, ok := params["query"].(string)
	if !ok || query == "" {
		return "query parameter is required", nil
	}

	return t.Budget(query), nil
}

// Budget answers a "<city>,<days>,<style>" query with a cost breakdown.
// Every invalid input yields a descriptive message, never an error.
func (t *BudgetTool) Budget(query string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error calculating budget: %v. Please use format: 'city,days,style'", r)
		}
	}()

	parts := strings.Split(query, ",")
	if len(parts) != 3 {
		return "Please provide input in format: 'city,days,style'. Example: 'Dubai,5,standard'"
	}
	for i := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}
	city, daysStr, style := parts[0], parts[1], parts[2]

	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return "Number of days must be a valid integer."
	}
	if days <= 0 {
		return "Number of days must be a positive integer."
	}

	baseCost, ok := t.baseCosts[style]
	if !ok {
		return fmt.Sprintf("Travel style must be one of: %s", strings.Join(defaults.Styles, ", "))
	}

	multiplier, ok := t.multipliers[city]
	if !ok {
		available := funk.Map(defaults.Emirates, titleCase).([]string)
		return fmt.Sprintf("City not recognized. Available cities: %s", strings.Join(available, ", "))
	}

	costPerDay := baseCost * multiplier
	totalCost := costPerDay * float64(days)

	var b strings.Builder
	fmt.Fprintf(&b, "**Trip Budget Estimate for %s**\n", titleCase(city))
	fmt.Fprintf(&b, "**Duration:** %d days\n", days)
	fmt.Fprintf(&b, "**Travel Style:** %s\n\n", titleCase(style))

	b.WriteString("**Daily Cost Breakdown:**\n")
	fmt.Fprintf(&b, "• Base cost (%s): %.0f AED/day\n", style, baseCost)
	fmt.Fprintf(&b, "• City adjustment (%s): %gx\n", titleCase(city), multiplier)
	fmt.Fprintf(&b, "• Daily total: %.0f AED/day\n\n", costPerDay)

	fmt.Fprintf(&b, "**Total Trip Cost: %.0f AED**\n", totalCost)
	fmt.Fprintf(&b, "*Approximately $%.0f USD*\n\n", totalCost/_aedPerUSD)

	b.WriteString(t.inclusions[style])
	b.WriteString("\n*Note: This is an estimate. Actual costs may vary based on specific choices, season, and exchange rates.*")

	return b.String()
}
