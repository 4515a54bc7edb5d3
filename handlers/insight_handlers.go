package handlers

import (
	"context"
	"net/http"
	"strings"

	"retail-intelligence/models"

	"github.com/aws/aws-lambda-go/events"
)

const (
	InsightShoes     = "Sales for Shoes dropped significantly week-over-week. Inventory is low, indicating possible stockout risk."
	InsightInventory = "Inventory levels for certain products are below optimal levels. Consider restocking fast-moving items."
	InsightSales     = "Overall sales show mixed trends. Some categories are growing while others are declining."
	InsightDefault   = "Please ask about sales, inventory, or specific product."
)

// insightRules are checked in order; the first keyword found wins.
var insightRules = []struct {
	keyword string
	insight string
}{
	{"shoes", InsightShoes},
	{"inventory", InsightInventory},
	{"sales", InsightSales},
}

// ResolveInsight picks the canned insight for an already lowercased question.
func ResolveInsight(question string) string {
	for _, rule := range insightRules {
		if strings.Contains(question, rule.keyword) {
			return rule.insight
		}
	}
	return InsightDefault
}

// HandleInsightEvent answers a retail question passed as ?question=...
// GET /api/v1/insight
func HandleInsightEvent(_ context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// A missing map or key both read as "".
	question := strings.ToLower(req.QueryStringParameters["question"])

	// The figures are not consulted yet; the insight text is keyword driven.
	_ = models.NewRetailDataset()

	return jsonResponse(http.StatusOK, models.InsightResponse{
		Question: question,
		Insight:  ResolveInsight(question),
	})
}
