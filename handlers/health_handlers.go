package handlers

import (
	"context"
	"net/http"
	"time"

	"retail-intelligence/models"

	"github.com/aws/aws-lambda-go/events"
)

const (
	HealthMessage = "Retail Intelligence API is running 🚀"
	Region        = "ap-south-1"

	// Millisecond precision with a literal Z, matching Date.prototype.toISOString.
	isoTimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var now = time.Now

// HandleHealthEvent reports that the service is up. The event is ignored.
// GET /api/v1/health
func HandleHealthEvent(_ context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return jsonResponse(http.StatusOK, models.HealthResponse{
		Message:   HealthMessage,
		Timestamp: now().UTC().Format(isoTimestampLayout),
		Region:    Region,
	})
}
