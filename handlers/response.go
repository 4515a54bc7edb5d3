package handlers

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// EventHandler is the signature shared by every Lambda entry point in this service.
type EventHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// jsonResponse encodes body the way JSON.stringify would: no HTML escaping and
// no trailing newline.
func jsonResponse(statusCode int, body interface{}) (events.APIGatewayProxyResponse, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bytes.TrimRight(buf.Bytes(), "\n")),
	}, nil
}
