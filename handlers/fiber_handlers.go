package handlers

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/gofiber/fiber/v2"
)

// Fiber wraps an EventHandler so the local server and Lambda share one code path.
func Fiber(h EventHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		multiHeaders := c.GetReqHeaders()
		headers := make(map[string]string, len(multiHeaders))
		for k, v := range multiHeaders {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}

		req := events.APIGatewayProxyRequest{
			HTTPMethod:            c.Method(),
			Path:                  c.Path(),
			Headers:               headers,
			MultiValueHeaders:     multiHeaders,
			QueryStringParameters: c.Queries(),
			Body:                  string(c.Body()),
		}

		resp, err := h(c.UserContext(), req)
		if err != nil {
			return err
		}

		for k, v := range resp.Headers {
			c.Set(k, v)
		}
		return c.Status(resp.StatusCode).SendString(resp.Body)
	}
}
