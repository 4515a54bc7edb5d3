// Command health is the Lambda entry point for the health check.
package main

import (
	"retail-intelligence/handlers"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(handlers.HandleHealthEvent)
}
