// Command insight is the Lambda entry point for the retail insight endpoint.
package main

import (
	"retail-intelligence/handlers"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(handlers.HandleInsightEvent)
}
