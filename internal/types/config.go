package types

type RunMode string

const (
	// ModeLocal runs the gateway as a plain HTTP server
	ModeLocal RunMode = "local"
	// ModeAWSLambdaAPI runs the gateway behind API Gateway in AWS Lambda
	ModeAWSLambdaAPI RunMode = "aws_lambda_api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
