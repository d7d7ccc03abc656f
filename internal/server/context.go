package server

import "context"

type contextKey string

const (
	requestIDContextKey contextKey = "request_id"
	jsonBodyContextKey  contextKey = "json_body"
)

// setRequestIDContext adds the request ID to context
func setRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// getRequestIDFromContext retrieves the request ID from context
func getRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// setJSONBodyContext adds the decoded request body to context
func setJSONBodyContext(ctx context.Context, body interface{}) context.Context {
	return context.WithValue(ctx, jsonBodyContextKey, body)
}

// getJSONBodyFromContext retrieves the decoded request body from context.
// Returns nil when the request carried no JSON body.
func getJSONBodyFromContext(ctx context.Context) interface{} {
	return ctx.Value(jsonBodyContextKey)
}
