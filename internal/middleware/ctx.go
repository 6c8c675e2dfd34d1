package middleware

type ctxKey string

const (
	ContextRequestID ctxKey = "request_id"
	ContextRole      ctxKey = "role"
)
