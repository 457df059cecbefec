package constant

type ContextKey string

// OperatorKey carries the authenticated operator identity through request context.
const OperatorKey ContextKey = "operator"
