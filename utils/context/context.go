package context

import (
	"context"

	"github.com/muhammadheryan/stock-ledger/constant"
)

func GetOperator(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.OperatorKey)
	if v == nil {
		return "", false
	}
	op, ok := v.(string)
	return op, ok
}

// OperatorOrSystem returns the authenticated operator, falling back to
// "system" for internal callers like the sweeper.
func OperatorOrSystem(ctx context.Context) string {
	if op, ok := GetOperator(ctx); ok && op != "" {
		return op
	}
	return "system"
}
