package domain

import "github.com/melodex/goapi/base/ctx"

// TxnRunner runs fn so that every repository write inside it commits or
// rolls back as one unit. Satisfied by service/query.Mongo.
type TxnRunner interface {
	RunWithTransaction(ctx.Ctx, func(ctx.Ctx) error) error
}
