package healthcheck

import (
	"github.com/melodex/goapi/base/ctx"
)

type HealthCheckRepo interface {
	PingDB(ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}
