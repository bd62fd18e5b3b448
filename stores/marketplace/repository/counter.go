package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/service/query"
)

type counterRepoImpl struct {
	q query.Mongo
}

func NewCounterRepo(q query.Mongo) marketplace.CounterRepo {
	return &counterRepoImpl{q: q}
}

type counterDoc struct {
	Name string `bson:"name"`
	Seq  uint64 `bson:"seq"`
}

// Next atomically increments and returns the named sequence. The first call
// for a name returns 1.
func (r *counterRepoImpl) Next(ctx bCtx.Ctx, name string) (uint64, error) {
	doc := &counterDoc{}
	if err := r.q.Increment(ctx, domain.TableCounters, bson.M{"name": name}, doc, "seq", 1); err != nil {
		ctx.WithField("err", err).WithField("name", name).Error("q.Increment failed")
		return 0, err
	}
	return doc.Seq, nil
}
