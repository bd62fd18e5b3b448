package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/escrow"
	"github.com/melodex/goapi/service/query"
)

type escrowRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) escrow.Repo {
	return &escrowRepoImpl{q: q}
}

func selector(hold escrow.HoldType, ref uint64, owner domain.Address) bson.M {
	return bson.M{
		"hold":  hold,
		"ref":   ref,
		"owner": owner.ToLower(),
	}
}

func (r *escrowRepoImpl) FindOne(ctx bCtx.Ctx, hold escrow.HoldType, ref uint64, owner domain.Address) (*escrow.Entry, error) {
	entry := &escrow.Entry{}
	err := r.q.FindOne(ctx, domain.TableEscrows, selector(hold, ref, owner), entry)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"hold":  hold,
			"ref":   ref,
			"owner": owner,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return entry, nil
}

func (r *escrowRepoImpl) Deposit(ctx bCtx.Ctx, entry *escrow.Entry) error {
	copy := *entry
	copy.Owner = entry.Owner.ToLower()
	if err := r.q.Insert(ctx, domain.TableEscrows, &copy); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"entry": entry,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *escrowRepoImpl) Adjust(ctx bCtx.Ctx, hold escrow.HoldType, ref uint64, owner domain.Address, delta int64) error {
	entry := &escrow.Entry{}
	if err := r.q.Increment(ctx, domain.TableEscrows, selector(hold, ref, owner), entry, "qty", delta); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"hold":  hold,
			"ref":   ref,
			"owner": owner,
			"delta": delta,
		}).Error("q.Increment failed")
		return err
	}

	if entry.Qty <= 0 {
		return r.Release(ctx, hold, ref, owner)
	}
	return nil
}

func (r *escrowRepoImpl) Release(ctx bCtx.Ctx, hold escrow.HoldType, ref uint64, owner domain.Address) error {
	err := r.q.Remove(ctx, domain.TableEscrows, selector(hold, ref, owner))
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"hold":  hold,
			"ref":   ref,
			"owner": owner,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
