package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/exchange"
	"github.com/melodex/goapi/service/query"
)

type slotRepoImpl struct {
	q query.Mongo
}

func NewSlotRepo(q query.Mongo) exchange.SlotRepo {
	return &slotRepoImpl{q: q}
}

func (r *slotRepoImpl) FindOne(ctx bCtx.Ctx, id domain.ExchangeId) (*exchange.Slot, error) {
	slot := &exchange.Slot{}
	err := r.q.FindOne(ctx, domain.TableExchangeSlots, bson.M{"exchangeId": id}, slot)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("exchangeId", id).Error("q.FindOne failed")
		return nil, err
	}
	return slot, nil
}

func (r *slotRepoImpl) Upsert(ctx bCtx.Ctx, slot *exchange.Slot) error {
	if err := r.q.Upsert(ctx, domain.TableExchangeSlots, bson.M{"exchangeId": slot.ExchangeId}, slot); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"slot": slot,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *slotRepoImpl) Remove(ctx bCtx.Ctx, id domain.ExchangeId) error {
	err := r.q.Remove(ctx, domain.TableExchangeSlots, bson.M{"exchangeId": id})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("exchangeId", id).Error("q.Remove failed")
		return err
	}
	return nil
}
