package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/airdrop"
	"github.com/melodex/goapi/service/query"
)

type claimRepoImpl struct {
	q query.Mongo
}

func NewClaimRepo(q query.Mongo) airdrop.ClaimRepo {
	return &claimRepoImpl{q: q}
}

func (r *claimRepoImpl) Insert(ctx bCtx.Ctx, claim *airdrop.Claim) error {
	copy := *claim
	copy.Claimer = claim.Claimer.ToLower()
	err := r.q.Insert(ctx, domain.TableAirdropClaims, &copy)
	if err == query.ErrDuplicateKey {
		return airdrop.ErrAlreadyClaimed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"claim": claim,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *claimRepoImpl) Has(ctx bCtx.Ctx, id domain.AirdropId, claimer domain.Address) (bool, error) {
	qry := bson.M{
		"airdropId": id,
		"claimer":   claimer.ToLower(),
	}

	claim := &airdrop.Claim{}
	err := r.q.FindOne(ctx, domain.TableAirdropClaims, qry, claim)
	if err == query.ErrNotFound {
		return false, nil
	} else if err != nil {
		ctx.WithField("err", err).WithField("query", qry).Error("q.FindOne failed")
		return false, err
	}
	return true, nil
}
