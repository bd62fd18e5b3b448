package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/domain/payment"
	"github.com/melodex/goapi/service/query"
)

type balanceDoc struct {
	Account domain.Address `bson:"account"`
	Balance string         `bson:"balance"`
}

type ledgerRepoImpl struct {
	q query.Mongo
}

func NewLedger(q query.Mongo) payment.Ledger {
	return &ledgerRepoImpl{q: q}
}

// Payout appends the entry and folds its amount into the recipient's running
// balance. Callers sequence payouts, so the read-modify-write is safe.
func (r *ledgerRepoImpl) Payout(ctx bCtx.Ctx, entry *payment.Entry) error {
	amount, err := marketplace.ParseAmount(entry.Amount)
	if err != nil {
		return err
	}

	copy := *entry
	copy.To = entry.To.ToLower()
	if err := r.q.Insert(ctx, domain.TableLedgerEntries, &copy); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"entry": entry,
		}).Error("q.Insert failed")
		return err
	}

	balance, err := r.balanceOf(ctx, copy.To)
	if err != nil {
		return err
	}
	balance.Add(balance, amount)

	doc := &balanceDoc{Account: copy.To, Balance: balance.String()}
	if err := r.q.Upsert(ctx, domain.TableLedgerBalances, bson.M{"account": copy.To}, doc); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"doc": doc,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *ledgerRepoImpl) Balance(ctx bCtx.Ctx, account domain.Address) (string, error) {
	balance, err := r.balanceOf(ctx, account.ToLower())
	if err != nil {
		return "", err
	}
	return balance.String(), nil
}

func (r *ledgerRepoImpl) balanceOf(ctx bCtx.Ctx, account domain.Address) (*big.Int, error) {
	doc := &balanceDoc{}
	err := r.q.FindOne(ctx, domain.TableLedgerBalances, bson.M{"account": account}, doc)
	if err == query.ErrNotFound {
		return big.NewInt(0), nil
	} else if err != nil {
		ctx.WithField("err", err).WithField("account", account).Error("q.FindOne failed")
		return nil, err
	}

	balance, err := marketplace.ParseAmount(doc.Balance)
	if err != nil {
		return nil, err
	}
	return balance, nil
}
