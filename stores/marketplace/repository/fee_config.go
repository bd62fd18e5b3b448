package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/keys"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/service/cache"
	"github.com/melodex/goapi/service/cache/provider"
	"github.com/melodex/goapi/service/cache/provider/compound"
	"github.com/melodex/goapi/service/cache/provider/primitive"
	redisCache "github.com/melodex/goapi/service/cache/provider/redis"
	"github.com/melodex/goapi/service/query"
	"github.com/melodex/goapi/service/redis"
)

type feeConfigRepoImpl struct {
	q        query.Mongo
	cfgCache cache.Service
}

// NewFeeConfigRepo creates a fee config repo. Configs are read on every
// purchase, so they are cached; writes invalidate.
func NewFeeConfigRepo(q query.Mongo, redis redis.Service) marketplace.FeeConfigRepo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive(keys.PfxFeeConfig, 16),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &feeConfigRepoImpl{
		q: q,
		cfgCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxFeeConfig,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (r *feeConfigRepoImpl) Get(ctx bCtx.Ctx, label string) (*marketplace.FeeConfig, error) {
	res := &marketplace.FeeConfig{}

	if err := r.cfgCache.GetByFunc(ctx, cacheKey(label), res, func() (interface{}, error) {
		return r.get(ctx, label)
	}); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"label": label,
		}).Error("cfgCache.GetByFunc failed")
		return nil, err
	}

	return res, nil
}

func (r *feeConfigRepoImpl) get(ctx bCtx.Ctx, label string) (*marketplace.FeeConfig, error) {
	cfg := &marketplace.FeeConfig{}
	err := r.q.FindOne(ctx, domain.TableFeeConfigs, bson.M{"label": label}, cfg)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("label", label).Error("q.FindOne failed")
		return nil, err
	}
	return cfg, nil
}

func (r *feeConfigRepoImpl) Upsert(ctx bCtx.Ctx, cfg *marketplace.FeeConfig) error {
	if err := r.q.Upsert(ctx, domain.TableFeeConfigs, bson.M{"label": cfg.Label}, cfg); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"cfg": cfg,
		}).Error("q.Upsert failed")
		return err
	}

	if err := r.cfgCache.Del(ctx, cacheKey(cfg.Label)); err != nil {
		ctx.WithField("err", err).WithField("label", cfg.Label).Error("cfgCache.Del failed")
	}
	return nil
}

func (r *feeConfigRepoImpl) GetPlatformConfig(ctx bCtx.Ctx) (*marketplace.PlatformConfig, error) {
	cfg := &marketplace.PlatformConfig{}
	err := r.q.FindOne(ctx, domain.TablePlatformConfigs, bson.M{}, cfg)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return cfg, nil
}

func (r *feeConfigRepoImpl) UpsertPlatformConfig(ctx bCtx.Ctx, cfg *marketplace.PlatformConfig) error {
	if err := r.q.Upsert(ctx, domain.TablePlatformConfigs, bson.M{}, cfg); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"cfg": cfg,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func cacheKey(label string) string {
	if label == marketplace.FeeLabelFirstSale {
		return "firstSale"
	}
	return label
}
