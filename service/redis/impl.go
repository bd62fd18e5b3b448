package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/metrics"
	"github.com/melodex/goapi/domain/keys"
)

// retTTLNoKey is the return value of TTL when the key does not exist
const retTTLNoKey = -2

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
)

// Service provides the subset of redis commands the cache layers need.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	TTL(context ctx.Ctx, key string) (int64, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, diff int) (int64, error)
}

// Pools holds the source redis pool.
type Pools struct {
	Src *redis.Pool
}

type redImpl struct {
	name    string
	metrics metrics.Service
	pools   *Pools
}

func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:    name,
		metrics: metrics,
		pools:   pools,
	}
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.pools.Src.GetContext(context)
	if err != nil {
		context.WithField("err", err).Error("redis.GetContext failed")
		return nil, err
	}
	defer conn.Close()
	return conn.Do(commandName, args...)
}

func (r *redImpl) bump(funcName, key string, start time.Time, err *error) {
	tags := []string{"func", funcName, "cluster", r.name, "prefix", keys.GetPrefix(key)}
	r.metrics.BumpHistogram("cmd.time", float64(time.Since(start)/time.Millisecond), tags...)
	if *err != nil && *err != ErrNotFound {
		r.metrics.BumpSum("cmd.err", 1, tags...)
	}
}

func (r *redImpl) Get(context ctx.Ctx, key string) (val []byte, err error) {
	defer r.bump("get", key, time.Now(), &err)

	val, err = redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis GET failed")
		return nil, err
	}
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) (err error) {
	defer r.bump("set", key, time.Now(), &err)

	if expire > 0 {
		_, err = r.connDo(context, "SET", key, val, "PX", int64(expire/time.Millisecond))
	} else {
		_, err = r.connDo(context, "SET", key, val)
	}
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis SET failed")
	}
	return err
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (n int, err error) {
	if len(ks) == 0 {
		return 0, nil
	}
	defer r.bump("del", ks[0], time.Now(), &err)

	args := make([]interface{}, 0, len(ks))
	for _, k := range ks {
		args = append(args, k)
	}
	n, err = redis.Int(r.connDo(context, "DEL", args...))
	if err != nil {
		context.WithField("err", err).Error("redis DEL failed")
		return 0, err
	}
	return n, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (ttl int64, err error) {
	defer r.bump("ttl", key, time.Now(), &err)

	ttl, err = redis.Int64(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis TTL failed")
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (ok bool, err error) {
	defer r.bump("exists", key, time.Now(), &err)

	ok, err = redis.Bool(r.connDo(context, "EXISTS", key))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis EXISTS failed")
		return false, err
	}
	return ok, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, diff int) (val int64, err error) {
	defer r.bump("incrby", key, time.Now(), &err)

	val, err = redis.Int64(r.connDo(context, "INCRBY", key, diff))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis INCRBY failed")
		return 0, err
	}
	return val, nil
}
