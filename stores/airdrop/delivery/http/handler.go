package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/delivery"
	"github.com/melodex/goapi/domain"
	dAirdrop "github.com/melodex/goapi/domain/airdrop"
	mmiddleware "github.com/melodex/goapi/middleware"
)

type handler struct {
	airdrop dAirdrop.UseCase
}

func New(e *echo.Echo, _airdrop dAirdrop.UseCase) {
	h := &handler{_airdrop}

	e.POST("/airdrops", h.register)
	e.GET("/airdrops", h.findAll, mmiddleware.CacheHttp(30*time.Second))
	e.GET("/airdrops/:id", h.get)
	e.POST("/airdrops/:id/claim", h.claim)
}

func (h *handler) register(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Owner   domain.Address `json:"owner"`
		AssetId domain.AssetId `json:"assetId"`
		Qty     int64          `json:"qty"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.airdrop.Register(ctx, &dAirdrop.RegisterInput{
		Owner:   p.Owner,
		AssetId: p.AssetId,
		Qty:     p.Qty,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, res)
}

func (h *handler) findAll(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		AssetId *domain.AssetId `query:"assetId"`
		Owner   *domain.Address `query:"owner"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dAirdrop.FindAllOptionsFunc{
		dAirdrop.WithPagination(p.Offset, p.Limit),
	}
	if p.AssetId != nil {
		opts = append(opts, dAirdrop.WithAsset(*p.AssetId))
	}
	if p.Owner != nil {
		opts = append(opts, dAirdrop.WithOwner(*p.Owner))
	}

	res, err := h.airdrop.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) get(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id, err := parseAirdropId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid airdrop id")
	}

	res, err := h.airdrop.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) claim(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Claimer domain.Address `json:"claimer"`
	}

	id, err := parseAirdropId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid airdrop id")
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.airdrop.Claim(ctx, p.Claimer, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func parseAirdropId(s string) (domain.AirdropId, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return domain.AirdropId(id), err
}
