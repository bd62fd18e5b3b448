package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/delivery"
	"github.com/melodex/goapi/domain"
	dExchange "github.com/melodex/goapi/domain/exchange"
)

type handler struct {
	exchange dExchange.UseCase
}

func New(e *echo.Echo, _exchange dExchange.UseCase) {
	h := &handler{_exchange}

	e.POST("/exchanges", h.register)
	e.GET("/exchanges/:id", h.get)
	e.POST("/exchanges/:id/approve", h.approve)
	e.DELETE("/exchanges/:id", h.cancel)
}

func (h *handler) register(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller     domain.Address    `json:"caller"`
		AssetId    domain.AssetId    `json:"assetId"`
		Qty        int64             `json:"qty"`
		ExchangeId domain.ExchangeId `json:"exchangeId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.exchange.Register(ctx, &dExchange.RegisterInput{
		Caller:     p.Caller,
		AssetId:    p.AssetId,
		Qty:        p.Qty,
		ExchangeId: p.ExchangeId,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, res)
}

func (h *handler) get(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id, err := parseExchangeId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid exchange id")
	}

	res, err := h.exchange.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) approve(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `json:"caller"`
	}

	id, err := parseExchangeId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid exchange id")
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.exchange.Approve(ctx, p.Caller, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) cancel(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `json:"caller" query:"caller"`
	}

	id, err := parseExchangeId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid exchange id")
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.exchange.Cancel(ctx, p.Caller, id); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func parseExchangeId(s string) (domain.ExchangeId, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return domain.ExchangeId(id), err
}
