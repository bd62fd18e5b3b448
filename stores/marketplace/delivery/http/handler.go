package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/delivery"
	"github.com/melodex/goapi/domain"
	dMarketplace "github.com/melodex/goapi/domain/marketplace"
	mmiddleware "github.com/melodex/goapi/middleware"
)

type handler struct {
	marketplace dMarketplace.UseCase
}

func New(e *echo.Echo, _marketplace dMarketplace.UseCase) {
	h := &handler{_marketplace}

	e.POST("/listings", h.list)
	e.GET("/listings", h.getListings)
	e.GET("/listings/:id", h.getListing)
	e.PATCH("/listings/:id", h.update)
	e.DELETE("/listings/:id", h.cancel)
	e.POST("/listings/:id/purchase", h.purchase)

	e.POST("/special-listings", h.listSpecial)
	e.GET("/special-listings/:assetId", h.getSpecialListing)
	e.DELETE("/special-listings/:assetId", h.cancelSpecial)
	e.POST("/special-listings/:assetId/purchase", h.specialBuy)

	e.GET("/activities", h.getActivities, mmiddleware.CacheHttp(30*time.Second))
	e.GET("/configs", h.getConfigs)
	e.PUT("/admin/fees/first-sale", h.updateFirstSaleFee)
	e.PUT("/admin/fees/resale", h.updateResaleFee)
	e.PUT("/admin/unit-cap", h.updateUnitCap)

	e.POST("/callbacks/units-received", h.onUnitsReceived)
	e.POST("/callbacks/units-batch-received", h.onUnitsBatchReceived)
}

func (h *handler) list(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Seller     domain.Address `json:"seller"`
		AssetId    domain.AssetId `json:"assetId"`
		UnitPrice  string         `json:"unitPrice"`
		Quantity   int64          `json:"quantity"`
		AirdropQty int64          `json:"airdropQty"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.List(ctx, &dMarketplace.ListInput{
		Seller:     p.Seller,
		AssetId:    p.AssetId,
		UnitPrice:  p.UnitPrice,
		Quantity:   p.Quantity,
		AirdropQty: p.AirdropQty,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, res)
}

func (h *handler) getListings(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		AssetId *domain.AssetId `query:"assetId"`
		Seller  *domain.Address `query:"seller"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dMarketplace.ListingFindAllOptionsFunc{
		dMarketplace.ListingWithPagination(p.Offset, p.Limit),
	}
	if p.AssetId != nil {
		opts = append(opts, dMarketplace.ListingWithAsset(*p.AssetId))
	}
	if p.Seller != nil {
		opts = append(opts, dMarketplace.ListingWithSeller(*p.Seller))
	}

	res, err := h.marketplace.GetListings(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getListing(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id, err := parseListingId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid listing id")
	}

	res, err := h.marketplace.GetListing(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) update(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller    domain.Address `json:"caller"`
		QtyDelta  int64          `json:"qtyDelta"`
		UnitPrice string         `json:"unitPrice"`
	}

	id, err := parseListingId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid listing id")
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.Update(ctx, &dMarketplace.UpdateInput{
		Caller:    p.Caller,
		ListingId: id,
		QtyDelta:  p.QtyDelta,
		UnitPrice: p.UnitPrice,
	})
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

	id, err := parseListingId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid listing id")
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.Cancel(ctx, p.Caller, id); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) purchase(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Buyer    domain.Address `json:"buyer"`
		Quantity int64          `json:"quantity"`
		Paid     string         `json:"paid"`
	}

	id, err := parseListingId(_ctx.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid listing id")
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.Purchase(ctx, &dMarketplace.PurchaseInput{
		Buyer:     p.Buyer,
		ListingId: id,
		Quantity:  p.Quantity,
		Paid:      p.Paid,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) listSpecial(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller  domain.Address `json:"caller"`
		AssetId domain.AssetId `json:"assetId"`
		Price   string         `json:"price"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.ListSpecial(ctx, p.Caller, p.AssetId, p.Price)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, res)
}

func (h *handler) getSpecialListing(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	assetId, err := parseAssetId(_ctx.Param("assetId"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid asset id")
	}

	res, err := h.marketplace.GetSpecialListing(ctx, assetId)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) cancelSpecial(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `json:"caller" query:"caller"`
	}

	assetId, err := parseAssetId(_ctx.Param("assetId"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid asset id")
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.CancelSpecial(ctx, p.Caller, assetId); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) specialBuy(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Buyer      domain.Address   `json:"buyer"`
		Recipients []domain.Address `json:"recipients"`
		Bps        []int64          `json:"bps"`
		Paid       string           `json:"paid"`
	}

	assetId, err := parseAssetId(_ctx.Param("assetId"))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid asset id")
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.SpecialBuy(ctx, &dMarketplace.SpecialBuyInput{
		Buyer:      p.Buyer,
		AssetId:    assetId,
		Recipients: p.Recipients,
		Bps:        p.Bps,
		Paid:       p.Paid,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getActivities(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		AssetId *domain.AssetId `query:"assetId"`
		Account *domain.Address `query:"account"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dMarketplace.ActivityFindAllOptionsFunc{
		dMarketplace.ActivityWithPagination(p.Offset, p.Limit),
	}
	if p.AssetId != nil {
		opts = append(opts, dMarketplace.ActivityWithAsset(*p.AssetId))
	}
	if p.Account != nil {
		opts = append(opts, dMarketplace.ActivityWithAccount(*p.Account))
	}

	res, err := h.marketplace.GetActivities(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getConfigs(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	firstSale, resale, platform, err := h.marketplace.GetFeeConfigs(ctx)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, map[string]interface{}{
		"firstSale": firstSale,
		"resale":    resale,
		"platform":  platform,
	})
}

func (h *handler) updateFirstSaleFee(_ctx echo.Context) error {
	return h.updateFee(_ctx, h.marketplace.UpdateFirstSaleFee)
}

func (h *handler) updateResaleFee(_ctx echo.Context) error {
	return h.updateFee(_ctx, h.marketplace.UpdateResaleFee)
}

func (h *handler) updateFee(_ctx echo.Context, apply func(bCtx.Ctx, domain.Address, dMarketplace.FeeConfig) error) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller         domain.Address `json:"caller"`
		PlatformBps    int64          `json:"platformBps"`
		RoyaltyPoolBps int64          `json:"royaltyPoolBps"`
		SellerBps      int64          `json:"sellerBps"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := apply(ctx, p.Caller, dMarketplace.FeeConfig{
		PlatformBps:    p.PlatformBps,
		RoyaltyPoolBps: p.RoyaltyPoolBps,
		SellerBps:      p.SellerBps,
	}); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) updateUnitCap(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `json:"caller"`
		Cap    int64          `json:"cap"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.UpdateUnitCap(ctx, p.Caller, p.Cap); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) onUnitsReceived(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	return delivery.MakeJsonResp(_ctx, http.StatusOK, h.marketplace.OnUnitsReceived(ctx))
}

func (h *handler) onUnitsBatchReceived(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	return delivery.MakeJsonResp(_ctx, http.StatusOK, h.marketplace.OnUnitsBatchReceived(ctx))
}

func parseListingId(s string) (domain.ListingId, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return domain.ListingId(id), err
}

func parseAssetId(s string) (domain.AssetId, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return domain.AssetId(id), err
}
