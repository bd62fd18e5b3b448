package marketplace

import (
	"time"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/domain"
)

type ActivityType string

const (
	ActivityListed            ActivityType = "listed"
	ActivityListingUpdated    ActivityType = "listingUpdated"
	ActivityListingCancelled  ActivityType = "listingCancelled"
	ActivityPurchased         ActivityType = "purchased"
	ActivitySpecialListed     ActivityType = "specialListed"
	ActivitySpecialPurchased  ActivityType = "specialPurchased"
	ActivitySpecialCancelled  ActivityType = "specialCancelled"
	ActivityRoyaltyUpdated    ActivityType = "royaltyRecipientsUpdated"
	ActivityExchangeFilled    ActivityType = "exchangeFilled"
	ActivityExchangeSettled   ActivityType = "exchangeSettled"
	ActivityExchangeCancelled ActivityType = "exchangeCancelled"
	ActivityAirdropRegistered ActivityType = "airdropRegistered"
	ActivityAirdropClaimed    ActivityType = "airdropClaimed"
	ActivityFeeConfigUpdated  ActivityType = "feeConfigUpdated"
	ActivityUnitCapUpdated    ActivityType = "unitCapUpdated"
)

// Activity is the append-only audit record every mutating operation leaves
// behind. Cancellations carry the last known price and quantity so the
// history stays observable after the live record is zeroed.
type Activity struct {
	Type      ActivityType   `json:"type" bson:"type"`
	AssetId   domain.AssetId `json:"assetId" bson:"assetId"`
	Account   domain.Address `json:"account,omitempty" bson:"account,omitempty"`
	Other     domain.Address `json:"other,omitempty" bson:"other,omitempty"`
	Quantity  int64          `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Price     string         `json:"price,omitempty" bson:"price,omitempty"`
	Ref       uint64         `json:"ref,omitempty" bson:"ref,omitempty"`
	Label     string         `json:"label,omitempty" bson:"label,omitempty"`
	Old       string         `json:"old,omitempty" bson:"old,omitempty"`
	New       string         `json:"new,omitempty" bson:"new,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type ActivityFindAllOptions struct {
	AssetId *domain.AssetId
	Account *domain.Address
	Types   *[]ActivityType
	Offset  *int32
	Limit   *int32
}

type ActivityFindAllOptionsFunc func(*ActivityFindAllOptions) error

func GetActivityFindAllOptions(opts ...ActivityFindAllOptionsFunc) (ActivityFindAllOptions, error) {
	res := ActivityFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func ActivityWithAsset(assetId domain.AssetId) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.AssetId = &assetId
		return nil
	}
}

func ActivityWithAccount(account domain.Address) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		account = account.ToLower()
		options.Account = &account
		return nil
	}
}

func ActivityWithTypes(types ...ActivityType) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Types = &types
		return nil
	}
}

func ActivityWithPagination(offset, limit int32) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type ActivityRepo interface {
	Insert(ctx.Ctx, *Activity) error
	FindAll(ctx.Ctx, ...ActivityFindAllOptionsFunc) ([]Activity, error)
}
