package domain

import (
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is a lower-cased hex account address.
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// AssetId identifies one fractional asset in the external registry.
type AssetId uint64

// ListingId is allocated from a monotonic counter and never reused.
type ListingId uint64

// ExchangeId identifies a barter slot. Zero means "allocate a new slot".
type ExchangeId uint64

// AirdropId identifies a free-distribution pool.
type AirdropId uint64

type Table string

const (
	TableListings        Table = "listings"
	TableSpecialListings Table = "special_listings"
	TableAssetSaleStates Table = "asset_sale_states"
	TableHoldings        Table = "holdings"
	TableFeeConfigs      Table = "fee_configs"
	TablePlatformConfigs Table = "platform_configs"
	TableActivities      Table = "activities"
	TableCounters        Table = "counters"
	TableExchangeSlots   Table = "exchange_slots"
	TableEscrows         Table = "escrows"
	TableAirdrops        Table = "airdrops"
	TableAirdropClaims   Table = "airdrop_claims"
	TableLedgerEntries   Table = "ledger_entries"
	TableLedgerBalances  Table = "ledger_balances"
)
