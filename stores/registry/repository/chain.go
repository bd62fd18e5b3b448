package repository

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/domain"
	"github.com/melodex/goapi/domain/marketplace"
	"github.com/melodex/goapi/domain/registry"
)

// registryABI covers the asset registry surface the engine consumes:
// balances, ownership, approvals, transfers and the royalty tables.
const registryABI = `[
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"},{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"ownerOf","type":"function","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"name":"isApprovedForAll","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"},{"name":"operator","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"safeTransferFrom","type":"function","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"},{"name":"data","type":"bytes"}],"outputs":[]},
	{"name":"safeBatchTransferFrom","type":"function","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"ids","type":"uint256[]"},{"name":"amounts","type":"uint256[]"},{"name":"data","type":"bytes"}],"outputs":[]},
	{"name":"getRoyaltyRecipients","type":"function","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"recipients","type":"address[]"},{"name":"percentages","type":"uint256[]"}]},
	{"name":"setRoyaltyRecipients","type":"function","stateMutability":"nonpayable","inputs":[{"name":"id","type":"uint256"},{"name":"recipients","type":"address[]"},{"name":"percentages","type":"uint256[]"}],"outputs":[]},
	{"name":"getRoyaltyManager","type":"function","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"name":"setRoyaltyManager","type":"function","stateMutability":"nonpayable","inputs":[{"name":"id","type":"uint256"},{"name":"manager","type":"address"}],"outputs":[]}
]`

type ChainRegistryCfg struct {
	RpcUrl          string
	ChainId         int64
	ContractAddress string
	// EngineAddress is the operator checked by IsApprovedForEngine and the
	// sender of escrow transfers.
	EngineAddress string
	// EngineKey is the hex private key signing engine transactions.
	EngineKey string
}

type chainRegistryImpl struct {
	client   *ethclient.Client
	abi      ethabi.ABI
	chainId  *big.Int
	contract common.Address
	engine   common.Address
	key      *ecdsa.PrivateKey
}

func NewChainRegistry(ctx bCtx.Ctx, cfg *ChainRegistryCfg) (registry.Registry, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}

	parsed, err := ethabi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, err
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.EngineKey, "0x"))
	if err != nil {
		ctx.WithField("err", err).Error("failed to parse engine key")
		return nil, err
	}

	return &chainRegistryImpl{
		client:   client,
		abi:      parsed,
		chainId:  big.NewInt(cfg.ChainId),
		contract: common.HexToAddress(cfg.ContractAddress),
		engine:   common.HexToAddress(cfg.EngineAddress),
		key:      key,
	}, nil
}

func (r *chainRegistryImpl) call(ctx bCtx.Ctx, method string, params ...interface{}) ([]interface{}, error) {
	data, err := r.abi.Pack(method, params...)
	if err != nil {
		ctx.WithField("err", err).WithField("method", method).Error("abi.Pack failed")
		return nil, err
	}

	res, err := r.client.CallContract(ctx, ethereum.CallMsg{To: &r.contract, Data: data}, nil)
	if err != nil {
		ctx.WithField("err", err).WithField("method", method).Error("CallContract failed")
		return nil, err
	}

	unpacked, err := r.abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).WithField("method", method).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (r *chainRegistryImpl) transact(ctx bCtx.Ctx, method string, params ...interface{}) error {
	data, err := r.abi.Pack(method, params...)
	if err != nil {
		ctx.WithField("err", err).WithField("method", method).Error("abi.Pack failed")
		return err
	}

	nonce, err := r.client.PendingNonceAt(ctx, r.engine)
	if err != nil {
		ctx.WithField("err", err).Error("PendingNonceAt failed")
		return err
	}

	gasPrice, err := r.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("SuggestGasPrice failed")
		return err
	}

	gasLimit, err := r.client.EstimateGas(ctx, ethereum.CallMsg{
		From: r.engine,
		To:   &r.contract,
		Data: data,
	})
	if err != nil {
		ctx.WithField("err", err).WithField("method", method).Error("EstimateGas failed")
		return xerrors.Errorf("%s: %w", method, registry.ErrTransferReverted)
	}

	tx := types.NewTransaction(nonce, r.contract, big.NewInt(0), gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.NewEIP155Signer(r.chainId), r.key)
	if err != nil {
		ctx.WithField("err", err).Error("SignTx failed")
		return err
	}

	if err := r.client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"tx":     signed.Hash().Hex(),
		}).Error("SendTransaction failed")
		return xerrors.Errorf("%s: %w", method, registry.ErrTransferReverted)
	}
	return nil
}

func (r *chainRegistryImpl) BalanceOf(ctx bCtx.Ctx, owner domain.Address, assetId domain.AssetId) (int64, error) {
	res, err := r.call(ctx, "balanceOf", common.HexToAddress(string(owner)), assetBig(assetId))
	if err != nil {
		return 0, err
	}
	return res[0].(*big.Int).Int64(), nil
}

func (r *chainRegistryImpl) OwnerOf(ctx bCtx.Ctx, assetId domain.AssetId) (domain.Address, error) {
	res, err := r.call(ctx, "ownerOf", assetBig(assetId))
	if err != nil {
		return "", registry.ErrAssetNotFound
	}
	return toAddress(res[0]), nil
}

func (r *chainRegistryImpl) IsApprovedForEngine(ctx bCtx.Ctx, owner domain.Address) (bool, error) {
	res, err := r.call(ctx, "isApprovedForAll", common.HexToAddress(string(owner)), r.engine)
	if err != nil {
		return false, err
	}
	return res[0].(bool), nil
}

func (r *chainRegistryImpl) Transfer(ctx bCtx.Ctx, from, to domain.Address, assetId domain.AssetId, qty int64) error {
	return r.transact(ctx, "safeTransferFrom",
		common.HexToAddress(string(from)),
		common.HexToAddress(string(to)),
		assetBig(assetId),
		big.NewInt(qty),
		[]byte{},
	)
}

func (r *chainRegistryImpl) BatchTransfer(ctx bCtx.Ctx, from, to domain.Address, assetIds []domain.AssetId, qtys []int64) error {
	if len(assetIds) != len(qtys) {
		return marketplace.ErrMismatchedArrayPassed
	}

	ids := make([]*big.Int, len(assetIds))
	amounts := make([]*big.Int, len(qtys))
	for i := range assetIds {
		ids[i] = assetBig(assetIds[i])
		amounts[i] = big.NewInt(qtys[i])
	}

	return r.transact(ctx, "safeBatchTransferFrom",
		common.HexToAddress(string(from)),
		common.HexToAddress(string(to)),
		ids,
		amounts,
		[]byte{},
	)
}

func (r *chainRegistryImpl) RoyaltyRecipients(ctx bCtx.Ctx, assetId domain.AssetId) ([]marketplace.RoyaltyShare, error) {
	res, err := r.call(ctx, "getRoyaltyRecipients", assetBig(assetId))
	if err != nil {
		return nil, err
	}

	recipients := res[0].([]common.Address)
	percentages := res[1].([]*big.Int)
	if len(recipients) != len(percentages) {
		return nil, marketplace.ErrMismatchedArrayPassed
	}

	shares := make([]marketplace.RoyaltyShare, len(recipients))
	for i := range recipients {
		shares[i] = marketplace.RoyaltyShare{
			Recipient: domain.Address(recipients[i].Hex()).ToLower(),
			Bps:       percentages[i].Int64(),
		}
	}
	return shares, nil
}

func (r *chainRegistryImpl) SetRoyaltyRecipients(ctx bCtx.Ctx, assetId domain.AssetId, shares []marketplace.RoyaltyShare) error {
	recipients := make([]common.Address, len(shares))
	percentages := make([]*big.Int, len(shares))
	for i, share := range shares {
		recipients[i] = common.HexToAddress(string(share.Recipient))
		percentages[i] = big.NewInt(share.Bps)
	}
	return r.transact(ctx, "setRoyaltyRecipients", assetBig(assetId), recipients, percentages)
}

func (r *chainRegistryImpl) RoyaltyManager(ctx bCtx.Ctx, assetId domain.AssetId) (domain.Address, error) {
	res, err := r.call(ctx, "getRoyaltyManager", assetBig(assetId))
	if err != nil {
		return "", err
	}
	return toAddress(res[0]), nil
}

func (r *chainRegistryImpl) SetRoyaltyManager(ctx bCtx.Ctx, assetId domain.AssetId, manager domain.Address) error {
	return r.transact(ctx, "setRoyaltyManager", assetBig(assetId), common.HexToAddress(string(manager)))
}

func assetBig(assetId domain.AssetId) *big.Int {
	return new(big.Int).SetUint64(uint64(assetId))
}

func toAddress(v interface{}) domain.Address {
	return domain.Address(v.(common.Address).Hex()).ToLower()
}
