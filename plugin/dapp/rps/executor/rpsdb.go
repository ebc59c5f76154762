// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor rps
import (
	"bytes"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
)

//Ledger 托管赌注使用的资产接口, account.DB 实现
type Ledger interface {
	Transfer(from, to string, amount int64) (*types.Receipt, error)
	TransferFrom(spender, owner, to string, amount int64) (*types.Receipt, error)
}

//Action 一笔 rps 交易的执行环境
type Action struct {
	db        dbm.KV
	cfg       *types.Config
	fromaddr  string
	blocktime int64
	execaddr  string
}

//NewAction new action
func NewAction(r *RPS, tx *types.Transaction) *Action {
	return &Action{
		db:        r.GetStateDB(),
		cfg:       r.GetConfig(),
		fromaddr:  tx.From(),
		blocktime: r.GetBlockTime(),
		execaddr:  dapp.ExecAddress(string(tx.Execer)),
	}
}

func (action *Action) ledger(conf *rt.RPSConfig) (Ledger, error) {
	return account.NewAccountDB(conf.GetAsset(), action.db)
}

func (action *Action) loadConfig() (*rt.RPSConfig, error) {
	value, err := action.db.Get(ConfigKey())
	if err != nil {
		return nil, rt.ErrGameNotStarted
	}
	var conf rt.RPSConfig
	if err := types.Decode(value, &conf); err != nil {
		panic(err) //数据库已经损坏
	}
	return &conf, nil
}

func (action *Action) loadPlayer(slot int32) (*rt.PlayerRecord, bool) {
	value, err := action.db.Get(PlayerKey(slot))
	if err != nil {
		return nil, false
	}
	var player rt.PlayerRecord
	if err := types.Decode(value, &player); err != nil {
		panic(err)
	}
	return &player, true
}

func (action *Action) loadBetStart() (int64, bool) {
	value, err := action.db.Get(BetStartKey())
	if err != nil {
		return 0, false
	}
	var start types.Int64
	if err := types.Decode(value, &start); err != nil {
		panic(err)
	}
	return start.Data, true
}

func (action *Action) save(key []byte, value []byte) *types.KeyValue {
	if err := action.db.Set(key, value); err != nil {
		panic(err)
	}
	return &types.KeyValue{Key: key, Value: value}
}

func (action *Action) savePlayer(slot int32, player *rt.PlayerRecord) *types.KeyValue {
	return action.save(PlayerKey(slot), types.Encode(player))
}

//clear 一局结束, 清空两个位置以及开始时间
func (action *Action) clear() (kv []*types.KeyValue) {
	kv = append(kv, action.save(PlayerKey(rt.SlotOne), nil))
	kv = append(kv, action.save(PlayerKey(rt.SlotTwo), nil))
	kv = append(kv, action.save(BetStartKey(), nil))
	return kv
}

func (action *Action) maxWager() int64 {
	if action.cfg == nil || action.cfg.Rps == nil {
		return 0
	}
	return action.cfg.Rps.MaxWager
}

func (action *Action) receiptLog(ty int32, r *rt.ReceiptRPS) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

//Initialize 设置对局配置, 只能设置一次
func (action *Action) Initialize(init *rt.RPSInit) (*types.Receipt, error) {
	if _, err := action.loadConfig(); err == nil {
		rlog.Error("Initialize", "addr", action.fromaddr, "err", rt.ErrAlreadyInitialized)
		return nil, rt.ErrAlreadyInitialized
	}
	wager := init.GetWager()
	if wager < 0 || wager >= types.MaxCoin/2 {
		rlog.Error("Initialize", "addr", action.fromaddr, "wager", wager, "err", rt.ErrRPSAmount)
		return nil, rt.ErrRPSAmount
	}
	if maxWager := action.maxWager(); maxWager > 0 && wager > maxWager {
		rlog.Error("Initialize", "addr", action.fromaddr, "wager", wager, "maxWager", maxWager, "err", rt.ErrRPSAmount)
		return nil, rt.ErrRPSAmount
	}
	if init.GetTimeout() < 0 {
		return nil, types.ErrInvalidParam
	}
	if _, err := rt.HashFunc(init.GetHashType()); err != nil {
		return nil, err
	}
	if _, err := account.NewAccountDB(init.GetAsset(), action.db); err != nil {
		return nil, err
	}
	conf := &rt.RPSConfig{
		Asset:    init.GetAsset(),
		Wager:    wager,
		Timeout:  init.GetTimeout(),
		HashType: init.GetHashType(),
	}
	kv := action.save(ConfigKey(), types.Encode(conf))
	rlog.Debug("Initialize", "addr", action.fromaddr, "config", conf.String())
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{action.receiptLog(rt.TyLogRPSInit, &rt.ReceiptRPS{Addr: action.fromaddr, Config: conf})},
	}, nil
}

//Commit 占用第一个空位置并托管赌注, 第二个位置被占用时记录开始时间
func (action *Action) Commit(commit *rt.RPSCommit) (*types.Receipt, error) {
	conf, err := action.loadConfig()
	if err != nil {
		return nil, err
	}
	player := commit.GetPlayer()
	if player != action.fromaddr {
		rlog.Error("Commit", "player", player, "from", action.fromaddr, "err", types.ErrUnauthorized)
		return nil, types.ErrUnauthorized
	}
	if len(commit.GetDigest()) != rt.DigestLen {
		return nil, rt.ErrInvalidDigest
	}

	var slot int32
	if _, ok := action.loadPlayer(rt.SlotOne); !ok {
		slot = rt.SlotOne
	} else if _, ok := action.loadPlayer(rt.SlotTwo); !ok {
		slot = rt.SlotTwo
	} else {
		rlog.Error("Commit", "player", player, "err", rt.ErrMaxPlayersHit)
		return nil, rt.ErrMaxPlayersHit
	}

	var kv []*types.KeyValue
	kv = append(kv, action.savePlayer(slot, &rt.PlayerRecord{Addr: player, Digest: commit.GetDigest(), Move: rt.Unrevealed}))
	var betStart int64
	if slot == rt.SlotTwo {
		betStart = action.blocktime
		kv = append(kv, action.save(BetStartKey(), types.Encode(&types.Int64{Data: betStart})))
	}
	receipt := &types.Receipt{
		Ty: types.ExecOk,
		KV: kv,
		Logs: []*types.ReceiptLog{action.receiptLog(rt.TyLogRPSCommit,
			&rt.ReceiptRPS{Addr: player, Slot: slot, Move: rt.Unrevealed, BetStart: betStart})},
	}
	if conf.GetWager() == 0 {
		return receipt, nil
	}
	ledger, err := action.ledger(conf)
	if err != nil {
		return nil, err
	}
	receiptTransfer, err := ledger.TransferFrom(action.execaddr, player, action.execaddr, conf.GetWager())
	if err != nil {
		rlog.Error("Commit.TransferFrom", "player", player, "execaddr", action.execaddr, "amount", conf.GetWager(), "err", err)
		return nil, err
	}
	return types.MergeReceipt(receipt, receiptTransfer), nil
}

//Reveal 公开出拳, 不检查调用者
func (action *Action) Reveal(reveal *rt.RPSReveal) (*types.Receipt, error) {
	slot := reveal.GetSlot()
	if slot != rt.SlotOne && slot != rt.SlotTwo {
		return nil, rt.ErrInvalidOp
	}
	player, ok := action.loadPlayer(slot)
	if !ok {
		rlog.Error("Reveal", "slot", slot, "err", rt.ErrInvalidOp)
		return nil, rt.ErrInvalidOp
	}
	//不是石头剪刀布的出拳不可能和提交的 hash 相同
	if !rt.IsConcreteMove(reveal.GetMove()) {
		rlog.Error("Reveal", "slot", slot, "move", reveal.GetMove(), "err", rt.ErrInvalidReveal)
		return nil, rt.ErrInvalidReveal
	}
	conf, err := action.loadConfig()
	if err != nil {
		return nil, err
	}
	digest, err := rt.CommitDigest(player.GetAddr(), reveal.GetMove(), reveal.GetSecret(), conf.GetHashType())
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(digest, player.GetDigest()) {
		rlog.Error("Reveal", "slot", slot, "addr", player.GetAddr(), "from", action.fromaddr, "err", rt.ErrInvalidReveal)
		return nil, rt.ErrInvalidReveal
	}
	player.Move = reveal.GetMove()
	kv := action.savePlayer(slot, player)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{action.receiptLog(rt.TyLogRPSReveal,
			&rt.ReceiptRPS{Addr: player.GetAddr(), Slot: slot, Move: player.Move})},
	}, nil
}

func (action *Action) revealedPlayers() (one, two *rt.PlayerRecord, err error) {
	one, ok := action.loadPlayer(rt.SlotOne)
	if !ok || one.GetMove() == rt.Unrevealed {
		return nil, nil, rt.ErrNotRevealed
	}
	two, ok = action.loadPlayer(rt.SlotTwo)
	if !ok || two.GetMove() == rt.Unrevealed {
		return nil, nil, rt.ErrNotRevealed
	}
	return one, two, nil
}

//Evaluate 两个人都公开之后开奖
func (action *Action) Evaluate() (*types.Receipt, error) {
	one, two, err := action.revealedPlayers()
	if err != nil {
		rlog.Error("Evaluate", "from", action.fromaddr, "err", err)
		return nil, err
	}
	conf, err := action.loadConfig()
	if err != nil {
		return nil, err
	}
	result := Outcome(one.GetMove(), two.GetMove())
	receipt := &types.Receipt{Ty: types.ExecOk}
	if conf.GetWager() > 0 {
		ledger, err := action.ledger(conf)
		if err != nil {
			return nil, err
		}
		var payouts []*rt.PlayerRecord
		amount := conf.GetWager()
		switch {
		case result.Kind == rt.ResultDraw:
			payouts = []*rt.PlayerRecord{one, two}
		case result.Winner == rt.SlotOne:
			payouts, amount = []*rt.PlayerRecord{one}, 2*amount
		default:
			payouts, amount = []*rt.PlayerRecord{two}, 2*amount
		}
		for _, p := range payouts {
			receiptTransfer, err := ledger.Transfer(action.execaddr, p.GetAddr(), amount)
			if err != nil {
				rlog.Error("Evaluate.Transfer", "execaddr", action.execaddr, "to", p.GetAddr(), "amount", amount, "err", err)
				return nil, err
			}
			receipt = types.MergeReceipt(receipt, receiptTransfer)
		}
	}
	receipt.KV = append(receipt.KV, action.clear()...)
	receipt.Logs = append(receipt.Logs, action.receiptLog(rt.TyLogRPSEvaluate, &rt.ReceiptRPS{Addr: action.fromaddr, Result: result}))
	rlog.Debug("Evaluate", "one", one.GetAddr(), "two", two.GetAddr(), "result", result.String())
	return receipt, nil
}

//Cancel 超时之后只有一方公开时, 公开的一方拿走全部赌注
func (action *Action) Cancel() (*types.Receipt, error) {
	conf, err := action.loadConfig()
	if err != nil {
		return nil, err
	}
	betStart, ok := action.loadBetStart()
	if !ok {
		return nil, rt.ErrGameNotStarted
	}
	if action.blocktime-conf.GetTimeout() < betStart {
		rlog.Error("Cancel", "from", action.fromaddr, "blocktime", action.blocktime, "betStart", betStart, "err", rt.ErrLimitNotReached)
		return nil, rt.ErrLimitNotReached
	}
	one, ok1 := action.loadPlayer(rt.SlotOne)
	two, ok2 := action.loadPlayer(rt.SlotTwo)
	if !ok1 || !ok2 {
		return nil, rt.ErrInvalidOp
	}
	oneRevealed := one.GetMove() != rt.Unrevealed
	twoRevealed := two.GetMove() != rt.Unrevealed
	if oneRevealed == twoRevealed {
		rlog.Error("Cancel", "from", action.fromaddr, "oneRevealed", oneRevealed, "twoRevealed", twoRevealed, "err", rt.ErrLimitNotReached)
		return nil, rt.ErrLimitNotReached
	}
	winner, slot := one, rt.SlotOne
	if twoRevealed {
		winner, slot = two, rt.SlotTwo
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if conf.GetWager() > 0 {
		ledger, err := action.ledger(conf)
		if err != nil {
			return nil, err
		}
		receiptTransfer, err := ledger.Transfer(action.execaddr, winner.GetAddr(), 2*conf.GetWager())
		if err != nil {
			rlog.Error("Cancel.Transfer", "execaddr", action.execaddr, "to", winner.GetAddr(), "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, receiptTransfer)
	}
	receipt.KV = append(receipt.KV, action.clear()...)
	receipt.Logs = append(receipt.Logs, action.receiptLog(rt.TyLogRPSCancel,
		&rt.ReceiptRPS{Addr: winner.GetAddr(), Slot: slot, Move: winner.GetMove(), BetStart: betStart}))
	return receipt, nil
}
