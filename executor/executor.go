// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行: 验签, 加载执行器驱动, 在内存事务中执行并落盘
package executor

import (
	"sync"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/metrics"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	"github.com/benbjohnson/clock"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

var (
	heightKey  = []byte("Height")
	genesisKey = []byte("mavl-genesis-done")
)

// Executor 本地执行器, 一次只执行一笔交易
type Executor struct {
	mu     sync.Mutex
	db     dbm.DB
	cfg    *types.Config
	clock  clock.Clock
	height int64

	registry go_metrics.Registry
	txOk     go_metrics.Counter
	txFail   go_metrics.Counter
	txTime   go_metrics.Timer
}

// New 新建执行器, clk 为 nil 时使用系统时钟
func New(cfg *types.Config, db dbm.DB, clk clock.Clock) *Executor {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	if clk == nil {
		clk = clock.New()
	}
	r := metrics.NewRegistry(cfg.Metrics)
	exec := &Executor{
		db:       db,
		cfg:      cfg,
		clock:    clk,
		registry: r,
		txOk:     go_metrics.GetOrRegisterCounter("executor/tx/ok", r),
		txFail:   go_metrics.GetOrRegisterCounter("executor/tx/fail", r),
		txTime:   go_metrics.GetOrRegisterTimer("executor/tx/time", r),
	}
	exec.height = exec.loadHeight()
	return exec
}

func (exec *Executor) loadHeight() int64 {
	value, err := exec.db.Get(heightKey)
	if err != nil {
		return 0
	}
	var height types.Int64
	if err := types.Decode(value, &height); err != nil {
		panic(err)
	}
	return height.Data
}

// Height 已经执行成功的交易数
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

// Registry 执行指标
func (exec *Executor) Registry() go_metrics.Registry {
	return exec.registry
}

// Genesis 写入创世分配, 只在第一次启动时执行
func (exec *Executor) Genesis(allocs []*types.Genesis) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if _, err := exec.db.Get(genesisKey); err == nil {
		return nil
	}
	state := NewStateDB(exec.db)
	state.Begin()
	for _, alloc := range allocs {
		acc, err := account.NewAccountDB(alloc.Symbol, state)
		if err != nil {
			state.Rollback()
			return err
		}
		if _, err := acc.GenesisInit(alloc.Addr, alloc.Amount); err != nil {
			state.Rollback()
			elog.Error("Genesis", "symbol", alloc.Symbol, "addr", alloc.Addr, "err", err)
			return err
		}
	}
	if err := state.Set(genesisKey, types.Encode(&types.Int64{Data: int64(len(allocs))})); err != nil {
		state.Rollback()
		return err
	}
	if err := state.Commit(); err != nil {
		return err
	}
	return state.Flush()
}

// ExecTx 执行一笔交易, 失败时该交易的任何写入都不会生效
func (exec *Executor) ExecTx(tx *types.Transaction) (receipt *types.Receipt, err error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()

	start := exec.clock.Now()
	defer func() {
		exec.txTime.Update(exec.clock.Since(start))
		if err != nil {
			exec.txFail.Inc(1)
			elog.Error("ExecTx", "execer", string(tx.GetExecer()), "err", err)
			return
		}
		exec.txOk.Inc(1)
	}()

	if err = tx.Check(); err != nil {
		return nil, err
	}
	if tx.GetTo() != drivers.ExecAddress(string(tx.Execer)) {
		return nil, types.ErrInvalidAddress
	}
	hashKey := calcTxHashKey(tx.Hash())
	if _, e := exec.db.Get(hashKey); e == nil {
		return nil, types.ErrTxDup
	}
	height := exec.height + 1
	driver, err := drivers.LoadDriver(string(tx.Execer), height)
	if err != nil {
		return nil, err
	}
	state := NewStateDB(exec.db)
	driver.SetStateDB(state)
	driver.SetEnv(height, start.Unix())
	driver.SetConfig(exec.cfg)
	if err = driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}

	state.Begin()
	receipt, err = driver.Exec(tx, 0)
	if err != nil {
		state.Rollback()
		return nil, err
	}
	if err = state.Commit(); err != nil {
		return nil, err
	}
	if err = state.Set(hashKey, types.Encode(&types.Int64{Data: height})); err != nil {
		return nil, err
	}
	if err = state.Set(heightKey, types.Encode(&types.Int64{Data: height})); err != nil {
		return nil, err
	}
	if err = state.Flush(); err != nil {
		return nil, err
	}
	exec.height = height
	elog.Debug("ExecTx", "execer", string(tx.Execer), "from", tx.From(), "height", height, "kvs", len(receipt.GetKV()))
	return receipt, nil
}

// Query 执行器只读查询
func (exec *Executor) Query(execer, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()

	driver, err := drivers.LoadDriver(execer, -1)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(NewStateDB(exec.db))
	driver.SetEnv(exec.height, exec.clock.Now().Unix())
	driver.SetConfig(exec.cfg)
	var params []byte
	if param != nil {
		params = types.Encode(param)
	}
	return driver.Query(funcName, params)
}

// ListAccounts 遍历已经落盘的某个资产的全部账户
func (exec *Executor) ListAccounts(symbol string) ([]*types.Account, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return account.ListAccounts(exec.db, symbol)
}

// IsTxExecuted 交易是否已经执行成功
func (exec *Executor) IsTxExecuted(hash []byte) bool {
	_, err := exec.db.Get(calcTxHashKey(hash))
	return err == nil
}

func calcTxHashKey(hash []byte) []byte {
	return append([]byte(types.TxHashKey), hash...)
}
