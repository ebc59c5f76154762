// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的公共接口以及注册
package dapp

import (
	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//Driver 执行器驱动, 每笔交易 load 一个新的实例
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	SetEnv(height, blocktime int64)
	GetHeight() int64
	GetBlockTime() int64
	SetConfig(*types.Config)
	GetConfig() *types.Config
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	Query(funcName string, params []byte) (types.Message, error)
}

//DriverBase 驱动的公共部分, 具体驱动嵌入它并 SetChild
type DriverBase struct {
	statedb   dbm.KV
	height    int64
	blocktime int64
	cfg       *types.Config
	child     Driver
}

//SetChild 设置具体驱动
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

//GetName 执行器名称
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

//GetExecAddr 执行器托管地址
func (d *DriverBase) GetExecAddr() string {
	return ExecAddress(d.GetName())
}

//SetEnv 设置区块环境
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

//GetHeight 区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime 区块时间, 单位秒
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//SetStateDB set db
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
}

//GetStateDB get db
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//SetConfig set config
func (d *DriverBase) SetConfig(cfg *types.Config) {
	d.cfg = cfg
}

//GetConfig 配置, 没有设置时返回默认配置
func (d *DriverBase) GetConfig() *types.Config {
	if d.cfg == nil {
		d.cfg = types.DefaultConfig()
	}
	return d.cfg
}

//GetAssetAccount 某个资产在当前状态上的账户数据库
func (d *DriverBase) GetAssetAccount(symbol string) (*account.DB, error) {
	return account.NewAccountDB(symbol, d.statedb)
}

//CheckTx 默认不做检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

//Exec 默认不支持任何 action
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	blog.Error("Exec", "execer", string(tx.Execer), "err", types.ErrActionNotSupport)
	return nil, types.ErrActionNotSupport
}

//Query 默认不支持查询
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}
