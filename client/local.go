// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
本地节点: 打开状态数据库, 注册执行器, 写入创世分配, 然后直接执行签名交易
没有网络以及共识, 每一笔交易执行成功之后立即落盘
*/
package client

import (
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/crypto"
	dbm "github.com/33cn/rps/common/db"
	clog "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/executor"
	"github.com/33cn/rps/metrics"
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/types"
	"github.com/benbjohnson/clock"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var log = log15.New("module", "client")

var _ LocalAPI = (*Local)(nil)

// Local 本地节点
type Local struct {
	cfg         *types.Config
	db          dbm.DB
	exec        *executor.Executor
	stopMetrics func()
}

// New 根据配置启动本地节点, clk 为 nil 时使用系统时钟
func New(cfg *types.Config, clk clock.Clock) (*Local, error) {
	if cfg == nil {
		return nil, types.ErrInvalidParam
	}
	clog.SetFileLog(cfg.Log)
	pluginmgr.InitExec(cfg)

	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrap(err, "open state db")
	}
	exec := executor.New(cfg, db, clk)
	if err := exec.Genesis(cfg.Genesis); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "genesis")
	}
	l := &Local{
		cfg:         cfg,
		db:          db,
		exec:        exec,
		stopMetrics: metrics.StartMetrics(cfg.Metrics, exec.Registry()),
	}
	log.Debug("New", "title", cfg.Title, "driver", cfg.Store.Driver, "height", exec.Height())
	return l, nil
}

// SendTx 签名并执行
func (l *Local) SendTx(tx *types.Transaction, priv crypto.PrivKey) (*types.Receipt, error) {
	if priv == nil {
		return nil, types.ErrNoSignature
	}
	tx.Sign(types.SignatureType, priv)
	receipt, err := l.exec.ExecTx(tx)
	if err != nil {
		return nil, err
	}
	log.Info("SendTx", "execer", string(tx.Execer), "hash", common.ToHex(tx.Hash()), "from", tx.From())
	return receipt, nil
}

// Query 执行器只读查询
func (l *Local) Query(execer, funcName string, param types.Message) (types.Message, error) {
	return l.exec.Query(execer, funcName, param)
}

// ListAccounts 某个资产的全部账户
func (l *Local) ListAccounts(symbol string) ([]*types.Account, error) {
	return l.exec.ListAccounts(symbol)
}

// Height 已经执行成功的交易数
func (l *Local) Height() int64 {
	return l.exec.Height()
}

// Close 停止指标输出并关闭数据库
func (l *Local) Close() {
	l.stopMetrics()
	l.db.Close()
}

// GenKey 生成新的 secp256k1 私钥
func GenKey() (crypto.PrivKey, error) {
	c, err := crypto.New(crypto.GetName(types.SignatureType))
	if err != nil {
		return nil, err
	}
	return c.GenKey()
}

// LoadPrivKey 从 hex 字符串读取私钥
func LoadPrivKey(key string) (crypto.PrivKey, error) {
	bkey, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(err, "decode private key")
	}
	c, err := crypto.New(crypto.GetName(types.SignatureType))
	if err != nil {
		return nil, err
	}
	priv, err := c.PrivKeyFromBytes(bkey)
	if err != nil {
		return nil, errors.Wrap(err, "private key")
	}
	return priv, nil
}
