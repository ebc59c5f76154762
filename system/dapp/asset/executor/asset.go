// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
asset 是资产账本的执行器。

主要提供两种操作：
Transfer -> 转移资产
Approve  -> 授权其他地址(一般是执行器托管地址)转走自己的资产
*/

import (
	"github.com/33cn/rps/common/address"
	drivers "github.com/33cn/rps/system/dapp"
	aty "github.com/33cn/rps/system/dapp/asset/types"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "execs.asset")

var driverName = aty.AssetX

//Init 注册执行器
func Init(name string, cfg *types.Config) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newAsset, 0)
}

//GetName 执行器名称
func GetName() string {
	return newAsset().GetName()
}

//Asset 资产执行器
type Asset struct {
	drivers.DriverBase
}

func newAsset() drivers.Driver {
	c := &Asset{}
	c.SetChild(c)
	return c
}

//GetDriverName 驱动名称
func (c *Asset) GetDriverName() string {
	return driverName
}

//Exec 执行交易
func (c *Asset) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action aty.AssetAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	alog.Debug("exec asset tx", "action", action.String())
	if action.Ty == aty.AssetActionTransfer && action.GetTransfer() != nil {
		return c.execTransfer(action.GetTransfer(), tx)
	} else if action.Ty == aty.AssetActionApprove && action.GetApprove() != nil {
		return c.execApprove(action.GetApprove(), tx)
	}
	//return error
	return nil, types.ErrActionNotSupport
}

//CheckTx 检查地址格式, 不允许直接转账到执行器地址
func (c *Asset) CheckTx(tx *types.Transaction, index int) error {
	var action aty.AssetAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return err
	}
	switch {
	case action.GetTransfer() != nil:
		to := action.GetTransfer().GetTo()
		if err := address.CheckAddress(to); err != nil {
			return types.ErrInvalidAddress
		}
		//执行器托管地址没有私钥, 直接转入的资产无法再转出
		if drivers.IsDriverAddress(to, -1) {
			alog.Error("CheckTx", "to", to, "err", "transfer to driver address")
			return types.ErrInvalidAddress
		}
	case action.GetApprove() != nil:
		if err := address.CheckAddress(action.GetApprove().GetSpender()); err != nil {
			return types.ErrInvalidAddress
		}
	default:
		return types.ErrActionNotSupport
	}
	return nil
}
