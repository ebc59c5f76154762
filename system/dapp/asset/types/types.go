// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types asset 执行器的数据结构
package types

import (
	"github.com/33cn/rps/types"
)

//AssetX 执行器名称
const AssetX = "asset"

// action
const (
	AssetActionTransfer = 1
	AssetActionApprove  = 2
)

//查询方法名
const (
	FuncNameGetBalance   = "GetBalance"
	FuncNameGetAllowance = "GetAllowance"
)

//CreateTransferTx 转账交易
func CreateTransferTx(symbol, to string, amount int64, note string) *types.Transaction {
	action := &AssetAction{
		Ty:       AssetActionTransfer,
		Transfer: &AssetTransfer{Symbol: symbol, To: to, Amount: amount, Note: note},
	}
	return types.CreateTx(AssetX, action)
}

//CreateApproveTx 授权交易
func CreateApproveTx(symbol, spender string, amount int64) *types.Transaction {
	action := &AssetAction{
		Ty:      AssetActionApprove,
		Approve: &AssetApprove{Symbol: symbol, Spender: spender, Amount: amount},
	}
	return types.CreateTx(AssetX, action)
}
