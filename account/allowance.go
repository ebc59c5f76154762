// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rps/types"
)

//LoadAllowance 读取授权额度
func (acc *DB) LoadAllowance(owner, spender string) *types.Allowance {
	value, err := acc.db.Get(acc.AllowanceKey(owner, spender))
	if err != nil {
		return &types.Allowance{Owner: owner, Spender: spender}
	}
	var allow types.Allowance
	err = types.Decode(value, &allow)
	if err != nil {
		panic(err)
	}
	return &allow
}

func (acc *DB) saveAllowance(allow *types.Allowance) *types.KeyValue {
	kv := &types.KeyValue{Key: acc.AllowanceKey(allow.Owner, allow.Spender), Value: types.Encode(allow)}
	if allow.Amount == 0 {
		kv.Value = nil
	}
	err := acc.db.Set(kv.Key, kv.Value)
	if err != nil {
		panic(err)
	}
	return kv
}

func (acc *DB) allowanceReceipt(prev, current *types.Allowance, kv *types.KeyValue) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogApprove,
		Log: types.Encode(&types.ReceiptAllowance{Prev: prev, Current: current}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{log1},
	}
}

//Approve 设置 owner 给 spender 的授权额度, amount 为 0 表示取消授权
func (acc *DB) Approve(owner, spender string, amount int64) (*types.Receipt, error) {
	if amount < 0 || amount >= types.MaxCoin {
		return nil, types.ErrAmount
	}
	if owner == spender {
		return nil, types.ErrSendSameToRecv
	}
	allow := acc.LoadAllowance(owner, spender)
	prev := *allow
	allow.Amount = amount
	kv := acc.saveAllowance(allow)
	alog.Debug("Approve", "symbol", acc.symbol, "owner", owner, "spender", spender, "amount", amount)
	return acc.allowanceReceipt(&prev, allow, kv), nil
}

//TransferFrom spender 使用 owner 的授权额度, 把 owner 的资产转给 to
func (acc *DB) TransferFrom(spender, owner, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	allow := acc.LoadAllowance(owner, spender)
	if allow.GetAmount() < amount {
		alog.Error("TransferFrom", "owner", owner, "spender", spender, "allowance", allow.GetAmount(), "amount", amount)
		return nil, types.ErrNoAllowance
	}
	receipt, err := acc.Transfer(owner, to, amount)
	if err != nil {
		return nil, err
	}
	prev := *allow
	allow.Amount -= amount
	kv := acc.saveAllowance(allow)
	return types.MergeReceipt(receipt, acc.allowanceReceipt(&prev, allow, kv)), nil
}
