// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 资产账户操作
*/
package account

//package for account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Approve / TransferFrom
//6. Account balance query

import (
	"bytes"
	"strings"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db                 dbm.KVDB
	accountKeyPerfix   []byte
	allowanceKeyPerfix []byte
	symbol             string
}

//SymbolPrefix 资产账户 key 前缀
func SymbolPrefix(symbol string) string {
	return "mavl-asset-" + symbol + "-"
}

//NewAccountDB 某个资产的账户数据库, db 可以后面再设置
func NewAccountDB(symbol string, db dbm.KVDB) (*DB, error) {
	//如果 symbol 中存在 "-", 那么创建失败
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	prefix := SymbolPrefix(symbol)
	acc := &DB{
		accountKeyPerfix:   []byte(prefix),
		allowanceKeyPerfix: []byte(prefix + "allow-"),
		symbol:             symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

//SetDB set db
func (acc *DB) SetDB(db dbm.KVDB) *DB {
	acc.db = db
	return acc
}

//Symbol 资产名称
func (acc *DB) Symbol() string {
	return acc.symbol
}

//AccountKey 账户 key
func (acc *DB) AccountKey(addr string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(addr)...)
	return key
}

//AllowanceKey 授权 key
func (acc *DB) AllowanceKey(owner, spender string) (key []byte) {
	key = append(key, acc.allowanceKeyPerfix...)
	key = append(key, []byte(owner)...)
	key = append(key, '-')
	key = append(key, []byte(spender)...)
	return key
}

//LoadAccount 读取账户, 不存在时返回余额为 0 的账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

//ListAccounts 遍历某个资产的全部账户, 授权记录不在结果中
func ListAccounts(db dbm.IteratorDB, symbol string) ([]*types.Account, error) {
	acc, err := NewAccountDB(symbol, nil)
	if err != nil {
		return nil, err
	}
	var accs []*types.Account
	var derr error
	err = dbm.NewListHelper(db).IteratorCallback(acc.accountKeyPerfix, 0, dbm.ListASC, func(key, value []byte) bool {
		if bytes.HasPrefix(key, acc.allowanceKeyPerfix) {
			return false
		}
		var acc1 types.Account
		if derr = types.Decode(value, &acc1); derr != nil {
			return true
		}
		accs = append(accs, &acc1)
		return false
	})
	if derr != nil {
		return nil, derr
	}
	return accs, err
}

//LoadAccounts 批量读取
func (acc *DB) LoadAccounts(addrs []string) (accs []*types.Account) {
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

//CheckTransfer 检查余额是否足够
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.GetBalance()-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer 转账
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance = accFrom.GetBalance() - amount
	toBalance, err := safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	accTo.Balance = toBalance

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	alog.Debug("Transfer", "symbol", acc.symbol, "from", from, "to", to, "amount", amount)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

//SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].GetKey(), set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

//GetKVSet 账户对应的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}
