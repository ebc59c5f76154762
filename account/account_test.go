// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr4 = "44ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func GenerAccDb() *DB {
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	acc, _ := NewAccountDB("bty", stroedb)
	return acc
}

func (acc *DB) GenerAccData() {
	account := &types.Account{
		Balance: 1000 * 1e8,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * 1e8
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * 1e8
	account.Addr = addr3
	acc.SaveAccount(account)
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("b-ty", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	_, err = NewAccountDB("", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)

	acc, err := NewAccountDB("bty", nil)
	require.NoError(t, err)
	assert.Equal(t, "bty", acc.Symbol())
	assert.Equal(t, []byte("mavl-asset-bty-"+addr1), acc.AccountKey(addr1))
	assert.Equal(t, []byte("mavl-asset-bty-allow-"+addr1+"-"+addr2), acc.AllowanceKey(addr1, addr2))
}

func TestCheckTransfer(t *testing.T) {
	acc := GenerAccDb()
	acc.GenerAccData()

	require.NoError(t, acc.CheckTransfer(addr1, addr2, 10*1e8))
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer(addr4, addr2, 1))
	assert.Equal(t, types.ErrAmount, acc.CheckTransfer(addr1, addr2, 0))
	assert.Equal(t, types.ErrSendSameToRecv, acc.CheckTransfer(addr1, addr1, 1))
}

func TestTransfer(t *testing.T) {
	acc := GenerAccDb()
	acc.GenerAccData()

	receipt, err := acc.Transfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)

	var log1 types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &log1))
	assert.Equal(t, int64(1000*1e8), log1.Prev.Balance)
	assert.Equal(t, int64(990*1e8), log1.Current.Balance)

	assert.Equal(t, int64(990*1e8), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(910*1e8), acc.LoadAccount(addr2).Balance)

	_, err = acc.Transfer(addr4, addr1, 1)
	assert.Equal(t, types.ErrNoBalance, err)

	accs := acc.LoadAccounts([]string{addr1, addr4})
	require.Len(t, accs, 2)
	assert.Equal(t, int64(0), accs[1].Balance)
	assert.Equal(t, addr4, accs[1].Addr)
}

func TestApproveTransferFrom(t *testing.T) {
	acc := GenerAccDb()
	acc.GenerAccData()

	_, err := acc.TransferFrom(addr4, addr1, addr4, 10)
	assert.Equal(t, types.ErrNoAllowance, err)

	receipt, err := acc.Approve(addr1, addr4, 100)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogApprove), receipt.Logs[0].Ty)
	assert.Equal(t, int64(100), acc.LoadAllowance(addr1, addr4).Amount)

	receipt, err = acc.TransferFrom(addr4, addr1, addr4, 60)
	require.NoError(t, err)
	assert.Len(t, receipt.Logs, 3)
	assert.Equal(t, int64(40), acc.LoadAllowance(addr1, addr4).Amount)
	assert.Equal(t, int64(60), acc.LoadAccount(addr4).Balance)
	assert.Equal(t, int64(1000*1e8-60), acc.LoadAccount(addr1).Balance)

	_, err = acc.TransferFrom(addr4, addr1, addr4, 41)
	assert.Equal(t, types.ErrNoAllowance, err)

	// 额度足够但是余额不足
	_, err = acc.Approve(addr4, addr1, 1000)
	require.NoError(t, err)
	_, err = acc.TransferFrom(addr1, addr4, addr1, 100)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(1000), acc.LoadAllowance(addr4, addr1).Amount)

	_, err = acc.Approve(addr1, addr4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.LoadAllowance(addr1, addr4).Amount)

	_, err = acc.Approve(addr1, addr4, -1)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Approve(addr1, addr1, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestGenesisInit(t *testing.T) {
	acc := GenerAccDb()
	receipt, err := acc.GenesisInit(addr4, 100*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, 100*types.Coin, acc.LoadAccount(addr4).Balance)

	_, err = acc.GenesisInit(addr4, types.MaxCoin-1)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.GenesisInit(addr4, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestListAccounts(t *testing.T) {
	stroedb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	acc, err := NewAccountDB("bty", stroedb)
	require.NoError(t, err)
	acc.GenerAccData()
	_, err = acc.Approve(addr1, addr2, 100)
	require.NoError(t, err)
	other, err := NewAccountDB("ccny", stroedb)
	require.NoError(t, err)
	_, err = other.GenesisInit(addr4, 1)
	require.NoError(t, err)

	accs, err := ListAccounts(stroedb, "bty")
	require.NoError(t, err)
	require.Len(t, accs, 3)
	assert.Equal(t, addr1, accs[0].Addr)
	assert.Equal(t, int64(1000*1e8), accs[0].Balance)
	assert.Equal(t, addr3, accs[2].Addr)

	accs, err = ListAccounts(stroedb, "ccny")
	require.NoError(t, err)
	require.Len(t, accs, 1)
	assert.Equal(t, addr4, accs[0].Addr)

	_, err = ListAccounts(stroedb, "b-ty")
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
}
