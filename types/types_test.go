// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto/secp256k1"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorsCause(err error) error {
	return errors.Cause(err)
}

func TestEncodeDecode(t *testing.T) {
	receipt := &Receipt{
		Ty: ExecOk,
		KV: []*KeyValue{{Key: []byte("mavl-asset-bty-addr"), Value: Encode(&Account{Balance: 10, Addr: "addr"})}},
		Logs: []*ReceiptLog{
			{Ty: TyLogTransfer, Log: Encode(&ReceiptAccountTransfer{Prev: &Account{Addr: "addr"}, Current: &Account{Balance: 10, Addr: "addr"}})},
		},
	}
	var decoded Receipt
	require.NoError(t, Decode(Encode(receipt), &decoded))
	assert.Equal(t, int32(ExecOk), decoded.GetTy())
	require.Len(t, decoded.GetKV(), 1)

	var acc Account
	require.NoError(t, Decode(decoded.KV[0].Value, &acc))
	assert.Equal(t, int64(10), acc.GetBalance())
	assert.Equal(t, "addr", acc.GetAddr())

	var transfer ReceiptAccountTransfer
	require.NoError(t, Decode(decoded.Logs[0].Log, &transfer))
	assert.Equal(t, int64(0), transfer.GetPrev().GetBalance())
	assert.Equal(t, int64(10), transfer.GetCurrent().GetBalance())

	var nilAcc *Account
	assert.Equal(t, int64(0), nilAcc.GetBalance())
	assert.Equal(t, "", nilAcc.GetAddr())
}

func TestCheckAmount(t *testing.T) {
	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(-1))
	assert.False(t, CheckAmount(MaxCoin))
	assert.True(t, CheckAmount(1))
}

func TestMergeReceipt(t *testing.T) {
	r1 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("a")}}}
	r2 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("b")}}, Logs: []*ReceiptLog{{Ty: TyLogTransfer}}}
	merged := MergeReceipt(r1, r2)
	assert.Len(t, merged.KV, 2)
	assert.Len(t, merged.Logs, 1)
	assert.Equal(t, r2, MergeReceipt(nil, r2))
	assert.Equal(t, r1, MergeReceipt(r1, nil))
}

func TestTxSign(t *testing.T) {
	priv, err := secp256k1.Driver{}.GenKey()
	require.NoError(t, err)

	tx := CreateTx("rps", &Int64{Data: 1})
	assert.Equal(t, address.ExecAddress("rps"), tx.To)
	assert.Equal(t, ErrNoSignature, tx.Check())

	hash := tx.Hash()
	tx.Sign(SignatureType, priv)
	assert.True(t, tx.CheckSign())
	assert.NoError(t, tx.Check())
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, address.PubKeyToAddress(priv.PubKey().Bytes()).String(), tx.From())

	tx.Payload = Encode(&Int64{Data: 2})
	assert.False(t, tx.CheckSign())
	assert.Equal(t, ErrSign, tx.Check())

	tx2 := CreateTx("rps", &Int64{Data: 1})
	assert.NotEqual(t, hash, tx2.Hash())
}
