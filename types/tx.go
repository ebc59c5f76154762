// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto"
	"github.com/golang/protobuf/proto"
)

//CreateTx 构造未签名交易, nonce 取随机数保证相同 action 的交易 hash 不同
func CreateTx(execer string, action proto.Message) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(action),
		Nonce:   randNonce(),
		To:      address.ExecAddress(execer),
	}
}

func randNonce() int64 {
	return int64(binary.BigEndian.Uint64(crypto.CRandBytes(8)) >> 1)
}

//Hash 交易 hash, 不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

//Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

//Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

//CheckSign 验证交易签名
func (tx *Transaction) CheckSign() bool {
	if tx.GetSignature() == nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	return CheckSign(Encode(&copytx), tx.GetSignature())
}

//CheckSign 验证数据签名
func CheckSign(data []byte, sign *Signature) bool {
	c, err := crypto.New(crypto.GetName(sign.GetTy()))
	if err != nil {
		tlog.Error("CheckSign", "ty", sign.GetTy(), "err", err)
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.GetPubkey())
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.GetSignature())
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}

//Check 交易基本检查: 大小以及签名
func (tx *Transaction) Check() error {
	if tx.Size() > MaxTxSize {
		return ErrTxSize
	}
	if tx.GetSignature() == nil {
		return ErrNoSignature
	}
	if !tx.CheckSign() {
		return ErrSign
	}
	return nil
}

//From 交易发送者地址
func (tx *Transaction) From() string {
	return address.PubKeyToAddress(tx.GetSignature().GetPubkey()).String()
}
