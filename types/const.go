// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin      int64 = 1e8
	MaxCoin   int64 = 1e17
	MaxTxSize       = 100000 //100K
)

//执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//资产相关的日志类型
const (
	TyLogErr      = 1
	TyLogTransfer = 2
	TyLogGenesis  = 3
	TyLogApprove  = 4
)

//状态数据 key 前缀
const (
	StatePrefix = "mavl-"
	TxHashKey   = "TxHash-"
)

//SignatureType 交易签名类型, 目前只有 secp256k1
const SignatureType = 1
