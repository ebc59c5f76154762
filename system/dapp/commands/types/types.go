// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult defines account result command
type AccountResult struct {
	Symbol  string `json:"symbol,omitempty"`
	Balance string `json:"balance"`
	Addr    string `json:"addr,omitempty"`
}

// AllowanceResult 授权额度
type AllowanceResult struct {
	Symbol  string `json:"symbol,omitempty"`
	Owner   string `json:"owner,omitempty"`
	Spender string `json:"spender,omitempty"`
	Amount  string `json:"amount"`
}

// KeyResult genkey 的输出
type KeyResult struct {
	PrivKey string `json:"privkey"`
	PubKey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}

// ReceiptLogResult 回执日志, Log 为解码之后的内容
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName,omitempty"`
	Log    interface{} `json:"log,omitempty"`
	RawLog string      `json:"rawLog,omitempty"`
}

// ReceiptResult 交易回执
type ReceiptResult struct {
	Hash   string              `json:"hash"`
	Height int64               `json:"height"`
	Ty     int32               `json:"ty"`
	KVs    int                 `json:"kvs"`
	Logs   []*ReceiptLogResult `json:"logs"`
}
