// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/types"
)

// LocalAPI 命令行使用的本地节点接口
type LocalAPI interface {
	// 签名并执行交易, 返回执行回执
	SendTx(tx *types.Transaction, priv crypto.PrivKey) (*types.Receipt, error)
	// 执行器只读查询
	Query(execer, funcName string, param types.Message) (types.Message, error)
	// 某个资产的全部账户
	ListAccounts(symbol string) ([]*types.Account, error)
	// 已经执行成功的交易数
	Height() int64
	Close()
}
