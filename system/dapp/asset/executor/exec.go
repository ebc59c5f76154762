// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	aty "github.com/33cn/rps/system/dapp/asset/types"
	"github.com/33cn/rps/types"
)

func (c *Asset) execTransfer(transfer *aty.AssetTransfer, tx *types.Transaction) (*types.Receipt, error) {
	acc, err := c.GetAssetAccount(transfer.Symbol)
	if err != nil {
		return nil, err
	}
	return acc.Transfer(tx.From(), transfer.To, transfer.Amount)
}

func (c *Asset) execApprove(approve *aty.AssetApprove, tx *types.Transaction) (*types.Receipt, error) {
	acc, err := c.GetAssetAccount(approve.Symbol)
	if err != nil {
		return nil, err
	}
	return acc.Approve(tx.From(), approve.Spender, approve.Amount)
}
