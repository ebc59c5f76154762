// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	aty "github.com/33cn/rps/system/dapp/asset/types"
	"github.com/33cn/rps/types"
)

//Query 查询余额以及授权额度
func (c *Asset) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case aty.FuncNameGetBalance:
		var in types.ReqBalance
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		return c.getBalance(&in)
	case aty.FuncNameGetAllowance:
		var in aty.ReqAllowance
		if err := types.Decode(params, &in); err != nil {
			return nil, err
		}
		return c.getAllowance(&in)
	}
	return nil, types.ErrQueryNotSupport
}

func (c *Asset) getBalance(in *types.ReqBalance) (types.Message, error) {
	if len(in.Addrs) == 0 {
		return nil, types.ErrInvalidParam
	}
	acc, err := c.GetAssetAccount(in.Symbol)
	if err != nil {
		return nil, err
	}
	return &types.Accounts{Accs: acc.LoadAccounts(in.Addrs)}, nil
}

func (c *Asset) getAllowance(in *aty.ReqAllowance) (types.Message, error) {
	acc, err := c.GetAssetAccount(in.Symbol)
	if err != nil {
		return nil, err
	}
	return acc.LoadAllowance(in.Owner, in.Spender), nil
}
