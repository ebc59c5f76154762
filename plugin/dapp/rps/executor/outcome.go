// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
)

//Outcome 石头 < 布 < 剪刀 < 石头, 两个参数都必须是已经公开的出拳
func Outcome(moveOne, moveTwo int32) *rt.GameResult {
	if moveOne == moveTwo {
		return &rt.GameResult{Kind: rt.ResultDraw}
	}
	if (moveOne+1)%3 == moveTwo {
		return &rt.GameResult{Kind: rt.ResultWin, Winner: rt.SlotTwo}
	}
	return &rt.GameResult{Kind: rt.ResultWin, Winner: rt.SlotOne}
}
