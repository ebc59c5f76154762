// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

//Query 查询当前对局
func (r *RPS) Query(funcName string, params []byte) (types.Message, error) {
	if funcName == rt.FuncNameGetGame {
		return r.getGame(), nil
	}
	return nil, types.ErrQueryNotSupport
}

func (r *RPS) getGame() *rt.RPSGameView {
	action := &Action{db: r.GetStateDB(), execaddr: r.GetExecAddr()}
	view := &rt.RPSGameView{CustodyAddr: action.execaddr}
	if conf, err := action.loadConfig(); err == nil {
		view.Config = conf
	}
	view.Player1, _ = action.loadPlayer(rt.SlotOne)
	view.Player2, _ = action.loadPlayer(rt.SlotTwo)
	view.BetStart, _ = action.loadBetStart()
	return view
}
