// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
两个人的石头剪刀布, 赌注托管在 rps 执行器地址上

玩法：

1. init:     设置资产, 赌注, 超时时间 (只能设置一次)
2. commit:   提交 hash(addr + 出拳 + secret), 赌注通过授权转入托管地址
3. reveal:   公开出拳和 secret, 任何人都可以代为公开
4. evaluate: 两个人都公开之后开奖, 赢家拿走 2 * 赌注, 平局各自退回
5. cancel:   第二个人提交之后超过 timeout, 只有一方公开时, 公开的一方拿走 2 * 赌注

开奖或者取消之后清空两个位置, 配置保留, 下一局直接 commit
*/

import (
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "execs.rps")

var driverName = rt.RPSX

//Init 注册执行器
func Init(name string, cfg *types.Config) {
	drivers.Register(GetName(), newRPS, 0)
}

//GetName 执行器名称
func GetName() string {
	return newRPS().GetName()
}

//RPS 执行器
type RPS struct {
	drivers.DriverBase
}

func newRPS() drivers.Driver {
	r := &RPS{}
	r.SetChild(r)
	return r
}

//GetDriverName 驱动名称
func (r *RPS) GetDriverName() string {
	return driverName
}

//CheckTx 检查 action 的结构
func (r *RPS) CheckTx(tx *types.Transaction, index int) error {
	var action rt.RPSAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return err
	}
	switch action.Ty {
	case rt.RPSActionInit:
		if action.GetInit() == nil {
			return types.ErrInvalidParam
		}
	case rt.RPSActionCommit:
		if action.GetCommit() == nil {
			return types.ErrInvalidParam
		}
	case rt.RPSActionReveal:
		if action.GetReveal() == nil {
			return types.ErrInvalidParam
		}
	case rt.RPSActionEvaluate, rt.RPSActionCancel:
	default:
		return types.ErrActionNotSupport
	}
	return nil
}

//Exec 执行交易
func (r *RPS) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action rt.RPSAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	rlog.Debug("exec rps tx", "action", action.String())
	actiondb := NewAction(r, tx)
	if action.Ty == rt.RPSActionInit && action.GetInit() != nil {
		return actiondb.Initialize(action.GetInit())
	} else if action.Ty == rt.RPSActionCommit && action.GetCommit() != nil {
		return actiondb.Commit(action.GetCommit())
	} else if action.Ty == rt.RPSActionReveal && action.GetReveal() != nil {
		return actiondb.Reveal(action.GetReveal())
	} else if action.Ty == rt.RPSActionEvaluate {
		return actiondb.Evaluate()
	} else if action.Ty == rt.RPSActionCancel {
		return actiondb.Cancel()
	}
	return nil, types.ErrActionNotSupport
}
