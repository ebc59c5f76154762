// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//rps action ty
const (
	RPSActionInit = iota + 1
	RPSActionCommit
	RPSActionReveal
	RPSActionEvaluate
	RPSActionCancel
)

//log ty
const (
	TyLogRPSInit     = 801
	TyLogRPSCommit   = 802
	TyLogRPSReveal   = 803
	TyLogRPSEvaluate = 804
	TyLogRPSCancel   = 805
)

const (
	//RPSX 执行器名称
	RPSX = "rps"
	//FuncNameGetGame 查询当前对局
	FuncNameGetGame = "GetGame"
)

//出拳, Unrevealed 表示已经提交但还没有公开
const (
	Rock       = int32(0)
	Paper      = int32(1)
	Scissors   = int32(2)
	Unrevealed = int32(3)
)

//玩家位置
const (
	SlotOne = int32(1)
	SlotTwo = int32(2)
)

//结果类型
const (
	ResultWin  = int32(1)
	ResultDraw = int32(2)
)

//hash 算法
const (
	HashTypeSha256    = "sha256"
	HashTypeKeccak256 = "keccak256"
)

//DigestLen 提交的 hash 长度
const DigestLen = 32

var (
	//ExecerRPS rps execer
	ExecerRPS = []byte(RPSX)
)
