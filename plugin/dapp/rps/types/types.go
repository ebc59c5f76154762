// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rps 执行器的数据结构, 交易构造以及提交 hash 的计算
package types

import (
	"strings"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
)

var moveNames = map[int32]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

//MoveBytes 计算提交 hash 时出拳对应的固定字节
func MoveBytes(move int32) ([]byte, bool) {
	switch move {
	case Rock:
		return []byte("Rock"), true
	case Paper:
		return []byte("Paper"), true
	case Scissors:
		return []byte("Scissors"), true
	}
	return nil, false
}

//IsConcreteMove Rock / Paper / Scissors
func IsConcreteMove(move int32) bool {
	_, ok := MoveBytes(move)
	return ok
}

//MoveName 出拳名称, 命令行显示使用
func MoveName(move int32) string {
	if name, ok := moveNames[move]; ok {
		return name
	}
	return "Unrevealed"
}

//ParseMove 不区分大小写
func ParseMove(name string) (int32, error) {
	for move, n := range moveNames {
		if strings.EqualFold(n, name) {
			return move, nil
		}
	}
	return Unrevealed, ErrInvalidOp
}

//HashFunc 根据名称选择 hash 算法, 空字符串默认 sha256
func HashFunc(name string) (func([]byte) []byte, error) {
	switch name {
	case "", HashTypeSha256:
		return common.Sha256, nil
	case HashTypeKeccak256:
		return common.ShaKeccak256, nil
	}
	return nil, ErrHashType
}

//CommitDigest hash(addr || moveBytes || secret)
func CommitDigest(addr string, move int32, secret []byte, hashType string) ([]byte, error) {
	moveBytes, ok := MoveBytes(move)
	if !ok {
		return nil, ErrInvalidOp
	}
	hash, err := HashFunc(hashType)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(addr)+len(moveBytes)+len(secret))
	data = append(data, []byte(addr)...)
	data = append(data, moveBytes...)
	data = append(data, secret...)
	return hash(data), nil
}

//CreateInitTx 初始化对局配置
func CreateInitTx(asset string, wager, timeout int64, hashType string) *types.Transaction {
	action := &RPSAction{
		Ty:   RPSActionInit,
		Init: &RPSInit{Asset: asset, Wager: wager, Timeout: timeout, HashType: hashType},
	}
	return types.CreateTx(RPSX, action)
}

//CreateCommitTx 提交出拳 hash, 需要 player 自己签名
func CreateCommitTx(player string, digest []byte) *types.Transaction {
	action := &RPSAction{
		Ty:     RPSActionCommit,
		Commit: &RPSCommit{Player: player, Digest: digest},
	}
	return types.CreateTx(RPSX, action)
}

//CreateRevealTx 公开出拳
func CreateRevealTx(slot, move int32, secret []byte) *types.Transaction {
	action := &RPSAction{
		Ty:     RPSActionReveal,
		Reveal: &RPSReveal{Slot: slot, Move: move, Secret: secret},
	}
	return types.CreateTx(RPSX, action)
}

//CreateEvaluateTx 开奖
func CreateEvaluateTx() *types.Transaction {
	return types.CreateTx(RPSX, &RPSAction{Ty: RPSActionEvaluate})
}

//CreateCancelTx 超时取消
func CreateCancelTx() *types.Transaction {
	return types.CreateTx(RPSX, &RPSAction{Ty: RPSActionCancel})
}
