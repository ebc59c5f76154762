// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//RPSAction rps 执行器的 action, evaluate / cancel 只需要 Ty
type RPSAction struct {
	Ty     int32      `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Init   *RPSInit   `protobuf:"bytes,2,opt,name=init,proto3" json:"init,omitempty"`
	Commit *RPSCommit `protobuf:"bytes,3,opt,name=commit,proto3" json:"commit,omitempty"`
	Reveal *RPSReveal `protobuf:"bytes,4,opt,name=reveal,proto3" json:"reveal,omitempty"`
}

func (m *RPSAction) Reset()         { *m = RPSAction{} }
func (m *RPSAction) String() string { return proto.CompactTextString(m) }
func (*RPSAction) ProtoMessage()    {}

func (m *RPSAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *RPSAction) GetInit() *RPSInit {
	if m != nil {
		return m.Init
	}
	return nil
}

func (m *RPSAction) GetCommit() *RPSCommit {
	if m != nil {
		return m.Commit
	}
	return nil
}

func (m *RPSAction) GetReveal() *RPSReveal {
	if m != nil {
		return m.Reveal
	}
	return nil
}

//RPSInit 设置资产, 赌注, 超时时间以及 hash 算法
type RPSInit struct {
	Asset    string `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	Wager    int64  `protobuf:"varint,2,opt,name=wager,proto3" json:"wager,omitempty"`
	Timeout  int64  `protobuf:"varint,3,opt,name=timeout,proto3" json:"timeout,omitempty"`
	HashType string `protobuf:"bytes,4,opt,name=hashType,proto3" json:"hashType,omitempty"`
}

func (m *RPSInit) Reset()         { *m = RPSInit{} }
func (m *RPSInit) String() string { return proto.CompactTextString(m) }
func (*RPSInit) ProtoMessage()    {}

func (m *RPSInit) GetAsset() string {
	if m != nil {
		return m.Asset
	}
	return ""
}

func (m *RPSInit) GetWager() int64 {
	if m != nil {
		return m.Wager
	}
	return 0
}

func (m *RPSInit) GetTimeout() int64 {
	if m != nil {
		return m.Timeout
	}
	return 0
}

func (m *RPSInit) GetHashType() string {
	if m != nil {
		return m.HashType
	}
	return ""
}

type RPSCommit struct {
	Player string `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	Digest []byte `protobuf:"bytes,2,opt,name=digest,proto3" json:"digest,omitempty"`
}

func (m *RPSCommit) Reset()         { *m = RPSCommit{} }
func (m *RPSCommit) String() string { return proto.CompactTextString(m) }
func (*RPSCommit) ProtoMessage()    {}

func (m *RPSCommit) GetPlayer() string {
	if m != nil {
		return m.Player
	}
	return ""
}

func (m *RPSCommit) GetDigest() []byte {
	if m != nil {
		return m.Digest
	}
	return nil
}

type RPSReveal struct {
	Slot   int32  `protobuf:"varint,1,opt,name=slot,proto3" json:"slot,omitempty"`
	Move   int32  `protobuf:"varint,2,opt,name=move,proto3" json:"move,omitempty"`
	Secret []byte `protobuf:"bytes,3,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *RPSReveal) Reset()         { *m = RPSReveal{} }
func (m *RPSReveal) String() string { return proto.CompactTextString(m) }
func (*RPSReveal) ProtoMessage()    {}

func (m *RPSReveal) GetSlot() int32 {
	if m != nil {
		return m.Slot
	}
	return 0
}

func (m *RPSReveal) GetMove() int32 {
	if m != nil {
		return m.Move
	}
	return 0
}

func (m *RPSReveal) GetSecret() []byte {
	if m != nil {
		return m.Secret
	}
	return nil
}

//RPSConfig 初始化之后不再改变
type RPSConfig struct {
	Asset    string `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	Wager    int64  `protobuf:"varint,2,opt,name=wager,proto3" json:"wager,omitempty"`
	Timeout  int64  `protobuf:"varint,3,opt,name=timeout,proto3" json:"timeout,omitempty"`
	HashType string `protobuf:"bytes,4,opt,name=hashType,proto3" json:"hashType,omitempty"`
}

func (m *RPSConfig) Reset()         { *m = RPSConfig{} }
func (m *RPSConfig) String() string { return proto.CompactTextString(m) }
func (*RPSConfig) ProtoMessage()    {}

func (m *RPSConfig) GetAsset() string {
	if m != nil {
		return m.Asset
	}
	return ""
}

func (m *RPSConfig) GetWager() int64 {
	if m != nil {
		return m.Wager
	}
	return 0
}

func (m *RPSConfig) GetTimeout() int64 {
	if m != nil {
		return m.Timeout
	}
	return 0
}

func (m *RPSConfig) GetHashType() string {
	if m != nil {
		return m.HashType
	}
	return ""
}

//PlayerRecord 玩家位置上的记录
type PlayerRecord struct {
	Addr   string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Digest []byte `protobuf:"bytes,2,opt,name=digest,proto3" json:"digest,omitempty"`
	Move   int32  `protobuf:"varint,3,opt,name=move,proto3" json:"move,omitempty"`
}

func (m *PlayerRecord) Reset()         { *m = PlayerRecord{} }
func (m *PlayerRecord) String() string { return proto.CompactTextString(m) }
func (*PlayerRecord) ProtoMessage()    {}

func (m *PlayerRecord) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *PlayerRecord) GetDigest() []byte {
	if m != nil {
		return m.Digest
	}
	return nil
}

func (m *PlayerRecord) GetMove() int32 {
	if m != nil {
		return m.Move
	}
	return 0
}

//GameResult Kind 为 ResultWin 时 Winner 是获胜的位置
type GameResult struct {
	Kind   int32 `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Winner int32 `protobuf:"varint,2,opt,name=winner,proto3" json:"winner,omitempty"`
}

func (m *GameResult) Reset()         { *m = GameResult{} }
func (m *GameResult) String() string { return proto.CompactTextString(m) }
func (*GameResult) ProtoMessage()    {}

func (m *GameResult) GetKind() int32 {
	if m != nil {
		return m.Kind
	}
	return 0
}

func (m *GameResult) GetWinner() int32 {
	if m != nil {
		return m.Winner
	}
	return 0
}

//ReceiptRPS rps 的日志, 不同的日志类型使用不同的字段
type ReceiptRPS struct {
	Addr     string      `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Slot     int32       `protobuf:"varint,2,opt,name=slot,proto3" json:"slot,omitempty"`
	Move     int32       `protobuf:"varint,3,opt,name=move,proto3" json:"move,omitempty"`
	Config   *RPSConfig  `protobuf:"bytes,4,opt,name=config,proto3" json:"config,omitempty"`
	Result   *GameResult `protobuf:"bytes,5,opt,name=result,proto3" json:"result,omitempty"`
	BetStart int64       `protobuf:"varint,6,opt,name=betStart,proto3" json:"betStart,omitempty"`
}

func (m *ReceiptRPS) Reset()         { *m = ReceiptRPS{} }
func (m *ReceiptRPS) String() string { return proto.CompactTextString(m) }
func (*ReceiptRPS) ProtoMessage()    {}

func (m *ReceiptRPS) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReceiptRPS) GetSlot() int32 {
	if m != nil {
		return m.Slot
	}
	return 0
}

func (m *ReceiptRPS) GetMove() int32 {
	if m != nil {
		return m.Move
	}
	return 0
}

func (m *ReceiptRPS) GetConfig() *RPSConfig {
	if m != nil {
		return m.Config
	}
	return nil
}

func (m *ReceiptRPS) GetResult() *GameResult {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *ReceiptRPS) GetBetStart() int64 {
	if m != nil {
		return m.BetStart
	}
	return 0
}

//RPSGameView 当前对局的只读视图
type RPSGameView struct {
	Config      *RPSConfig    `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	Player1     *PlayerRecord `protobuf:"bytes,2,opt,name=player1,proto3" json:"player1,omitempty"`
	Player2     *PlayerRecord `protobuf:"bytes,3,opt,name=player2,proto3" json:"player2,omitempty"`
	BetStart    int64         `protobuf:"varint,4,opt,name=betStart,proto3" json:"betStart,omitempty"`
	CustodyAddr string        `protobuf:"bytes,5,opt,name=custodyAddr,proto3" json:"custodyAddr,omitempty"`
}

func (m *RPSGameView) Reset()         { *m = RPSGameView{} }
func (m *RPSGameView) String() string { return proto.CompactTextString(m) }
func (*RPSGameView) ProtoMessage()    {}

func (m *RPSGameView) GetConfig() *RPSConfig {
	if m != nil {
		return m.Config
	}
	return nil
}

func (m *RPSGameView) GetPlayer1() *PlayerRecord {
	if m != nil {
		return m.Player1
	}
	return nil
}

func (m *RPSGameView) GetPlayer2() *PlayerRecord {
	if m != nil {
		return m.Player2
	}
	return nil
}

func (m *RPSGameView) GetBetStart() int64 {
	if m != nil {
		return m.BetStart
	}
	return 0
}

func (m *RPSGameView) GetCustodyAddr() string {
	if m != nil {
		return m.CustodyAddr
	}
	return ""
}

