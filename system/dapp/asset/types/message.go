// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//AssetAction asset 执行器的 action, Ty 决定使用哪个字段
type AssetAction struct {
	Ty       int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer *AssetTransfer `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
	Approve  *AssetApprove  `protobuf:"bytes,3,opt,name=approve,proto3" json:"approve,omitempty"`
}

func (m *AssetAction) Reset()         { *m = AssetAction{} }
func (m *AssetAction) String() string { return proto.CompactTextString(m) }
func (*AssetAction) ProtoMessage()    {}

func (m *AssetAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *AssetAction) GetTransfer() *AssetTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

func (m *AssetAction) GetApprove() *AssetApprove {
	if m != nil {
		return m.Approve
	}
	return nil
}

//AssetTransfer 转账
type AssetTransfer struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	To     string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Note   string `protobuf:"bytes,4,opt,name=note,proto3" json:"note,omitempty"`
}

func (m *AssetTransfer) Reset()         { *m = AssetTransfer{} }
func (m *AssetTransfer) String() string { return proto.CompactTextString(m) }
func (*AssetTransfer) ProtoMessage()    {}

func (m *AssetTransfer) GetSymbol() string {
	if m != nil {
		return m.Symbol
	}
	return ""
}

func (m *AssetTransfer) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

func (m *AssetTransfer) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *AssetTransfer) GetNote() string {
	if m != nil {
		return m.Note
	}
	return ""
}

//AssetApprove 授权 spender 使用自己的资产
type AssetApprove struct {
	Symbol  string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Spender string `protobuf:"bytes,2,opt,name=spender,proto3" json:"spender,omitempty"`
	Amount  int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *AssetApprove) Reset()         { *m = AssetApprove{} }
func (m *AssetApprove) String() string { return proto.CompactTextString(m) }
func (*AssetApprove) ProtoMessage()    {}

func (m *AssetApprove) GetSymbol() string {
	if m != nil {
		return m.Symbol
	}
	return ""
}

func (m *AssetApprove) GetSpender() string {
	if m != nil {
		return m.Spender
	}
	return ""
}

func (m *AssetApprove) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//ReqAllowance 查询授权额度
type ReqAllowance struct {
	Symbol  string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Owner   string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Spender string `protobuf:"bytes,3,opt,name=spender,proto3" json:"spender,omitempty"`
}

func (m *ReqAllowance) Reset()         { *m = ReqAllowance{} }
func (m *ReqAllowance) String() string { return proto.CompactTextString(m) }
func (*ReqAllowance) ProtoMessage()    {}

func (m *ReqAllowance) GetSymbol() string {
	if m != nil {
		return m.Symbol
	}
	return ""
}

func (m *ReqAllowance) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *ReqAllowance) GetSpender() string {
	if m != nil {
		return m.Spender
	}
	return ""
}
