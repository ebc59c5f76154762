// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/golang/protobuf/proto"
)

//Message 消息接口
type Message proto.Message

//Encode 编码, 失败直接 panic
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//PBToJSON 转成缩进的 json, 命令行输出使用
func PBToJSON(msg interface{}) (string, error) {
	data, err := json.MarshalIndent(msg, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

//CheckAmount 检查金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

//MergeReceipt 合并两个 receipt, receipt2 的 kv 和日志追加在后面
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt1
	}
	if receipt1 == nil {
		return receipt2
	}
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	return receipt1
}
