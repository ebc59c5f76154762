// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"sync"

	"github.com/33cn/rps/client"
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// LogDecoder 日志解码
type LogDecoder struct {
	Name   string
	Decode func(log []byte) (interface{}, error)
}

var (
	logMu       sync.RWMutex
	logDecoders = make(map[int32]*LogDecoder)
)

// RegisterLogDecoder 注册回执日志的解码方法, 每个 dapp 注册自己的日志类型
func RegisterLogDecoder(ty int32, name string, decode func(log []byte) (interface{}, error)) {
	logMu.Lock()
	defer logMu.Unlock()
	logDecoders[ty] = &LogDecoder{Name: name, Decode: decode}
}

func init() {
	transfer := func(log []byte) (interface{}, error) {
		var r types.ReceiptAccountTransfer
		err := types.Decode(log, &r)
		return &r, err
	}
	RegisterLogDecoder(types.TyLogTransfer, "LogTransfer", transfer)
	RegisterLogDecoder(types.TyLogGenesis, "LogGenesis", transfer)
	RegisterLogDecoder(types.TyLogApprove, "LogApprove", func(log []byte) (interface{}, error) {
		var r types.ReceiptAllowance
		err := types.Decode(log, &r)
		return &r, err
	})
}

// DecodeReceipt 把回执转换成命令行输出
func DecodeReceipt(hash []byte, height int64, receipt *types.Receipt) *ReceiptResult {
	result := &ReceiptResult{
		Hash:   common.ToHex(hash),
		Height: height,
		Ty:     receipt.GetTy(),
		KVs:    len(receipt.GetKV()),
	}
	logMu.RLock()
	defer logMu.RUnlock()
	for _, l := range receipt.GetLogs() {
		item := &ReceiptLogResult{Ty: l.Ty}
		if d, ok := logDecoders[l.Ty]; ok {
			item.TyName = d.Name
			if v, err := d.Decode(l.Log); err == nil {
				item.Log = v
			}
		}
		if item.Log == nil {
			item.RawLog = common.ToHex(l.Log)
		}
		result.Logs = append(result.Logs, item)
	}
	return result
}

// FormatAmountValue2Display 将传输、计算的amount值格式化成显示值
func FormatAmountValue2Display(amount int64) string {
	return decimal.New(amount, -8).StringFixed(4)
}

// FormatAmountDisplay2Value 将显示、输入的amount值格式化成传输、计算值, 最多 8 位小数
func FormatAmountDisplay2Value(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrap(err, "parse amount")
	}
	v := d.Mul(decimal.New(1, 8))
	if !v.Equal(v.Truncate(0)) {
		return 0, errors.Wrapf(types.ErrAmount, "too many decimals %s", amount)
	}
	if v.Sign() < 0 || v.Cmp(decimal.New(types.MaxCoin, 0)) >= 0 {
		return 0, errors.Wrapf(types.ErrAmount, "out of range %s", amount)
	}
	return v.IntPart(), nil
}

// GetAmountValue 将命令行中的amount值转换成int64
func GetAmountValue(cmd *cobra.Command, field string) (int64, error) {
	amount, _ := cmd.Flags().GetString(field)
	return FormatAmountDisplay2Value(amount)
}

// NewClient 使用 --conf 指定的配置打开本地节点, 没有指定时使用内存数据库
func NewClient(cmd *cobra.Command) (*client.Local, error) {
	path, _ := cmd.Flags().GetString("conf")
	cfg := types.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = types.LoadCfg(path)
		if err != nil {
			return nil, err
		}
	}
	return client.New(cfg, nil)
}

// GetPrivKey --key 指定的私钥
func GetPrivKey(cmd *cobra.Command) (crypto.PrivKey, error) {
	key, _ := cmd.Flags().GetString("key")
	if key == "" {
		return nil, errors.Wrap(types.ErrNoSignature, "--key is required")
	}
	return client.LoadPrivKey(key)
}

// SendTx 签名, 执行并输出回执
func SendTx(cmd *cobra.Command, tx *types.Transaction) {
	priv, err := GetPrivKey(cmd)
	if err != nil {
		PrintErr(cmd, err)
		return
	}
	c, err := NewClient(cmd)
	if err != nil {
		PrintErr(cmd, err)
		return
	}
	defer c.Close()
	receipt, err := c.SendTx(tx, priv)
	if err != nil {
		PrintErr(cmd, err)
		return
	}
	PrintJSON(cmd, DecodeReceipt(tx.Hash(), c.Height(), receipt))
}

// Query 执行查询并输出, convert 为 nil 时直接输出查询结果
func Query(cmd *cobra.Command, execer, funcName string, param types.Message, convert func(types.Message) interface{}) {
	c, err := NewClient(cmd)
	if err != nil {
		PrintErr(cmd, err)
		return
	}
	defer c.Close()
	reply, err := c.Query(execer, funcName, param)
	if err != nil {
		PrintErr(cmd, err)
		return
	}
	if convert == nil {
		PrintJSON(cmd, reply)
		return
	}
	PrintJSON(cmd, convert(reply))
}

// PrintJSON 缩进输出 json
func PrintJSON(cmd *cobra.Command, v interface{}) {
	data, err := types.PBToJSON(v)
	if err != nil {
		PrintErr(cmd, err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), data)
}

// PrintErr 输出错误
func PrintErr(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
}
