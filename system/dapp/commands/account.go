// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统 dapp 的命令行
package commands

import (
	"github.com/33cn/rps/client"
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	aty "github.com/33cn/rps/system/dapp/asset/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GenKeyCmd(),
		GetBalanceCmd(),
		ListAccountsCmd(),
		PubKeyToAddrCmd(),
	)

	return cmd
}

// GenKeyCmd 生成新的私钥
func GenKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a new secp256k1 private key",
		Run:   genKey,
	}
	return cmd
}

func genKey(cmd *cobra.Command, args []string) {
	priv, err := client.GenKey()
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	pub := priv.PubKey().Bytes()
	commandtypes.PrintJSON(cmd, &commandtypes.KeyResult{
		PrivKey: common.ToHex(priv.Bytes()),
		PubKey:  common.ToHex(pub),
		Addr:    address.PubKeyToAddress(pub).String(),
	})
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	symbol, _ := cmd.Flags().GetString("symbol")
	if err := address.CheckAddress(addr); err != nil {
		commandtypes.PrintErr(cmd, types.ErrInvalidAddress)
		return
	}
	params := &types.ReqBalance{Symbol: symbol, Addrs: []string{addr}}
	commandtypes.Query(cmd, aty.AssetX, aty.FuncNameGetBalance, params, func(reply types.Message) interface{} {
		var result []*commandtypes.AccountResult
		for _, acc := range reply.(*types.Accounts).GetAccs() {
			result = append(result, &commandtypes.AccountResult{
				Symbol:  symbol,
				Addr:    acc.GetAddr(),
				Balance: commandtypes.FormatAmountValue2Display(acc.GetBalance()),
			})
		}
		return result
	})
}

// ListAccountsCmd 列出某个资产的全部账户
func ListAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts of an asset",
		Run:   listAccounts,
	}
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
	return cmd
}

func listAccounts(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	c, err := commandtypes.NewClient(cmd)
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	defer c.Close()
	accs, err := c.ListAccounts(symbol)
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	result := make([]*commandtypes.AccountResult, 0, len(accs))
	for _, acc := range accs {
		result = append(result, &commandtypes.AccountResult{
			Symbol:  symbol,
			Addr:    acc.GetAddr(),
			Balance: commandtypes.FormatAmountValue2Display(acc.GetBalance()),
		})
	}
	commandtypes.PrintJSON(cmd, result)
}

// PubKeyToAddrCmd get address of a public key
func PubKeyToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey_addr",
		Short: "Convert public key to address",
		Run:   pubKeyToAddr,
	}
	cmd.Flags().StringP("pubkey", "p", "", "public key")
	cmd.MarkFlagRequired("pubkey")
	return cmd
}

func pubKeyToAddr(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("pubkey")
	pub, err := common.FromHex(key)
	if err != nil || len(pub) == 0 {
		commandtypes.PrintErr(cmd, types.ErrInvalidParam)
		return
	}
	commandtypes.PrintJSON(cmd, address.PubKeyToAddress(pub).String())
}
