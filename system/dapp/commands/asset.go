// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	aty "github.com/33cn/rps/system/dapp/asset/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// AssetCmd asset command
func AssetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Asset transfer and approve",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TransferCmd(),
		ApproveCmd(),
		AllowanceCmd(),
	)
	return cmd
}

// TransferCmd 转账
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer asset to an address",
		Run:   transfer,
	}
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	symbol, _ := cmd.Flags().GetString("symbol")
	note, _ := cmd.Flags().GetString("note")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	commandtypes.SendTx(cmd, aty.CreateTransferTx(symbol, to, amount, note))
}

// ApproveCmd 授权 spender 转走自己的资产
func ApproveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve spender (usually an executor address) to transfer your asset",
		Run:   approve,
	}
	cmd.Flags().StringP("spender", "p", "", "spender address")
	cmd.MarkFlagRequired("spender")
	cmd.Flags().StringP("amount", "a", "", "allowance amount, 0 to revoke")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
	return cmd
}

func approve(cmd *cobra.Command, args []string) {
	spender, _ := cmd.Flags().GetString("spender")
	symbol, _ := cmd.Flags().GetString("symbol")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	commandtypes.SendTx(cmd, aty.CreateApproveTx(symbol, spender, amount))
}

// AllowanceCmd 查询授权额度
func AllowanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowance",
		Short: "Get allowance of owner to spender",
		Run:   allowance,
	}
	cmd.Flags().StringP("owner", "o", "", "owner address")
	cmd.MarkFlagRequired("owner")
	cmd.Flags().StringP("spender", "p", "", "spender address")
	cmd.MarkFlagRequired("spender")
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
	return cmd
}

func allowance(cmd *cobra.Command, args []string) {
	owner, _ := cmd.Flags().GetString("owner")
	spender, _ := cmd.Flags().GetString("spender")
	symbol, _ := cmd.Flags().GetString("symbol")
	params := &aty.ReqAllowance{Symbol: symbol, Owner: owner, Spender: spender}
	commandtypes.Query(cmd, aty.AssetX, aty.FuncNameGetAllowance, params, func(reply types.Message) interface{} {
		allow := reply.(*types.Allowance)
		return &commandtypes.AllowanceResult{
			Symbol:  symbol,
			Owner:   allow.GetOwner(),
			Spender: allow.GetSpender(),
			Amount:  commandtypes.FormatAmountValue2Display(allow.GetAmount()),
		}
	})
}
