// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rps 命令行
package commands

import (
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

func init() {
	decode := func(log []byte) (interface{}, error) {
		var r rt.ReceiptRPS
		err := types.Decode(log, &r)
		return &r, err
	}
	commandtypes.RegisterLogDecoder(rt.TyLogRPSInit, "LogRPSInit", decode)
	commandtypes.RegisterLogDecoder(rt.TyLogRPSCommit, "LogRPSCommit", decode)
	commandtypes.RegisterLogDecoder(rt.TyLogRPSReveal, "LogRPSReveal", decode)
	commandtypes.RegisterLogDecoder(rt.TyLogRPSEvaluate, "LogRPSEvaluate", decode)
	commandtypes.RegisterLogDecoder(rt.TyLogRPSCancel, "LogRPSCancel", decode)
}

// RPSCmd rps command
func RPSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock paper scissors game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitCmd(),
		DigestCmd(),
		CommitCmd(),
		RevealCmd(),
		EvaluateCmd(),
		CancelCmd(),
		GameCmd(),
	)
	return cmd
}

// InitCmd 初始化对局配置
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set asset, wager and timeout of the game (only once)",
		Run:   rpsInit,
	}
	cmd.Flags().StringP("symbol", "s", "bty", "asset symbol")
	cmd.Flags().StringP("wager", "w", "", "wager of each player")
	cmd.MarkFlagRequired("wager")
	cmd.Flags().Int64P("timeout", "t", 3600, "seconds after the second commit before cancel is allowed")
	cmd.Flags().StringP("hashType", "", "", "digest hash, sha256(default) or keccak256")
	return cmd
}

func rpsInit(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	timeout, _ := cmd.Flags().GetInt64("timeout")
	hashType, _ := cmd.Flags().GetString("hashType")
	wager, err := commandtypes.GetAmountValue(cmd, "wager")
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	commandtypes.SendTx(cmd, rt.CreateInitTx(symbol, wager, timeout, hashType))
}

func addMoveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("secret", "x", "", "secret used in the digest")
	cmd.MarkFlagRequired("secret")
}

func getMove(cmd *cobra.Command) (int32, []byte, error) {
	name, _ := cmd.Flags().GetString("move")
	secret, _ := cmd.Flags().GetString("secret")
	move, err := rt.ParseMove(name)
	if err != nil {
		return 0, nil, err
	}
	return move, []byte(secret), nil
}

// DigestCmd 本地计算提交的 hash, 不发送交易
func DigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Compute the commit digest of an address, move and secret",
		Run:   digest,
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("hashType", "", "", "digest hash, sha256(default) or keccak256")
	addMoveFlags(cmd)
	return cmd
}

func digest(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	hashType, _ := cmd.Flags().GetString("hashType")
	move, secret, err := getMove(cmd)
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	d, err := rt.CommitDigest(addr, move, secret, hashType)
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	commandtypes.PrintJSON(cmd, common.ToHex(d))
}

// CommitCmd 提交出拳, digest 由当前配置的 hash 算法计算
func CommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit the digest of a move, the wager is transferred by allowance",
		Run:   commit,
	}
	addMoveFlags(cmd)
	return cmd
}

func commit(cmd *cobra.Command, args []string) {
	move, secret, err := getMove(cmd)
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	priv, err := commandtypes.GetPrivKey(cmd)
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	c, err := commandtypes.NewClient(cmd)
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	reply, err := c.Query(rt.RPSX, rt.FuncNameGetGame, nil)
	c.Close()
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	addr := address.PubKeyToAddress(priv.PubKey().Bytes()).String()
	d, err := rt.CommitDigest(addr, move, secret, reply.(*rt.RPSGameView).GetConfig().GetHashType())
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	commandtypes.SendTx(cmd, rt.CreateCommitTx(addr, d))
}

// RevealCmd 公开出拳
func RevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the move committed in a slot",
		Run:   reveal,
	}
	cmd.Flags().Int32P("slot", "p", 1, "player slot, 1 or 2")
	addMoveFlags(cmd)
	return cmd
}

func reveal(cmd *cobra.Command, args []string) {
	slot, _ := cmd.Flags().GetInt32("slot")
	move, secret, err := getMove(cmd)
	if err != nil {
		commandtypes.PrintErr(cmd, err)
		return
	}
	commandtypes.SendTx(cmd, rt.CreateRevealTx(slot, move, secret))
}

// EvaluateCmd 开奖
func EvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Pay out after both players revealed",
		Run: func(cmd *cobra.Command, args []string) {
			commandtypes.SendTx(cmd, rt.CreateEvaluateTx())
		},
	}
}

// CancelCmd 超时取消
func CancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Pay the only revealed player after timeout",
		Run: func(cmd *cobra.Command, args []string) {
			commandtypes.SendTx(cmd, rt.CreateCancelTx())
		},
	}
}

// GameResult 当前对局的命令行输出
type GameResult struct {
	Asset       string          `json:"asset,omitempty"`
	Wager       string          `json:"wager,omitempty"`
	Timeout     int64           `json:"timeout,omitempty"`
	HashType    string          `json:"hashType,omitempty"`
	Started     bool            `json:"started"`
	Players     []*PlayerResult `json:"players,omitempty"`
	BetStart    int64           `json:"betStart,omitempty"`
	CustodyAddr string          `json:"custodyAddr"`
}

// PlayerResult 玩家位置
type PlayerResult struct {
	Slot   int32  `json:"slot"`
	Addr   string `json:"addr"`
	Digest string `json:"digest"`
	Move   string `json:"move"`
}

// GameCmd 查询当前对局
func GameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "game",
		Short: "Show the current game",
		Run: func(cmd *cobra.Command, args []string) {
			commandtypes.Query(cmd, rt.RPSX, rt.FuncNameGetGame, nil, func(reply types.Message) interface{} {
				return convertGame(reply.(*rt.RPSGameView))
			})
		},
	}
}

func convertGame(view *rt.RPSGameView) *GameResult {
	result := &GameResult{
		BetStart:    view.GetBetStart(),
		CustodyAddr: view.GetCustodyAddr(),
	}
	if conf := view.GetConfig(); conf != nil {
		result.Started = true
		result.Asset = conf.GetAsset()
		result.Wager = commandtypes.FormatAmountValue2Display(conf.GetWager())
		result.Timeout = conf.GetTimeout()
		result.HashType = conf.GetHashType()
	}
	for i, p := range []*rt.PlayerRecord{view.GetPlayer1(), view.GetPlayer2()} {
		if p == nil {
			continue
		}
		result.Players = append(result.Players, &PlayerResult{
			Slot:   int32(i + 1),
			Addr:   p.GetAddr(),
			Digest: common.ToHex(p.GetDigest()),
			Move:   rt.MoveName(p.GetMove()),
		})
	}
	return result
}
