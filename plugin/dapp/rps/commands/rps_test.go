// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/rps/client"
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/plugin/dapp/rps/executor"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	_ "github.com/33cn/rps/system"
	drivers "github.com/33cn/rps/system/dapp"
	syscmd "github.com/33cn/rps/system/dapp/commands"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if _, err := drivers.LoadDriver(rt.RPSX, -1); err != nil {
		executor.Init(rt.RPSX, nil)
	}
}

var cfgTemplate = `
Title="rps-cli-test"
[store]
driver = "leveldb"
dbPath = "%s"
[[genesis]]
symbol = "bty"
addr = "%s"
amount = 10000000000
`

func run(args ...string) (string, string) {
	root := &cobra.Command{Use: "rps-cli"}
	root.PersistentFlags().String("conf", "", "")
	root.PersistentFlags().String("key", "", "")
	root.AddCommand(RPSCmd(), syscmd.AssetCmd(), syscmd.AccountCmd())
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	root.Execute()
	return out.String(), errOut.String()
}

func TestRPSCommands(t *testing.T) {
	dir, err := ioutil.TempDir("", "rps-cli")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	priv, err := client.GenKey()
	require.NoError(t, err)
	key := common.ToHex(priv.Bytes())
	addr := address.PubKeyToAddress(priv.PubKey().Bytes()).String()
	conf := filepath.Join(dir, "rps.toml")
	cfg := fmt.Sprintf(cfgTemplate, filepath.ToSlash(filepath.Join(dir, "state")), addr)
	require.NoError(t, ioutil.WriteFile(conf, []byte(cfg), 0600))

	out, _ := run("account", "balance", "--addr", addr, "--conf", conf)
	assert.Contains(t, out, "100.0000")

	out, _ = run("rps", "digest", "--addr", addr, "--move", "rock", "--secret", "s")
	d, err := rt.CommitDigest(addr, rt.Rock, []byte("s"), "")
	require.NoError(t, err)
	assert.Contains(t, out, common.ToHex(d))

	_, errOut := run("rps", "init", "--wager", "1", "--conf", conf)
	assert.Contains(t, errOut, "ErrNoSignature")

	out, _ = run("rps", "init", "--wager", "1", "--timeout", "60", "--conf", conf, "--key", key)
	assert.Contains(t, out, "LogRPSInit")

	custody := drivers.ExecAddress(rt.RPSX)
	out, _ = run("asset", "approve", "--spender", custody, "--amount", "1", "--conf", conf, "--key", key)
	assert.Contains(t, out, "LogApprove")

	out, _ = run("rps", "commit", "--move", "rock", "--secret", "s", "--conf", conf, "--key", key)
	assert.Contains(t, out, "LogRPSCommit")

	out, _ = run("rps", "game", "--conf", conf)
	var game GameResult
	require.NoError(t, json.Unmarshal([]byte(out), &game))
	assert.True(t, game.Started)
	assert.Equal(t, "1.0000", game.Wager)
	assert.Equal(t, custody, game.CustodyAddr)
	require.Len(t, game.Players, 1)
	assert.Equal(t, addr, game.Players[0].Addr)
	assert.Equal(t, "Unrevealed", game.Players[0].Move)

	_, errOut = run("rps", "reveal", "--slot", "1", "--move", "paper", "--secret", "s", "--conf", conf, "--key", key)
	assert.Contains(t, errOut, "ErrInvalidReveal")
	out, _ = run("rps", "reveal", "--slot", "1", "--move", "rock", "--secret", "s", "--conf", conf, "--key", key)
	assert.Contains(t, out, "LogRPSReveal")

	_, errOut = run("rps", "evaluate", "--conf", conf, "--key", key)
	assert.Contains(t, errOut, "ErrNotRevealed")
	_, errOut = run("rps", "cancel", "--conf", conf, "--key", key)
	assert.Contains(t, errOut, "ErrGameNotStarted")

	out, _ = run("account", "balance", "--addr", addr, "--conf", conf)
	assert.Contains(t, out, "99.0000")
	out, _ = run("account", "list", "--conf", conf)
	assert.Contains(t, out, custody)
	assert.Contains(t, out, "1.0000")
}

func TestConvertGame(t *testing.T) {
	result := convertGame(&rt.RPSGameView{CustodyAddr: "c"})
	assert.False(t, result.Started)
	assert.Empty(t, result.Players)

	result = convertGame(&rt.RPSGameView{
		Config:  &rt.RPSConfig{Asset: "bty", Wager: 150000000},
		Player2: &rt.PlayerRecord{Addr: "b", Move: rt.Scissors},
	})
	assert.True(t, result.Started)
	assert.Equal(t, "1.5000", result.Wager)
	require.Len(t, result.Players, 1)
	assert.Equal(t, int32(2), result.Players[0].Slot)
	assert.Equal(t, "Scissors", result.Players[0].Move)
}
