// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common/log"
	_ "github.com/33cn/rps/plugin"
	"github.com/33cn/rps/pluginmgr"
	_ "github.com/33cn/rps/system"
	"github.com/33cn/rps/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rps-cli",
	Short: "rock paper scissors local node tools",
}

func init() {
	rootCmd.PersistentFlags().String("conf", "", "config file, default to an in-memory node")
	rootCmd.PersistentFlags().String("key", "", "hex private key used to sign transactions")

	rootCmd.AddCommand(
		commands.AccountCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	log.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
