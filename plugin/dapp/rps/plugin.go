// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rps 两人石头剪刀布 dapp
package rps

import (
	"github.com/33cn/rps/plugin/dapp/rps/commands"
	"github.com/33cn/rps/plugin/dapp/rps/executor"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rt.RPSX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RPSCmd,
	})
}
