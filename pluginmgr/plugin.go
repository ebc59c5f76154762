// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 插件管理, 每个 dapp 在 init 中注册执行器以及命令行
package pluginmgr

import (
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// Plugin dapp 插件
type Plugin interface {
	// 获取整个插件的包名，用以计算唯一值、做前缀等
	GetName() string
	// 获取插件中执行器名
	GetExecutorName() string
	// 初始化执行器时会调用该接口
	InitExec(cfg *types.Config)
	AddCmd(rootCmd *cobra.Command)
}
