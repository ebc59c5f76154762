// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rt "github.com/33cn/rps/plugin/dapp/rps/types"
)

var keyPrefix = "mavl-" + rt.RPSX + "-"

//ConfigKey 对局配置, 存在即表示已经初始化
func ConfigKey() []byte {
	return []byte(keyPrefix + "config")
}

//PlayerKey 玩家位置
func PlayerKey(slot int32) []byte {
	return []byte(fmt.Sprintf("%splayer-%d", keyPrefix, slot))
}

//BetStartKey 第二个玩家提交的时间
func BetStartKey() []byte {
	return []byte(keyPrefix + "betstart")
}
