// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system 系统 dapp 以及签名算法的注册
package system

import (
	_ "github.com/33cn/rps/common/crypto/secp256k1" //register secp256k1
	_ "github.com/33cn/rps/system/dapp/asset"       //register asset
)
