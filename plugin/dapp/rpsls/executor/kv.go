// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// 状态数据库：对局主体与选手在局指针
func calcGameKey(gameID string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-%s", rty.RpslsX, gameID))
}

func calcActiveGameKey(addr string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-active-%s", rty.RpslsX, addr))
}

// 本地数据库：按状态、按(地址,状态)两套游标索引，index定长格式化保证字典序
func calcGameStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:%018d", rty.RpslsX, status, index))
}

func calcGameStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:", rty.RpslsX, status))
}

func calcGameAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addr:%s:%d:%018d", rty.RpslsX, addr, status, index))
}

func calcGameAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addr:%s:%d:", rty.RpslsX, addr, status))
}
