// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 构造rpsls未签名交易的json-rpc接口
package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
)

// Jrpc json-rpc接口
type Jrpc struct {
	cli *channelClient
}

type channelClient struct {
	rpctypes.ChannelClient
}

// Init 注册rpc
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	cli.Init(name, s, &Jrpc{cli: cli}, nil)
}
