// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpsls

import (
	"github.com/33cn/chain33/pluginmgr"

	"github.com/33cn/rpsls/plugin/dapp/rpsls/commands"
	"github.com/33cn/rpsls/plugin/dapp/rpsls/executor"
	"github.com/33cn/rpsls/plugin/dapp/rpsls/rpc"
	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rty.RpslsX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RpslsCmd,
		RPC:      rpc.Init,
	})
}
