// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"

	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// GameInitTx 构造开局交易
func (c *channelClient) GameInitTx(ctx context.Context, head *rty.GameInit) (*types.UnsignTx, error) {
	val := &rty.GameAction{
		Ty:    rty.GameActionInit,
		Value: &rty.GameAction_Init{Init: head},
	}
	return c.unsignTx(val)
}

// GameCommitTx 构造承诺出招交易
func (c *channelClient) GameCommitTx(ctx context.Context, head *rty.GameCommit) (*types.UnsignTx, error) {
	val := &rty.GameAction{
		Ty:    rty.GameActionCommit,
		Value: &rty.GameAction_Commit{Commit: head},
	}
	return c.unsignTx(val)
}

// GameRevealTx 构造亮拳交易
func (c *channelClient) GameRevealTx(ctx context.Context, head *rty.GameReveal) (*types.UnsignTx, error) {
	val := &rty.GameAction{
		Ty:    rty.GameActionReveal,
		Value: &rty.GameAction_Reveal{Reveal: head},
	}
	return c.unsignTx(val)
}

// GameClaimTimeoutTx 构造超时索胜交易
func (c *channelClient) GameClaimTimeoutTx(ctx context.Context, head *rty.GameClaimTimeout) (*types.UnsignTx, error) {
	val := &rty.GameAction{
		Ty:    rty.GameActionClaimTimeout,
		Value: &rty.GameAction_ClaimTimeout{ClaimTimeout: head},
	}
	return c.unsignTx(val)
}

func (c *channelClient) unsignTx(val *rty.GameAction) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(rty.RpslsX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}
