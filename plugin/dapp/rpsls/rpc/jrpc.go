// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"encoding/hex"

	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// RpslsInitTx 构造开局交易
func (c *Jrpc) RpslsInitTx(parm *rty.RpslsInitTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &rty.GameInit{
		Player1:    parm.Player1,
		Player2:    parm.Player2,
		Fee:        parm.Fee,
		ShouldInit: parm.ShouldInit,
	}
	reply, err := c.cli.GameInitTx(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// RpslsCommitTx 构造承诺出招交易
func (c *Jrpc) RpslsCommitTx(parm *rty.RpslsCommitTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	commitment, err := hex.DecodeString(parm.Commitment)
	if err != nil {
		return types.ErrInvalidParam
	}
	head := &rty.GameCommit{
		GameId:     parm.GameID,
		Commitment: commitment,
	}
	reply, err := c.cli.GameCommitTx(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// RpslsRevealTx 构造亮拳交易
func (c *Jrpc) RpslsRevealTx(parm *rty.RpslsRevealTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &rty.GameReveal{
		GameId: parm.GameID,
		Move:   parm.Move,
		Salt:   parm.Salt,
	}
	reply, err := c.cli.GameRevealTx(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// RpslsClaimTimeoutTx 构造超时索胜交易
func (c *Jrpc) RpslsClaimTimeoutTx(parm *rty.RpslsClaimTimeoutTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &rty.GameClaimTimeout{
		GameId: parm.GameID,
	}
	reply, err := c.cli.GameClaimTimeoutTx(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}
