// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// Exec_Init 开局交易
func (r *Rpsls) Exec_Init(payload *rty.GameInit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.GameInit(payload)
}

// Exec_Commit 承诺出招交易
func (r *Rpsls) Exec_Commit(payload *rty.GameCommit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.GameCommit(payload)
}

// Exec_Reveal 亮拳交易
func (r *Rpsls) Exec_Reveal(payload *rty.GameReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.GameReveal(payload)
}

// Exec_ClaimTimeout 超时索胜交易
func (r *Rpsls) Exec_ClaimTimeout(payload *rty.GameClaimTimeout, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.GameClaimTimeout(payload)
}
