// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// rollbackIndex 区块回退时撤销本笔交易的索引变更
func (r *Rpsls) rollbackIndex(receipt *rty.ReceiptGame) []*types.KeyValue {
	var kv []*types.KeyValue
	kv = append(kv, delGameStatusIndex(receipt.Status, receipt.Index)...)
	kv = append(kv, delGameAddrIndex(receipt.Status, receipt.Player1, receipt.Index)...)
	kv = append(kv, delGameAddrIndex(receipt.Status, receipt.Player2, receipt.Index)...)
	if receipt.PrevStatus > 0 {
		kv = append(kv, addGameStatusIndex(receipt.PrevStatus, receipt.GameId, receipt.PrevIndex)...)
		kv = append(kv, addGameAddrIndex(receipt.PrevStatus, receipt.GameId, receipt.Player1, receipt.PrevIndex)...)
		kv = append(kv, addGameAddrIndex(receipt.PrevStatus, receipt.GameId, receipt.Player2, receipt.PrevIndex)...)
	}
	return kv
}

func (r *Rpsls) execDelLocal(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	dbSet := &types.LocalDBSet{}
	if receiptData.GetTy() != types.ExecOk {
		return dbSet, nil
	}
	for _, log := range receiptData.Logs {
		switch log.Ty {
		case rty.TyLogRpslsInit, rty.TyLogRpslsCommit, rty.TyLogRpslsReveal, rty.TyLogRpslsClose:
			var receipt rty.ReceiptGame
			if err := types.Decode(log.Log, &receipt); err != nil {
				return nil, err
			}
			dbSet.KV = append(dbSet.KV, r.rollbackIndex(&receipt)...)
		}
	}
	return dbSet, nil
}

// ExecDelLocal_Init 回退开局索引
func (r *Rpsls) ExecDelLocal_Init(payload *rty.GameInit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(receiptData)
}

// ExecDelLocal_Commit 回退承诺索引
func (r *Rpsls) ExecDelLocal_Commit(payload *rty.GameCommit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(receiptData)
}

// ExecDelLocal_Reveal 回退亮拳索引
func (r *Rpsls) ExecDelLocal_Reveal(payload *rty.GameReveal, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(receiptData)
}

// ExecDelLocal_ClaimTimeout 回退超时索胜索引
func (r *Rpsls) ExecDelLocal_ClaimTimeout(payload *rty.GameClaimTimeout, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(receiptData)
}
