// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// updateIndex 移除旧位置的索引条目，在新(status,index)处重建
func (r *Rpsls) updateIndex(receipt *rty.ReceiptGame) []*types.KeyValue {
	var kv []*types.KeyValue
	if receipt.PrevStatus > 0 {
		kv = append(kv, delGameStatusIndex(receipt.PrevStatus, receipt.PrevIndex)...)
		kv = append(kv, delGameAddrIndex(receipt.PrevStatus, receipt.Player1, receipt.PrevIndex)...)
		kv = append(kv, delGameAddrIndex(receipt.PrevStatus, receipt.Player2, receipt.PrevIndex)...)
	}
	kv = append(kv, addGameStatusIndex(receipt.Status, receipt.GameId, receipt.Index)...)
	kv = append(kv, addGameAddrIndex(receipt.Status, receipt.GameId, receipt.Player1, receipt.Index)...)
	kv = append(kv, addGameAddrIndex(receipt.Status, receipt.GameId, receipt.Player2, receipt.Index)...)
	return kv
}

func addGameStatusIndex(status int32, gameID string, index int64) []*types.KeyValue {
	record := &rty.GameRecord{GameId: gameID, Index: index}
	return []*types.KeyValue{{
		Key:   calcGameStatusIndexKey(status, index),
		Value: types.Encode(record),
	}}
}

func delGameStatusIndex(status int32, index int64) []*types.KeyValue {
	// value置空即删除
	return []*types.KeyValue{{
		Key:   calcGameStatusIndexKey(status, index),
		Value: nil,
	}}
}

func addGameAddrIndex(status int32, gameID, addr string, index int64) []*types.KeyValue {
	record := &rty.GameRecord{GameId: gameID, Index: index}
	return []*types.KeyValue{{
		Key:   calcGameAddrIndexKey(status, addr, index),
		Value: types.Encode(record),
	}}
}

func delGameAddrIndex(status int32, addr string, index int64) []*types.KeyValue {
	return []*types.KeyValue{{
		Key:   calcGameAddrIndexKey(status, addr, index),
		Value: nil,
	}}
}

func (r *Rpsls) execLocal(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
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
			dbSet.KV = append(dbSet.KV, r.updateIndex(&receipt)...)
		}
	}
	return dbSet, nil
}

// ExecLocal_Init 开局的本地索引
func (r *Rpsls) ExecLocal_Init(payload *rty.GameInit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receiptData)
}

// ExecLocal_Commit 承诺出招的本地索引
func (r *Rpsls) ExecLocal_Commit(payload *rty.GameCommit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receiptData)
}

// ExecLocal_Reveal 亮拳的本地索引
func (r *Rpsls) ExecLocal_Reveal(payload *rty.GameReveal, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receiptData)
}

// ExecLocal_ClaimTimeout 超时索胜的本地索引
func (r *Rpsls) ExecLocal_ClaimTimeout(payload *rty.GameClaimTimeout, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receiptData)
}
