// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// lobby 撮合方在合约内的代理：分配局号、冻结与划转托管资金、
// 维护选手在局指针并在终局时放行双方。对局逻辑组合使用该能力，
// 不关心撮合方其余细节
type lobby struct {
	coinsAccount *account.DB
	db           dbm.KV
	execaddr     string
}

// newGameID 以创建交易哈希作局号，天然全局唯一
func (l *lobby) newGameID(txhash []byte) string {
	return common.ToHex(txhash)
}

// escrow 冻结报名费到合约地址下
func (l *lobby) escrow(addr string, amount int64) (*types.Receipt, error) {
	return l.coinsAccount.ExecFrozen(addr, l.execaddr, amount)
}

// release 解冻，用于escrow部分成功后的回滚
func (l *lobby) release(addr string, amount int64) (*types.Receipt, error) {
	return l.coinsAccount.ExecActive(addr, l.execaddr, amount)
}

// payout 胜者通吃：解冻己方本金，再把败方冻结份额划转给胜者
func (l *lobby) payout(winner, loser string, share int64) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receipt, err := l.coinsAccount.ExecActive(winner, l.execaddr, share)
	if err != nil {
		glog.Error("lobby payout active", "addr", winner, "execaddr", l.execaddr, "amount", share, "err", err)
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	receipt, err = l.coinsAccount.ExecTransferFrozen(loser, winner, l.execaddr, share)
	if err != nil {
		l.coinsAccount.ExecFrozen(winner, l.execaddr, share) // rollback
		glog.Error("lobby payout transfer", "from", loser, "to", winner, "amount", share, "err", err)
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	return logs, kv, nil
}

// refund 双方各自取回冻结的本金
func (l *lobby) refund(player1, player2 string, share int64) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receipt, err := l.coinsAccount.ExecActive(player1, l.execaddr, share)
	if err != nil {
		glog.Error("lobby refund", "addr", player1, "amount", share, "err", err)
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	receipt, err = l.coinsAccount.ExecActive(player2, l.execaddr, share)
	if err != nil {
		l.coinsAccount.ExecFrozen(player1, l.execaddr, share) // rollback
		glog.Error("lobby refund", "addr", player2, "amount", share, "err", err)
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	return logs, kv, nil
}

// bindActiveGame 登记选手在局指针，指针存在期间选手不得再入新局
func (l *lobby) bindActiveGame(addr, gameID string) *types.KeyValue {
	kv := &types.KeyValue{Key: calcActiveGameKey(addr), Value: []byte(gameID)}
	l.db.Set(kv.Key, kv.Value)
	return kv
}

func (l *lobby) clearActiveGame(addr string) *types.KeyValue {
	kv := &types.KeyValue{Key: calcActiveGameKey(addr), Value: nil}
	l.db.Set(kv.Key, kv.Value)
	return kv
}

func (l *lobby) activeGameID(addr string) string {
	value, err := l.db.Get(calcActiveGameKey(addr))
	if err != nil || len(value) == 0 {
		return ""
	}
	return string(value)
}

// onMatchEnd 终局通知：清除双方在局指针，放行两位选手
func (l *lobby) onMatchEnd(game *rty.Game) []*types.KeyValue {
	var kv []*types.KeyValue
	kv = append(kv, l.clearActiveGame(game.Player1))
	kv = append(kv, l.clearActiveGame(game.Player2))
	glog.Info("lobby match end", "gameID", game.GameId, "winner", game.Winner)
	return kv
}
