// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"strconv"

	"github.com/33cn/chain33/account"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

const (
	// WinThreshold 率先赢下该轮数者获胜并通吃托管资金
	WinThreshold = int32(2)

	// DefaultRoundTimeoutBlocks 每个行动窗口的区块数，可经manage合约调整
	DefaultRoundTimeoutBlocks = int64(120)

	// MinGameFee 报名费下限
	MinGameFee = 1 * types.DefaultCoinPrecision
	// MaxGameFee 报名费上限
	MaxGameFee = 100 * types.DefaultCoinPrecision

	// ListDESC 降序翻页
	ListDESC = int32(0)
	// ListASC 升序翻页
	ListASC = int32(1)

	// DefaultCount 单页默认条数
	DefaultCount = int32(20)
	// MaxCount 单页最大条数
	MaxCount = int32(100)
)

// 可通过manage合约在线调整的参数
var (
	ConfNameRoundTimeout = rty.RpslsX + ":" + "roundTimeoutBlocks"
	ConfNameMinGameFee   = rty.RpslsX + ":" + "minGameFee"
	ConfNameMaxGameFee   = rty.RpslsX + ":" + "maxGameFee"
)

// Action 一次交易执行的上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	localDB      dbm.KVDB
	index        int
	lobby        *lobby
}

// NewAction 生成Action
func NewAction(r *Rpsls, tx *types.Transaction, index int) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()
	accCoin := r.GetCoinsAccount()
	execaddr := dapp.ExecAddress(string(tx.Execer))
	return &Action{
		coinsAccount: accCoin,
		db:           r.GetStateDB(),
		txhash:       hash,
		fromaddr:     fromaddr,
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		execaddr:     execaddr,
		localDB:      r.GetLocalDB(),
		index:        index,
		lobby: &lobby{
			coinsAccount: accCoin,
			db:           r.GetStateDB(),
			execaddr:     execaddr,
		},
	}
}

// getIndex 全局单调索引，区块内按交易序号递增
func (action *Action) getIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func (action *Action) readGame(id string) (*rty.Game, error) {
	data, err := action.db.Get(calcGameKey(id))
	if err != nil {
		return nil, err
	}
	var game rty.Game
	err = types.Decode(data, &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (action *Action) saveGame(game *rty.Game) *types.KeyValue {
	value := types.Encode(game)
	action.db.Set(calcGameKey(game.GameId), value)
	return &types.KeyValue{Key: calcGameKey(game.GameId), Value: value}
}

func (action *Action) getReceiptLog(game *rty.Game, prevStatus, roundResult, logTy int32) *types.ReceiptLog {
	log := &types.ReceiptLog{Ty: logTy}
	r := &rty.ReceiptGame{
		GameId:      game.GameId,
		Status:      game.Status,
		PrevStatus:  prevStatus,
		Addr:        action.fromaddr,
		Player1:     game.Player1,
		Player2:     game.Player2,
		Index:       game.Index,
		PrevIndex:   game.PrevIndex,
		Winner:      game.Winner,
		Round:       game.Round,
		RoundResult: roundResult,
	}
	log.Log = types.Encode(r)
	return log
}

func (action *Action) checkExecAccountBalance(fromAddr string, toFrozen, toActive int64) bool {
	acc := action.coinsAccount.LoadExecAccount(fromAddr, action.execaddr)
	if acc.GetBalance() >= toFrozen && acc.GetFrozen() >= toActive {
		return true
	}
	return false
}

// playerSlot 返回地址在对局中的座次，1/2，非参与者返回0
func playerSlot(game *rty.Game, addr string) int {
	if addr == game.Player1 {
		return 1
	}
	if addr == game.Player2 {
		return 2
	}
	return 0
}

func isFinished(game *rty.Game) bool {
	return game.Status == rty.GameStatusDone || game.Winner != ""
}

// GameInit 开局：校验报名费与双方余额，冻结双方资金，落盘对局并登记在局指针
func (action *Action) GameInit(init *rty.GameInit) (*types.Receipt, error) {
	gameID := action.lobby.newGameID(action.txhash)
	if !init.ShouldInit {
		// 撮合方预取局号的干跑，不建局不锁资金
		glog.Info("GameInit dry run", "gameID", gameID)
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	if init.Player1 == init.Player2 {
		return nil, rty.ErrGameSamePlayer
	}
	fee := init.Fee
	minFee := action.getConfValue(ConfNameMinGameFee, MinGameFee)
	maxFee := action.getConfValue(ConfNameMaxGameFee, MaxGameFee)
	if fee < minFee || fee > maxFee {
		glog.Error("GameInit", "fee", fee, "min", minFee, "max", maxFee,
			"err", rty.ErrGameFeeAmount)
		return nil, rty.ErrGameFeeAmount
	}
	for _, addr := range []string{init.Player1, init.Player2} {
		if !action.checkExecAccountBalance(addr, fee, 0) {
			glog.Error("GameInit", "addr", addr, "execaddr", action.execaddr,
				"err", types.ErrNoBalance)
			return nil, types.ErrNoBalance
		}
		if id := action.lobby.activeGameID(addr); id != "" {
			glog.Error("GameInit", "addr", addr, "activeGame", id,
				"err", rty.ErrPlayerInGame)
			return nil, rty.ErrPlayerInGame
		}
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receipt, err := action.lobby.escrow(init.Player1, fee)
	if err != nil {
		glog.Error("GameInit frozen", "addr", init.Player1, "amount", fee, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	receipt, err = action.lobby.escrow(init.Player2, fee)
	if err != nil {
		action.lobby.release(init.Player1, fee) // rollback
		glog.Error("GameInit frozen", "addr", init.Player2, "amount", fee, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	timeout := action.getConfValue(ConfNameRoundTimeout, DefaultRoundTimeoutBlocks)
	game := &rty.Game{
		GameId:         gameID,
		Player1:        init.Player1,
		Player2:        init.Player2,
		Value:          2 * fee,
		Status:         rty.GameStatusPlaying,
		Round:          1,
		CommitDeadline: action.height + timeout,
		RevealDeadline: action.height + 2*timeout,
		LastMoveHeight: action.height,
		CreateTime:     action.blocktime,
		Index:          action.getIndex(),
	}
	kv = append(kv, action.saveGame(game))
	kv = append(kv, action.lobby.bindActiveGame(game.Player1, gameID))
	kv = append(kv, action.lobby.bindActiveGame(game.Player2, gameID))
	logs = append(logs, action.getReceiptLog(game, 0, rty.RoundResultDraw, rty.TyLogRpslsInit))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameCommit 承诺阶段出招：窗口内可反复提交，后值覆盖前值
func (action *Action) GameCommit(commit *rty.GameCommit) (*types.Receipt, error) {
	game, err := action.readGame(commit.GameId)
	if err != nil {
		glog.Error("GameCommit", "gameID", commit.GameId, "err", err)
		return nil, err
	}
	if isFinished(game) {
		return nil, rty.ErrGameFinished
	}
	slot := playerSlot(game, action.fromaddr)
	if slot == 0 {
		return nil, rty.ErrNotAParticipant
	}
	if action.height > game.CommitDeadline {
		return nil, rty.ErrCommitWindowClosed
	}
	prevStatus := game.Status
	if slot == 1 {
		game.Commit1 = commit.Commitment
	} else {
		game.Commit2 = commit.Commitment
	}
	game.LastMoveHeight = action.height
	game.PrevIndex = game.Index
	game.Index = action.getIndex()

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, action.saveGame(game))
	logs = append(logs, action.getReceiptLog(game, prevStatus, rty.RoundResultDraw, rty.TyLogRpslsCommit))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameReveal 亮拳：校验承诺哈希后记录明文，双方亮拳即判本轮；
// 达到胜轮门槛则终局结算，否则清空承诺进入下一轮
func (action *Action) GameReveal(reveal *rty.GameReveal) (*types.Receipt, error) {
	game, err := action.readGame(reveal.GameId)
	if err != nil {
		glog.Error("GameReveal", "gameID", reveal.GameId, "err", err)
		return nil, err
	}
	if isFinished(game) {
		return nil, rty.ErrGameFinished
	}
	slot := playerSlot(game, action.fromaddr)
	if slot == 0 {
		return nil, rty.ErrNotAParticipant
	}
	if action.height > game.RevealDeadline {
		return nil, rty.ErrRevealWindowClosed
	}
	if !IsValidMove(reveal.Move) {
		return nil, types.ErrInvalidParam
	}
	commitment := game.Commit1
	if slot == 2 {
		commitment = game.Commit2
	}
	if len(commitment) == 0 || !bytes.Equal(MakeCommitment(reveal.Move, reveal.Salt), commitment) {
		glog.Error("GameReveal", "gameID", reveal.GameId, "addr", action.fromaddr,
			"err", rty.ErrRevealMismatch)
		return nil, rty.ErrRevealMismatch
	}
	prevStatus := game.Status
	if slot == 1 {
		game.Move1 = reveal.Move
		game.Revealed1 = true
	} else {
		game.Move2 = reveal.Move
		game.Revealed2 = true
	}
	game.LastMoveHeight = action.height
	game.PrevIndex = game.Index
	game.Index = action.getIndex()

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	roundResult := int32(rty.RoundResultDraw)
	logTy := int32(rty.TyLogRpslsReveal)
	if game.Revealed1 && game.Revealed2 {
		roundResult = resolveRound(game.Move1, game.Move2)
		switch roundResult {
		case rty.RoundResultPlayer1:
			game.Wins1++
		case rty.RoundResultPlayer2:
			game.Wins2++
		}
		if game.Wins1 >= WinThreshold || game.Wins2 >= WinThreshold {
			if game.Wins1 >= WinThreshold {
				game.Winner = game.Player1
			} else {
				game.Winner = game.Player2
			}
			settleLogs, settleKV, err := action.settleGame(game)
			if err != nil {
				return nil, err
			}
			logs = append(logs, settleLogs...)
			kv = append(kv, settleKV...)
			logTy = rty.TyLogRpslsClose
		} else {
			action.nextRound(game)
		}
	}
	kv = append(kv, action.saveGame(game))
	logs = append(logs, action.getReceiptLog(game, prevStatus, roundResult, logTy))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameClaimTimeout 对手停手超时后索胜并结算
func (action *Action) GameClaimTimeout(claim *rty.GameClaimTimeout) (*types.Receipt, error) {
	game, err := action.readGame(claim.GameId)
	if err != nil {
		glog.Error("GameClaimTimeout", "gameID", claim.GameId, "err", err)
		return nil, err
	}
	if isFinished(game) {
		return nil, rty.ErrGameFinished
	}
	if playerSlot(game, action.fromaddr) == 0 {
		return nil, rty.ErrNotAParticipant
	}
	timeout := action.getConfValue(ConfNameRoundTimeout, DefaultRoundTimeoutBlocks)
	if action.height <= game.LastMoveHeight+timeout {
		glog.Error("GameClaimTimeout", "gameID", claim.GameId, "height", action.height,
			"lastMove", game.LastMoveHeight, "err", rty.ErrOpponentNotTimedOut)
		return nil, rty.ErrOpponentNotTimedOut
	}
	prevStatus := game.Status
	game.Winner = action.fromaddr
	game.PrevIndex = game.Index
	game.Index = action.getIndex()
	logs, kv, err := action.settleGame(game)
	if err != nil {
		return nil, err
	}
	kv = append(kv, action.saveGame(game))
	logs = append(logs, action.getReceiptLog(game, prevStatus, rty.RoundResultDraw, rty.TyLogRpslsClose))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// nextRound 重置两阶段招式，刷新行动窗口
func (action *Action) nextRound(game *rty.Game) {
	timeout := action.getConfValue(ConfNameRoundTimeout, DefaultRoundTimeoutBlocks)
	game.Round++
	game.Commit1 = nil
	game.Commit2 = nil
	game.Move1 = 0
	game.Move2 = 0
	game.Revealed1 = false
	game.Revealed2 = false
	game.CommitDeadline = action.height + timeout
	game.RevealDeadline = action.height + 2*timeout
}

// settleGame 终局结算：有胜者则通吃，无胜者各退本金，并通知撮合方放行选手
func (action *Action) settleGame(game *rty.Game) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	share := game.Value / 2
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	var err error
	if game.Winner == "" {
		logs, kv, err = action.lobby.refund(game.Player1, game.Player2, share)
	} else {
		loser := game.Player2
		if game.Winner == game.Player2 {
			loser = game.Player1
		}
		logs, kv, err = action.lobby.payout(game.Winner, loser, share)
	}
	if err != nil {
		return nil, nil, err
	}
	kv = append(kv, action.lobby.onMatchEnd(game)...)
	game.Status = rty.GameStatusDone
	game.CloseTime = action.blocktime
	return logs, kv, nil
}

// getConfValue 读取manage合约配置，未配置时取编译期默认值
func (action *Action) getConfValue(key string, defaultValue int64) int64 {
	value, err := action.getManageKey(key)
	if err != nil || value == nil {
		return defaultValue
	}
	var item types.ConfigItem
	err = types.Decode(value, &item)
	if err != nil {
		glog.Error("getConfValue", "decode", err)
		return defaultValue
	}
	values := item.GetArr().GetValue()
	if len(values) == 0 {
		return defaultValue
	}
	// 最后一次配置生效
	v, err := strconv.ParseInt(values[len(values)-1], 10, 64)
	if err != nil {
		glog.Error("getConfValue", "parse", err)
		return defaultValue
	}
	return v
}

func (action *Action) getManageKey(key string) ([]byte, error) {
	manageKey := types.ManageKey(key)
	value, err := action.db.Get([]byte(manageKey))
	if err != nil {
		return action.db.Get([]byte(types.ConfigKey(key)))
	}
	return value, nil
}
