// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/queue"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

var testCfg = types.NewChain33Config(types.GetDefaultCfgstring())

func init() {
	Init(driverName, testCfg, nil)
}

type testEnv struct {
	dbDir    string
	stateDB  dbm.DB
	kvdb     dbm.KVDB
	exec     *Rpsls
	execAddr string
	addr1    string
	priv1    crypto.PrivKey
	addr2    string
	priv2    crypto.PrivKey
	addr3    string
	priv3    crypto.PrivKey
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{}
	env.dbDir, env.stateDB, env.kvdb = util.CreateTestDB()
	env.execAddr = address.ExecAddress(rty.RpslsX)
	env.addr1, env.priv1 = util.Genaddress()
	env.addr2, env.priv2 = util.Genaddress()
	env.addr3, env.priv3 = util.Genaddress()

	q := queue.New("test_rpsls")
	q.SetConfig(testCfg)
	api, err := client.New(q.Client(), nil)
	require.NoError(t, err)

	env.exec = newRpsls().(*Rpsls)
	env.exec.SetAPI(api)
	env.exec.SetStateDB(env.stateDB)
	env.exec.SetLocalDB(env.kvdb)
	env.exec.SetEnv(1, 1e9, 1)

	accCoin := account.NewCoinsAccount(testCfg)
	accCoin.SetDB(env.stateDB)
	for _, addr := range []string{env.addr1, env.addr2, env.addr3} {
		acc := &types.Account{Balance: 1000 * types.DefaultCoinPrecision, Addr: addr}
		accCoin.SaveExecAccount(env.execAddr, acc)
	}
	return env
}

func (env *testEnv) close() {
	util.CloseTestDB(env.dbDir, env.stateDB)
}

func (env *testEnv) execAccount(t *testing.T, addr string) *types.Account {
	accCoin := account.NewCoinsAccount(testCfg)
	accCoin.SetDB(env.stateDB)
	return accCoin.LoadExecAccount(addr, env.execAddr)
}

func signTx(t *testing.T, priv crypto.PrivKey, action *rty.GameAction) *types.Transaction {
	tx := &types.Transaction{
		Execer:  rty.ExecerRpsls,
		Payload: types.Encode(action),
		To:      address.ExecAddress(rty.RpslsX),
	}
	tx, err := types.FormatTx(testCfg, rty.RpslsX, tx)
	require.NoError(t, err)
	tx.Sign(types.SECP256K1, priv)
	return tx
}

func (env *testEnv) initGame(t *testing.T, fee int64) string {
	payload := &rty.GameInit{
		Player1:    env.addr1,
		Player2:    env.addr2,
		Fee:        fee,
		ShouldInit: true,
	}
	tx := signTx(t, env.priv3, &rty.GameAction{
		Ty:    rty.GameActionInit,
		Value: &rty.GameAction_Init{Init: payload},
	})
	receipt, err := env.exec.Exec_Init(payload, tx, 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	return common.ToHex(tx.Hash())
}

func (env *testEnv) commit(t *testing.T, priv crypto.PrivKey, gameID string, move int32, salt string) (*types.Receipt, error) {
	payload := &rty.GameCommit{GameId: gameID, Commitment: MakeCommitment(move, salt)}
	tx := signTx(t, priv, &rty.GameAction{
		Ty:    rty.GameActionCommit,
		Value: &rty.GameAction_Commit{Commit: payload},
	})
	return env.exec.Exec_Commit(payload, tx, 0)
}

func (env *testEnv) reveal(t *testing.T, priv crypto.PrivKey, gameID string, move int32, salt string) (*types.Receipt, error) {
	payload := &rty.GameReveal{GameId: gameID, Move: move, Salt: salt}
	tx := signTx(t, priv, &rty.GameAction{
		Ty:    rty.GameActionReveal,
		Value: &rty.GameAction_Reveal{Reveal: payload},
	})
	return env.exec.Exec_Reveal(payload, tx, 0)
}

func (env *testEnv) claim(t *testing.T, priv crypto.PrivKey, gameID string) (*types.Receipt, error) {
	payload := &rty.GameClaimTimeout{GameId: gameID}
	tx := signTx(t, priv, &rty.GameAction{
		Ty:    rty.GameActionClaimTimeout,
		Value: &rty.GameAction_ClaimTimeout{ClaimTimeout: payload},
	})
	return env.exec.Exec_ClaimTimeout(payload, tx, 0)
}

func (env *testEnv) getGame(t *testing.T, gameID string) *rty.Game {
	msg, err := env.exec.Query_GetGameById(&rty.QueryGameById{GameId: gameID})
	require.NoError(t, err)
	return msg.(*rty.ReplyGame).Game
}

func TestGameInit(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	fee := 10 * types.DefaultCoinPrecision

	gameID := env.initGame(t, fee)
	game := env.getGame(t, gameID)
	assert.Equal(t, int32(rty.GameStatusPlaying), game.Status)
	assert.Equal(t, env.addr1, game.Player1)
	assert.Equal(t, env.addr2, game.Player2)
	assert.Equal(t, 2*fee, game.Value)
	assert.Equal(t, int32(1), game.Round)
	assert.Equal(t, int64(1)+DefaultRoundTimeoutBlocks, game.CommitDeadline)
	assert.Equal(t, int64(1)+2*DefaultRoundTimeoutBlocks, game.RevealDeadline)
	assert.Empty(t, game.Winner)

	// 双方各冻结一份报名费
	acc1 := env.execAccount(t, env.addr1)
	assert.Equal(t, fee, acc1.Frozen)
	assert.Equal(t, 1000*types.DefaultCoinPrecision-fee, acc1.Balance)
	acc2 := env.execAccount(t, env.addr2)
	assert.Equal(t, fee, acc2.Frozen)

	// 在局指针已建立
	msg, err := env.exec.Query_GetActiveGameByAddr(&rty.QueryActiveGameByAddr{Addr: env.addr1})
	require.NoError(t, err)
	assert.Equal(t, gameID, msg.(*rty.ReplyActiveGame).GameId)
}

func TestGameInitRejects(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()

	doInit := func(payload *rty.GameInit) (*types.Receipt, error) {
		tx := signTx(t, env.priv3, &rty.GameAction{
			Ty:    rty.GameActionInit,
			Value: &rty.GameAction_Init{Init: payload},
		})
		return env.exec.Exec_Init(payload, tx, 0)
	}

	_, err := doInit(&rty.GameInit{Player1: env.addr1, Player2: env.addr1, Fee: types.DefaultCoinPrecision, ShouldInit: true})
	assert.Equal(t, rty.ErrGameSamePlayer, err)

	_, err = doInit(&rty.GameInit{Player1: env.addr1, Player2: env.addr2, Fee: types.DefaultCoinPrecision / 2, ShouldInit: true})
	assert.Equal(t, rty.ErrGameFeeAmount, err)

	_, err = doInit(&rty.GameInit{Player1: env.addr1, Player2: env.addr2, Fee: MaxGameFee + 1, ShouldInit: true})
	assert.Equal(t, rty.ErrGameFeeAmount, err)

	// 未入金地址无钱可冻
	poor, _ := util.Genaddress()
	_, err = doInit(&rty.GameInit{Player1: env.addr1, Player2: poor, Fee: types.DefaultCoinPrecision, ShouldInit: true})
	assert.Equal(t, types.ErrNoBalance, err)

	// 干跑不建局不锁钱
	receipt, err := doInit(&rty.GameInit{Player1: env.addr1, Player2: env.addr2, Fee: types.DefaultCoinPrecision, ShouldInit: false})
	require.NoError(t, err)
	assert.Empty(t, receipt.KV)
	assert.Equal(t, int64(0), env.execAccount(t, env.addr1).Frozen)

	// 开局后双方都不能再入新局
	env.initGame(t, types.DefaultCoinPrecision)
	_, err = doInit(&rty.GameInit{Player1: env.addr1, Player2: env.addr3, Fee: types.DefaultCoinPrecision, ShouldInit: true})
	assert.Equal(t, rty.ErrPlayerInGame, err)
}

func TestRoundFlow(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	gameID := env.initGame(t, 10*types.DefaultCoinPrecision)

	_, err := env.commit(t, env.priv1, gameID, rty.MoveRock, "salt-a")
	require.NoError(t, err)
	_, err = env.commit(t, env.priv2, gameID, rty.MoveScissors, "salt-b")
	require.NoError(t, err)

	// 外人不得出招
	_, err = env.commit(t, env.priv3, gameID, rty.MoveRock, "x")
	assert.Equal(t, rty.ErrNotAParticipant, err)

	_, err = env.reveal(t, env.priv1, gameID, rty.MoveRock, "salt-a")
	require.NoError(t, err)
	game := env.getGame(t, gameID)
	assert.True(t, game.Revealed1)
	assert.False(t, game.Revealed2)

	receipt, err := env.reveal(t, env.priv2, gameID, rty.MoveScissors, "salt-b")
	require.NoError(t, err)
	var rlog rty.ReceiptGame
	require.NoError(t, types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &rlog))
	assert.Equal(t, int32(rty.TyLogRpslsReveal), receipt.Logs[len(receipt.Logs)-1].Ty)
	assert.Equal(t, int32(rty.RoundResultPlayer1), rlog.RoundResult)

	// 石头胜剪刀，进入下一轮，招式与承诺清零
	game = env.getGame(t, gameID)
	assert.Equal(t, int32(1), game.Wins1)
	assert.Equal(t, int32(0), game.Wins2)
	assert.Equal(t, int32(2), game.Round)
	assert.Empty(t, game.Commit1)
	assert.Empty(t, game.Commit2)
	assert.False(t, game.Revealed1)
	assert.False(t, game.Revealed2)
	assert.Equal(t, int32(rty.GameStatusPlaying), game.Status)
}

func TestDrawRound(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	gameID := env.initGame(t, types.DefaultCoinPrecision)

	_, err := env.commit(t, env.priv1, gameID, rty.MoveSpock, "s1")
	require.NoError(t, err)
	_, err = env.commit(t, env.priv2, gameID, rty.MoveSpock, "s2")
	require.NoError(t, err)
	_, err = env.reveal(t, env.priv1, gameID, rty.MoveSpock, "s1")
	require.NoError(t, err)
	_, err = env.reveal(t, env.priv2, gameID, rty.MoveSpock, "s2")
	require.NoError(t, err)

	// 平轮不计胜场，只推进轮次
	game := env.getGame(t, gameID)
	assert.Equal(t, int32(0), game.Wins1)
	assert.Equal(t, int32(0), game.Wins2)
	assert.Equal(t, int32(2), game.Round)
}

func TestRecommitOverwrite(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	gameID := env.initGame(t, types.DefaultCoinPrecision)

	_, err := env.commit(t, env.priv1, gameID, rty.MoveRock, "first")
	require.NoError(t, err)
	// 截止前可以反悔，后值覆盖前值
	_, err = env.commit(t, env.priv1, gameID, rty.MoveLizard, "second")
	require.NoError(t, err)
	_, err = env.commit(t, env.priv2, gameID, rty.MovePaper, "p2")
	require.NoError(t, err)

	_, err = env.reveal(t, env.priv1, gameID, rty.MoveRock, "first")
	assert.Equal(t, rty.ErrRevealMismatch, err)
	_, err = env.reveal(t, env.priv1, gameID, rty.MoveLizard, "second")
	require.NoError(t, err)
	_, err = env.reveal(t, env.priv2, gameID, rty.MovePaper, "p2")
	require.NoError(t, err)

	// 蜥蜴吃布
	game := env.getGame(t, gameID)
	assert.Equal(t, int32(1), game.Wins1)
}

func TestRevealMismatch(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	gameID := env.initGame(t, types.DefaultCoinPrecision)

	// 未承诺先亮拳
	_, err := env.reveal(t, env.priv1, gameID, rty.MoveRock, "s")
	assert.Equal(t, rty.ErrRevealMismatch, err)

	_, err = env.commit(t, env.priv1, gameID, rty.MoveRock, "right-salt")
	require.NoError(t, err)
	_, err = env.reveal(t, env.priv1, gameID, rty.MoveRock, "wrong-salt")
	assert.Equal(t, rty.ErrRevealMismatch, err)
	_, err = env.reveal(t, env.priv1, gameID, rty.MovePaper, "right-salt")
	assert.Equal(t, rty.ErrRevealMismatch, err)
	_, err = env.reveal(t, env.priv1, gameID, rty.MoveRock, "right-salt")
	require.NoError(t, err)
}

func playRound(t *testing.T, env *testEnv, gameID string, move1, move2 int32) *types.Receipt {
	_, err := env.commit(t, env.priv1, gameID, move1, "r1")
	require.NoError(t, err)
	_, err = env.commit(t, env.priv2, gameID, move2, "r2")
	require.NoError(t, err)
	_, err = env.reveal(t, env.priv1, gameID, move1, "r1")
	require.NoError(t, err)
	receipt, err := env.reveal(t, env.priv2, gameID, move2, "r2")
	require.NoError(t, err)
	return receipt
}

func TestWinAndSettle(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	fee := 10 * types.DefaultCoinPrecision
	gameID := env.initGame(t, fee)

	playRound(t, env, gameID, rty.MovePaper, rty.MoveRock)
	receipt := playRound(t, env, gameID, rty.MoveSpock, rty.MoveScissors)

	// 两胜封顶，终局结算
	lastLog := receipt.Logs[len(receipt.Logs)-1]
	assert.Equal(t, int32(rty.TyLogRpslsClose), lastLog.Ty)

	game := env.getGame(t, gameID)
	assert.Equal(t, int32(rty.GameStatusDone), game.Status)
	assert.Equal(t, env.addr1, game.Winner)
	assert.Equal(t, int32(2), game.Wins1)
	assert.Equal(t, int32(0), game.Wins2)

	// 胜者通吃：赢一份报名费，败者赔一份
	acc1 := env.execAccount(t, env.addr1)
	assert.Equal(t, int64(0), acc1.Frozen)
	assert.Equal(t, 1000*types.DefaultCoinPrecision+fee, acc1.Balance)
	acc2 := env.execAccount(t, env.addr2)
	assert.Equal(t, int64(0), acc2.Frozen)
	assert.Equal(t, 1000*types.DefaultCoinPrecision-fee, acc2.Balance)

	// 在局指针已清除
	msg, err := env.exec.Query_GetActiveGameByAddr(&rty.QueryActiveGameByAddr{Addr: env.addr1})
	require.NoError(t, err)
	assert.Empty(t, msg.(*rty.ReplyActiveGame).GameId)

	// 终局后禁止一切动作
	_, err = env.commit(t, env.priv1, gameID, rty.MoveRock, "late")
	assert.Equal(t, rty.ErrGameFinished, err)
	_, err = env.reveal(t, env.priv1, gameID, rty.MoveRock, "late")
	assert.Equal(t, rty.ErrGameFinished, err)
	_, err = env.claim(t, env.priv1, gameID)
	assert.Equal(t, rty.ErrGameFinished, err)
}

func TestClaimTimeout(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	fee := 5 * types.DefaultCoinPrecision
	gameID := env.initGame(t, fee)

	_, err := env.commit(t, env.priv1, gameID, rty.MoveRock, "s")
	require.NoError(t, err)

	// 停摆窗口未满
	_, err = env.claim(t, env.priv1, gameID)
	assert.Equal(t, rty.ErrOpponentNotTimedOut, err)
	env.exec.SetEnv(1+DefaultRoundTimeoutBlocks, 1e9, 1)
	_, err = env.claim(t, env.priv1, gameID)
	assert.Equal(t, rty.ErrOpponentNotTimedOut, err)

	// 外人不得索胜
	env.exec.SetEnv(2+DefaultRoundTimeoutBlocks, 1e9, 1)
	_, err = env.claim(t, env.priv3, gameID)
	assert.Equal(t, rty.ErrNotAParticipant, err)

	receipt, err := env.claim(t, env.priv1, gameID)
	require.NoError(t, err)
	assert.Equal(t, int32(rty.TyLogRpslsClose), receipt.Logs[len(receipt.Logs)-1].Ty)

	game := env.getGame(t, gameID)
	assert.Equal(t, int32(rty.GameStatusDone), game.Status)
	assert.Equal(t, env.addr1, game.Winner)
	assert.Equal(t, 1000*types.DefaultCoinPrecision+fee, env.execAccount(t, env.addr1).Balance)
	assert.Equal(t, 1000*types.DefaultCoinPrecision-fee, env.execAccount(t, env.addr2).Balance)
}

func TestCommitWindowClosed(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	gameID := env.initGame(t, types.DefaultCoinPrecision)

	env.exec.SetEnv(2+DefaultRoundTimeoutBlocks, 1e9, 1)
	_, err := env.commit(t, env.priv1, gameID, rty.MoveRock, "s")
	assert.Equal(t, rty.ErrCommitWindowClosed, err)

	env.exec.SetEnv(2+2*DefaultRoundTimeoutBlocks, 1e9, 1)
	_, err = env.reveal(t, env.priv1, gameID, rty.MoveRock, "s")
	assert.Equal(t, rty.ErrRevealWindowClosed, err)
}

func TestCheckTx(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()

	tx := signTx(t, env.priv1, &rty.GameAction{
		Ty:    rty.GameActionReveal,
		Value: &rty.GameAction_Reveal{Reveal: &rty.GameReveal{GameId: "id", Move: 5, Salt: "s"}},
	})
	assert.Equal(t, types.ErrInvalidParam, env.exec.CheckTx(tx, 0))

	tx = signTx(t, env.priv1, &rty.GameAction{
		Ty:    rty.GameActionCommit,
		Value: &rty.GameAction_Commit{Commit: &rty.GameCommit{GameId: "id"}},
	})
	assert.Equal(t, types.ErrInvalidParam, env.exec.CheckTx(tx, 0))

	tx = signTx(t, env.priv1, &rty.GameAction{Ty: 99})
	assert.Equal(t, types.ErrActionNotSupport, env.exec.CheckTx(tx, 0))

	tx = signTx(t, env.priv1, &rty.GameAction{
		Ty:    rty.GameActionInit,
		Value: &rty.GameAction_Init{Init: &rty.GameInit{Player1: env.addr1, Player2: env.addr2, Fee: types.DefaultCoinPrecision}},
	})
	assert.Nil(t, env.exec.CheckTx(tx, 0))
}
