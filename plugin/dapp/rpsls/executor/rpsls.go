// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor rpsls执行器：两人五式猜拳，承诺-亮拳两阶段出招，
// 三局两胜，超时可索胜，终局划转托管资金
package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

var glog = log.New("module", "execs.rpsls")

var driverName = rty.RpslsX

// Init 注册执行器
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	if name != driverName {
		panic("rpsls executor can not be renamed")
	}
	driverName = name
	drivers.Register(cfg, driverName, newRpsls, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType 初始化过程比较重量级，有很多reflect，所以弄成全局的
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Rpsls{}))
}

// GetName 返回执行器名称
func GetName() string {
	return newRpsls().GetName()
}

// Rpsls 执行器
type Rpsls struct {
	drivers.DriverBase
}

func newRpsls() drivers.Driver {
	r := &Rpsls{}
	r.SetChild(r)
	r.SetExecutorType(types.LoadExecutorType(driverName))
	return r
}

// GetDriverName 返回注册时的驱动名
func (r *Rpsls) GetDriverName() string {
	return driverName
}

// CheckTx 交易静态校验，动态前置条件在Exec阶段判定
func (r *Rpsls) CheckTx(tx *types.Transaction, index int) error {
	var action rty.GameAction
	if err := types.Decode(tx.GetPayload(), &action); err != nil {
		return err
	}
	switch action.Ty {
	case rty.GameActionInit:
		init := action.GetInit()
		if init == nil || init.Player1 == "" || init.Player2 == "" {
			return types.ErrInvalidParam
		}
		if init.Player1 == init.Player2 {
			return rty.ErrGameSamePlayer
		}
	case rty.GameActionCommit:
		commit := action.GetCommit()
		if commit == nil || commit.GameId == "" || len(commit.Commitment) == 0 {
			return types.ErrInvalidParam
		}
	case rty.GameActionReveal:
		reveal := action.GetReveal()
		if reveal == nil || reveal.GameId == "" || !IsValidMove(reveal.Move) {
			return types.ErrInvalidParam
		}
	case rty.GameActionClaimTimeout:
		claim := action.GetClaimTimeout()
		if claim == nil || claim.GameId == "" {
			return types.ErrInvalidParam
		}
	default:
		return types.ErrActionNotSupport
	}
	return nil
}
