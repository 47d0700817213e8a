// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rpsls合约类型定义
package types

import (
	"reflect"

	"github.com/33cn/chain33/types"
)

var (
	actionName = map[string]int32{
		NameInitAction:         GameActionInit,
		NameCommitAction:       GameActionCommit,
		NameRevealAction:       GameActionReveal,
		NameClaimTimeoutAction: GameActionClaimTimeout,
	}
	logmap = map[int64]*types.LogInfo{
		TyLogRpslsInit:   {Ty: reflect.TypeOf(ReceiptGame{}), Name: "LogRpslsInit"},
		TyLogRpslsCommit: {Ty: reflect.TypeOf(ReceiptGame{}), Name: "LogRpslsCommit"},
		TyLogRpslsReveal: {Ty: reflect.TypeOf(ReceiptGame{}), Name: "LogRpslsReveal"},
		TyLogRpslsClose:  {Ty: reflect.TypeOf(ReceiptGame{}), Name: "LogRpslsClose"},
	}
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, ExecerRpsls)
	types.RegFork(RpslsX, InitFork)
	types.RegExec(RpslsX, InitExecutor)
}

// InitFork 注册分叉信息
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(RpslsX, "Enable", 0)
}

// InitExecutor 注册执行器类型
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(RpslsX, NewType(cfg))
}

// RpslsType 执行器类型定义
type RpslsType struct {
	types.ExecTypeBase
}

// NewType 创建执行器类型
func NewType(cfg *types.Chain33Config) *RpslsType {
	c := &RpslsType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetName 返回执行器名称
func (t *RpslsType) GetName() string {
	return RpslsX
}

// GetPayload 返回payload结构
func (t *RpslsType) GetPayload() types.Message {
	return &GameAction{}
}

// GetTypeMap 返回action名称与id的映射
func (t *RpslsType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap 返回log解码映射
func (t *RpslsType) GetLogMap() map[int64]*types.LogInfo {
	return logmap
}
