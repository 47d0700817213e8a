// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// action类型id
const (
	GameActionInit = iota + 1
	GameActionCommit
	GameActionReveal
	GameActionClaimTimeout
)

// action名称，须与GameAction中oneof的字段名一致
const (
	NameInitAction         = "Init"
	NameCommitAction       = "Commit"
	NameRevealAction       = "Reveal"
	NameClaimTimeoutAction = "ClaimTimeout"
)

// 对局状态
const (
	// GameStatusPlaying 进行中，winner为空
	GameStatusPlaying = iota + 1
	// GameStatusDone 终局，winner已定，状态不可再变更
	GameStatusDone
)

// log类型id
const (
	TyLogRpslsInit   = 860
	TyLogRpslsCommit = 861
	TyLogRpslsReveal = 862
	TyLogRpslsClose  = 863
)

// query函数名
const (
	FuncNameQueryGameByID            = "GetGameById"
	FuncNameQueryGameListByIds       = "GetGameListByIds"
	FuncNameQueryGameByStatusAndAddr = "GetGameListByStatusAndAddr"
	FuncNameQueryActiveGameByAddr    = "GetActiveGameByAddr"
)

// 五个拳式，胜负关系见executor中的克制表
const (
	MoveRock = iota
	MovePaper
	MoveScissors
	MoveLizard
	MoveSpock
	MoveCount
)

// 轮次胜负
const (
	RoundResultDraw = iota
	RoundResultPlayer1
	RoundResultPlayer2
)

var (
	// RpslsX 执行器名称
	RpslsX = "rpsls"
	// ExecerRpsls 执行器名称字节形式
	ExecerRpsls = []byte(RpslsX)
)
