// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 所有错误均为前置条件失败，交易整体回退，不产生任何状态写入
var (
	// ErrGameFinished 对局已终结，禁止任何动作
	ErrGameFinished = errors.New("ErrGameFinished")
	// ErrNotAParticipant 调用方不是对局双方之一
	ErrNotAParticipant = errors.New("ErrNotAParticipant")
	// ErrCommitWindowClosed 提交阶段已过截止高度
	ErrCommitWindowClosed = errors.New("ErrCommitWindowClosed")
	// ErrRevealWindowClosed 亮拳阶段已过截止高度
	ErrRevealWindowClosed = errors.New("ErrRevealWindowClosed")
	// ErrRevealMismatch 亮出的(move,salt)与所存承诺哈希不符
	ErrRevealMismatch = errors.New("ErrRevealMismatch")
	// ErrOpponentNotTimedOut 停摆窗口未满，不能索取超时胜
	ErrOpponentNotTimedOut = errors.New("ErrOpponentNotTimedOut")
	// ErrGameFeeAmount 报名费超出允许区间
	ErrGameFeeAmount = errors.New("ErrGameFeeAmount")
	// ErrGameSamePlayer 双方地址相同，无法开局
	ErrGameSamePlayer = errors.New("ErrGameSamePlayer")
	// ErrPlayerInGame 选手已有未终结的对局
	ErrPlayerInGame = errors.New("ErrPlayerInGame")
)
