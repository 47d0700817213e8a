// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strconv"

	"github.com/33cn/chain33/common"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// 克制表：每式恰克两式、被两式所克，任意两个不同手式必分胜负
// 石头砸剪刀、压蜥蜴；布包石头、否史波克；剪刀剪布、剁蜥蜴；
// 蜥蜴吃布、毒史波克；史波克融石头、崩剪刀
var beats = [rty.MoveCount][2]int32{
	{rty.MoveScissors, rty.MoveLizard},
	{rty.MoveRock, rty.MoveSpock},
	{rty.MovePaper, rty.MoveLizard},
	{rty.MovePaper, rty.MoveSpock},
	{rty.MoveRock, rty.MoveScissors},
}

// IsValidMove 手式编号是否在合法区间内
func IsValidMove(move int32) bool {
	return move >= 0 && move < rty.MoveCount
}

// MakeCommitment 计算(move,salt)的承诺哈希，客户端和合约共用同一算法
func MakeCommitment(move int32, salt string) []byte {
	return common.Sha256([]byte(salt + ":" + strconv.Itoa(int(move))))
}

// resolveRound 单轮判定，入参已通过IsValidMove校验
func resolveRound(move1, move2 int32) int32 {
	if move1 == move2 {
		return rty.RoundResultDraw
	}
	for _, m := range beats[move1] {
		if m == move2 {
			return rty.RoundResultPlayer1
		}
	}
	return rty.RoundResultPlayer2
}
