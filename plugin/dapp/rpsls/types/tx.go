// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// RpslsInitTxReq 构造开局交易的请求，由撮合方调用
type RpslsInitTxReq struct {
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	Fee        int64  `json:"fee"`
	ShouldInit bool   `json:"shouldInit"`
	TxFee      int64  `json:"txFee"`
}

// RpslsCommitTxReq 构造提交承诺交易的请求，commitment为十六进制哈希
type RpslsCommitTxReq struct {
	GameID     string `json:"gameId"`
	Commitment string `json:"commitment"`
	TxFee      int64  `json:"txFee"`
}

// RpslsRevealTxReq 构造亮拳交易的请求
type RpslsRevealTxReq struct {
	GameID string `json:"gameId"`
	Move   int32  `json:"move"`
	Salt   string `json:"salt"`
	TxFee  int64  `json:"txFee"`
}

// RpslsClaimTimeoutTxReq 构造超时索胜交易的请求
type RpslsClaimTimeoutTxReq struct {
	GameID string `json:"gameId"`
	TxFee  int64  `json:"txFee"`
}
