// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// Query_GetGameById 按局号查对局全量状态，任意高度重放结果一致
func (r *Rpsls) Query_GetGameById(in *rty.QueryGameById) (types.Message, error) {
	game, err := queryGame(r, in.GetGameId())
	if err != nil {
		return nil, err
	}
	return &rty.ReplyGame{Game: game}, nil
}

// Query_GetGameListByIds 批量查询
func (r *Rpsls) Query_GetGameListByIds(in *rty.QueryGameInfos) (types.Message, error) {
	var games []*rty.Game
	for _, id := range in.GetGameIds() {
		game, err := queryGame(r, id)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return &rty.ReplyGameList{Games: games}, nil
}

// Query_GetGameListByStatusAndAddr 按状态(及可选地址)游标翻页
func (r *Rpsls) Query_GetGameListByStatusAndAddr(in *rty.QueryGameListByStatusAndAddr) (types.Message, error) {
	localDB := r.GetLocalDB()
	count := in.GetCount()
	if count <= 0 || count > MaxCount {
		count = DefaultCount
	}
	direction := in.GetDirection()

	var prefix, key []byte
	if in.GetAddress() == "" {
		prefix = calcGameStatusIndexPrefix(in.GetStatus())
		if in.GetIndex() != 0 {
			key = calcGameStatusIndexKey(in.GetStatus(), in.GetIndex())
		}
	} else {
		prefix = calcGameAddrIndexPrefix(in.GetStatus(), in.GetAddress())
		if in.GetIndex() != 0 {
			key = calcGameAddrIndexKey(in.GetStatus(), in.GetAddress(), in.GetIndex())
		}
	}
	values, err := localDB.List(prefix, key, count, direction)
	if err != nil {
		return nil, err
	}
	var games []*rty.Game
	for _, value := range values {
		var record rty.GameRecord
		err = types.Decode(value, &record)
		if err != nil {
			continue
		}
		game, err := queryGame(r, record.GameId)
		if err != nil {
			glog.Error("Query_GetGameListByStatusAndAddr", "gameID", record.GameId, "err", err)
			continue
		}
		games = append(games, game)
	}
	return &rty.ReplyGameList{Games: games}, nil
}

// Query_GetActiveGameByAddr 查地址当前在局指针及对局状态
func (r *Rpsls) Query_GetActiveGameByAddr(in *rty.QueryActiveGameByAddr) (types.Message, error) {
	value, err := r.GetStateDB().Get(calcActiveGameKey(in.GetAddr()))
	if err != nil || len(value) == 0 {
		// 不在局中也是合法答案
		return &rty.ReplyActiveGame{}, nil
	}
	gameID := string(value)
	game, err := queryGame(r, gameID)
	if err != nil {
		return nil, err
	}
	return &rty.ReplyActiveGame{GameId: gameID, Game: game}, nil
}

func queryGame(r *Rpsls, id string) (*rty.Game, error) {
	data, err := r.GetStateDB().Get(calcGameKey(id))
	if err != nil {
		glog.Error("queryGame", "gameID", id, "err", err)
		return nil, err
	}
	var game rty.Game
	err = types.Decode(data, &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}
