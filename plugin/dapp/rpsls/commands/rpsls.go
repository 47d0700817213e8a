// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rpsls命令行
package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/33cn/chain33/common"
	jsonrpc "github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	"github.com/spf13/cobra"

	rty "github.com/33cn/rpsls/plugin/dapp/rpsls/types"
)

// RpslsCmd 猜拳对局命令
func RpslsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rpsls",
		Short: "rock-paper-scissors-lizard-spock game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		rpslsInitRawTxCmd(),
		rpslsCommitRawTxCmd(),
		rpslsRevealRawTxCmd(),
		rpslsClaimTimeoutRawTxCmd(),
		rpslsHashCmd(),
		rpslsQueryCmd(),
	)
	return cmd
}

func rpslsInitRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new game between two players",
		Run:   rpslsInit,
	}
	cmd.Flags().StringP("player1", "a", "", "address of player one")
	cmd.MarkFlagRequired("player1")
	cmd.Flags().StringP("player2", "b", "", "address of player two")
	cmd.MarkFlagRequired("player2")
	cmd.Flags().Float64P("fee", "f", 0, "entry fee per player (coins)")
	cmd.MarkFlagRequired("fee")
	cmd.Flags().BoolP("dryrun", "d", false, "derive game id only, do not create the game")
	return cmd
}

func rpslsInit(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	player1, _ := cmd.Flags().GetString("player1")
	player2, _ := cmd.Flags().GetString("player2")
	fee, _ := cmd.Flags().GetFloat64("fee")
	dryrun, _ := cmd.Flags().GetBool("dryrun")

	params := &rty.RpslsInitTxReq{
		Player1:    player1,
		Player2:    player2,
		Fee:        int64(fee * float64(types.DefaultCoinPrecision)),
		ShouldInit: !dryrun,
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "rpsls.RpslsInitTx", params, &res)
	ctx.RunWithoutMarshal()
}

func rpslsCommitRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit a hashed move for the current round",
		Run:   rpslsCommit,
	}
	cmd.Flags().StringP("gameID", "g", "", "game id")
	cmd.MarkFlagRequired("gameID")
	cmd.Flags().StringP("commitment", "c", "", "hex commitment hash, see the hash subcommand")
	cmd.MarkFlagRequired("commitment")
	return cmd
}

func rpslsCommit(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("gameID")
	commitment, _ := cmd.Flags().GetString("commitment")

	params := &rty.RpslsCommitTxReq{
		GameID:     gameID,
		Commitment: commitment,
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "rpsls.RpslsCommitTx", params, &res)
	ctx.RunWithoutMarshal()
}

func rpslsRevealRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed move with its salt",
		Run:   rpslsReveal,
	}
	cmd.Flags().StringP("gameID", "g", "", "game id")
	cmd.MarkFlagRequired("gameID")
	cmd.Flags().Int32P("move", "m", 0, "move: 0 rock, 1 paper, 2 scissors, 3 lizard, 4 spock")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("salt", "s", "", "salt used in the commitment")
	cmd.MarkFlagRequired("salt")
	return cmd
}

func rpslsReveal(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("gameID")
	move, _ := cmd.Flags().GetInt32("move")
	salt, _ := cmd.Flags().GetString("salt")

	params := &rty.RpslsRevealTxReq{
		GameID: gameID,
		Move:   move,
		Salt:   salt,
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "rpsls.RpslsRevealTx", params, &res)
	ctx.RunWithoutMarshal()
}

func rpslsClaimTimeoutRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim victory after the opponent timed out",
		Run:   rpslsClaimTimeout,
	}
	cmd.Flags().StringP("gameID", "g", "", "game id")
	cmd.MarkFlagRequired("gameID")
	return cmd
}

func rpslsClaimTimeout(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("gameID")

	params := &rty.RpslsClaimTimeoutTxReq{
		GameID: gameID,
	}
	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "rpsls.RpslsClaimTimeoutTx", params, &res)
	ctx.RunWithoutMarshal()
}

func rpslsHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute the commitment hash for a move and salt",
		Run:   rpslsHash,
	}
	cmd.Flags().Int32P("move", "m", 0, "move: 0 rock, 1 paper, 2 scissors, 3 lizard, 4 spock")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("salt", "s", "", "random salt, keep it secret until reveal")
	cmd.MarkFlagRequired("salt")
	return cmd
}

func rpslsHash(cmd *cobra.Command, args []string) {
	move, _ := cmd.Flags().GetInt32("move")
	salt, _ := cmd.Flags().GetString("salt")
	// 与合约一致的承诺算法
	hash := common.Sha256([]byte(salt + ":" + strconv.Itoa(int(move))))
	fmt.Println(hex.EncodeToString(hash))
}

func rpslsQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query game information",
		Run:   rpslsQuery,
	}
	cmd.Flags().StringP("gameID", "g", "", "query by game id")
	cmd.Flags().StringP("address", "a", "", "query by player address")
	cmd.Flags().Int32P("status", "s", 0, "game status: 1 playing, 2 done")
	cmd.Flags().Int64P("index", "i", 0, "cursor index for paging")
	cmd.Flags().BoolP("active", "t", false, "query the active game of the address")
	return cmd
}

func rpslsQuery(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("gameID")
	address, _ := cmd.Flags().GetString("address")
	status, _ := cmd.Flags().GetInt32("status")
	index, _ := cmd.Flags().GetInt64("index")
	active, _ := cmd.Flags().GetBool("active")

	params := rpctypes.Query4Jrpc{Execer: rty.RpslsX}
	if gameID != "" {
		params.FuncName = rty.FuncNameQueryGameByID
		params.Payload = types.MustPBToJSON(&rty.QueryGameById{GameId: gameID})
		var res rty.ReplyGame
		ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
		ctx.Run()
		return
	}
	if active && address != "" {
		params.FuncName = rty.FuncNameQueryActiveGameByAddr
		params.Payload = types.MustPBToJSON(&rty.QueryActiveGameByAddr{Addr: address})
		var res rty.ReplyActiveGame
		ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
		ctx.Run()
		return
	}
	if status != 0 {
		params.FuncName = rty.FuncNameQueryGameByStatusAndAddr
		params.Payload = types.MustPBToJSON(&rty.QueryGameListByStatusAndAddr{
			Status:  status,
			Address: address,
			Index:   index,
		})
		var res rty.ReplyGameList
		ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
		ctx.Run()
		return
	}
	fmt.Println("specify one of --gameID, --active with --address, or --status")
}
