// Package query implements read-only soroscan-cli commands.
package query

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/soroscan/soroscan-go/cli/options"
	"github.com/soroscan/soroscan-go/pkg/soroapi"
)

// NewCommands returns the query command set (event, contract, tx, ledger,
// account).
func NewCommands() []cli.Command {
	eventListFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "contract",
			Usage: "Only events of the given contract",
		},
		cli.StringFlag{
			Name:  "type",
			Usage: "Only events of the given type",
		},
		cli.Uint64Flag{
			Name:  "start-ledger",
			Usage: "First ledger of the queried range",
		},
		cli.Uint64Flag{
			Name:  "end-ledger",
			Usage: "Last ledger of the queried range",
		},
	}, append(options.Pagination, options.API...)...)
	contractListFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "type",
			Usage: "Only contracts of the given kind (token, amm, ...)",
		},
		cli.StringFlag{
			Name:  "creator",
			Usage: "Only contracts deployed by the given account",
		},
		cli.StringFlag{
			Name:  "search",
			Usage: "Match against contract names and addresses",
		},
		cli.BoolFlag{
			Name:  "verified",
			Usage: "Only contracts with verified source",
		},
		cli.BoolFlag{
			Name:  "unverified",
			Usage: "Only contracts without verified source",
		},
	}, append(options.Pagination, options.API...)...)
	txListFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "contract",
			Usage: "Only transactions invoking the given contract",
		},
		cli.StringFlag{
			Name:  "account",
			Usage: "Only transactions submitted by the given account",
		},
		cli.StringFlag{
			Name:  "status",
			Usage: "Only transactions with the given status (pending, success, failed)",
		},
	}, append(options.Pagination, options.API...)...)
	listFlags := append(append([]cli.Flag{}, options.Pagination...), options.API...)

	return []cli.Command{
		{
			Name:  "event",
			Usage: "Query contract events",
			Subcommands: []cli.Command{{
				Name:   "list",
				Usage:  "List indexed contract events",
				Action: listEvents,
				Flags:  eventListFlags,
			}},
		},
		{
			Name:  "contract",
			Usage: "Query tracked contracts",
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Usage:  "List tracked contracts",
					Action: listContracts,
					Flags:  contractListFlags,
				},
				{
					Name:      "get",
					Usage:     "Show a single contract",
					ArgsUsage: "<contractID>",
					Action:    getContract,
					Flags:     options.API,
				},
			},
		},
		{
			Name:  "tx",
			Usage: "Query transactions",
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Usage:  "List indexed transactions",
					Action: listTransactions,
					Flags:  txListFlags,
				},
				{
					Name:      "get",
					Usage:     "Show a single transaction",
					ArgsUsage: "<hash>",
					Action:    getTransaction,
					Flags:     options.API,
				},
				{
					Name:      "poll",
					Usage:     "Poll a transaction until it reaches a terminal status",
					ArgsUsage: "<hash>",
					Action:    pollTransaction,
					Flags:     options.API,
				},
			},
		},
		{
			Name:  "ledger",
			Usage: "Query ledgers",
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Usage:  "List closed ledgers",
					Action: listLedgers,
					Flags:  listFlags,
				},
				{
					Name:      "get",
					Usage:     "Show a single ledger",
					ArgsUsage: "<sequence>",
					Action:    getLedger,
					Flags:     options.API,
				},
			},
		},
		{
			Name:  "account",
			Usage: "Query accounts",
			Subcommands: []cli.Command{{
				Name:      "get",
				Usage:     "Show a single account",
				ArgsUsage: "<accountID>",
				Action:    getAccount,
				Flags:     options.API,
			}},
		},
	}
}

func getPagination(ctx *cli.Context) soroapi.Pagination {
	return soroapi.Pagination{
		First:  ctx.Int("first"),
		Last:   ctx.Int("last"),
		After:  ctx.String("after"),
		Before: ctx.String("before"),
	}
}

func dumpJSON(ctx *cli.Context, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}

func listEvents(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	page, err := c.GetEvents(gctx, soroapi.EventFilter{
		ContractID:  ctx.String("contract"),
		EventType:   ctx.String("type"),
		StartLedger: uint32(ctx.Uint64("start-ledger")),
		EndLedger:   uint32(ctx.Uint64("end-ledger")),
		Pagination:  getPagination(ctx),
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, page)
}

func listContracts(ctx *cli.Context) error {
	var verified *bool
	if ctx.Bool("verified") {
		v := true
		verified = &v
	} else if ctx.Bool("unverified") {
		v := false
		verified = &v
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	page, err := c.GetContracts(gctx, soroapi.ContractFilter{
		Type:       ctx.String("type"),
		Creator:    ctx.String("creator"),
		Search:     ctx.String("search"),
		Verified:   verified,
		Pagination: getPagination(ctx),
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, page)
}

func getContract(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("contract ID is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	ctr, err := c.GetContract(gctx, ctx.Args()[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, ctr)
}

func listTransactions(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	page, err := c.GetTransactions(gctx, soroapi.TransactionFilter{
		ContractID: ctx.String("contract"),
		Account:    ctx.String("account"),
		Status:     ctx.String("status"),
		Pagination: getPagination(ctx),
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, page)
}

func getTransaction(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("transaction hash is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	tx, err := c.GetTransaction(gctx, ctx.Args()[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, tx)
}

func pollTransaction(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("transaction hash is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	tx, err := c.PollTransaction(gctx, ctx.Args()[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, tx)
}

func listLedgers(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	page, err := c.GetLedgers(gctx, getPagination(ctx))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, page)
}

func getLedger(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("ledger sequence is missing", 1)
	}
	seq, err := strconv.ParseUint(ctx.Args()[0], 10, 32)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid ledger sequence: %s", ctx.Args()[0]), 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	ledger, err := c.GetLedger(gctx, uint32(seq))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, ledger)
}

func getAccount(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("account ID is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	acc, err := c.GetAccount(gctx, ctx.Args()[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, acc)
}
