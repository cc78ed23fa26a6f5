// Package webhook implements soroscan-cli webhook management commands.
package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/soroscan/soroscan-go/cli/options"
	"github.com/soroscan/soroscan-go/pkg/soroapi"
	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

// NewCommands returns the 'webhook' command.
func NewCommands() []cli.Command {
	createFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "url, u",
			Usage: "Delivery endpoint (required)",
		},
		cli.StringSliceFlag{
			Name:  "trigger, t",
			Usage: "Event kind to fire on, can be given multiple times (required)",
		},
		cli.StringFlag{
			Name:  "contract",
			Usage: "Narrow the subscription to a single contract",
		},
		cli.StringFlag{
			Name:  "secret",
			Usage: "Signing secret, generated when neither --secret nor --server-secret is given",
		},
		cli.BoolFlag{
			Name:  "server-secret",
			Usage: "Let the server generate the signing secret",
		},
	}, options.API...)
	updateFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "url, u",
			Usage: "New delivery endpoint",
		},
		cli.StringSliceFlag{
			Name:  "trigger, t",
			Usage: "New trigger set, can be given multiple times",
		},
		cli.StringFlag{
			Name:  "status",
			Usage: "New delivery state, 'active' or 'paused'",
		},
	}, options.API...)

	return []cli.Command{{
		Name:  "webhook",
		Usage: "Manage webhook subscriptions",
		Subcommands: []cli.Command{
			{
				Name:   "create",
				Usage:  "Subscribe a new webhook",
				Action: createWebhook,
				Flags:  createFlags,
			},
			{
				Name:   "list",
				Usage:  "List webhooks of the configured credential",
				Action: listWebhooks,
				Flags:  options.API,
			},
			{
				Name:      "get",
				Usage:     "Show a single webhook",
				ArgsUsage: "<id>",
				Action:    getWebhook,
				Flags:     options.API,
			},
			{
				Name:      "update",
				Usage:     "Apply a partial update to a webhook",
				ArgsUsage: "<id>",
				Action:    updateWebhook,
				Flags:     updateFlags,
			},
			{
				Name:      "delete",
				Usage:     "Remove a webhook",
				ArgsUsage: "<id>",
				Action:    deleteWebhook,
				Flags:     options.API,
			},
		},
	}}
}

func createWebhook(ctx *cli.Context) error {
	req := soroapi.WebhookRequest{
		URL:        ctx.String("url"),
		Triggers:   ctx.StringSlice("trigger"),
		ContractID: ctx.String("contract"),
		Secret:     ctx.String("secret"),
	}
	if req.URL == "" {
		return cli.NewExitError("webhook URL is missing, use '--url'", 1)
	}
	if len(req.Triggers) == 0 {
		return cli.NewExitError("no triggers given, use '--trigger' at least once", 1)
	}
	if req.Secret == "" && !ctx.Bool("server-secret") {
		req.Secret = uuid.NewString()
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	wh, err := c.CreateWebhook(gctx, req)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Created webhook %s, store the secret now, it may not be shown again.\n", wh.ID)
	return dumpJSON(ctx, wh)
}

func listWebhooks(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	list, err := c.GetWebhooks(gctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	buf := bytes.NewBuffer(nil)
	tw := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	_, _ = tw.Write([]byte("ID\tURL\tStatus\tTriggers\n"))
	for _, wh := range list.Items {
		_, _ = tw.Write([]byte(fmt.Sprintf("%s\t%s\t%s\t%d\n",
			wh.ID, wh.URL, wh.Status, len(wh.Triggers))))
	}
	_, _ = tw.Write([]byte(fmt.Sprintf("Total:\t%d\n", list.TotalCount)))
	_ = tw.Flush()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func getWebhook(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("webhook ID is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	wh, err := c.GetWebhook(gctx, ctx.Args()[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, wh)
}

func updateWebhook(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("webhook ID is missing", 1)
	}
	upd := soroapi.WebhookUpdate{
		URL:      ctx.String("url"),
		Triggers: ctx.StringSlice("trigger"),
	}
	switch status := ctx.String("status"); result.WebhookStatus(status) {
	case "":
	case result.StatusActive, result.StatusPaused:
		upd.Status = result.WebhookStatus(status)
	default:
		return cli.NewExitError(fmt.Sprintf("invalid status %q, only 'active' and 'paused' can be requested", status), 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	wh, err := c.UpdateWebhook(gctx, ctx.Args()[0], upd)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, wh)
}

func deleteWebhook(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("webhook ID is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	if err := c.DeleteWebhook(gctx, ctx.Args()[0]); err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Deleted webhook %s.\n", ctx.Args()[0])
	return nil
}

func dumpJSON(ctx *cli.Context, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}
