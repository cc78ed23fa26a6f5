package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestGetTimeoutContext(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		start := time.Now()
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		actualCtx, cancel := GetTimeoutContext(ctx)
		defer cancel()
		end := time.Now()
		dl, _ := actualCtx.Deadline()
		require.True(t, start.Before(dl) && dl.Before(end.Add(DefaultTimeout)))
	})

	t.Run("set", func(t *testing.T) {
		start := time.Now()
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.Duration("timeout", time.Duration(20), "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		actualCtx, cancel := GetTimeoutContext(ctx)
		defer cancel()
		end := time.Now()
		dl, _ := actualCtx.Deadline()
		require.True(t, start.Before(dl) && dl.Before(end.Add(time.Nanosecond*20)))
	})
}

func TestGetClient(t *testing.T) {
	t.Run("no endpoint", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		_, err := GetClient(ctx)
		require.Error(t, err)
	})

	t.Run("endpoint flag", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.String(EndpointFlag, "http://localhost:1234", "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		c, err := GetClient(ctx)
		require.Nil(t, err)
		require.Equal(t, "http://localhost:1234", c.Endpoint())
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "soroscan.yml")
		require.NoError(t, os.WriteFile(path, []byte("Endpoint: http://localhost:4321\n"), 0o644))

		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.String("config-file", path, "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		c, err := GetClient(ctx)
		require.Nil(t, err)
		require.Equal(t, "http://localhost:4321", c.Endpoint())
	})

	t.Run("missing config file", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.String("config-file", filepath.Join(t.TempDir(), "nope.yml"), "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		_, err := GetClient(ctx)
		require.Error(t, err)
	})
}
