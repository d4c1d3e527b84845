package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/rest-notes/pkg/notesclient"
)

const (
	envAPIURL      = "NOTES_API_URL"
	defaultAPIURL  = "http://localhost:8080"
	requestTimeout = 30 * time.Second
)

type cli struct {
	out      io.Writer
	addr     string
	logLevel string
	client   *notesclient.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	addr := os.Getenv(envAPIURL)
	if addr == "" {
		addr = defaultAPIURL
	}

	root := &cobra.Command{
		Use:           "notes",
		Short:         "Manage notes through the REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := slogx.InitGlobal(cmd.ErrOrStderr(), slogx.Settings{Level: c.logLevel, Pretty: true}); err != nil {
				return fmt.Errorf("init logger: %v", err)
			}

			client, err := notesclient.New(notesclient.NewOptions(c.addr))
			if err != nil {
				return fmt.Errorf("new notes client: %v", err)
			}
			c.client = client

			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&c.addr, "addr", addr, "notes API base URL (env "+envAPIURL+")")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level")

	root.AddCommand(
		c.listCmd(),
		c.getCmd(),
		c.createCmd(),
		c.updateCmd(),
		c.deleteCmd(),
		c.exportCmd(),
	)

	return root
}
