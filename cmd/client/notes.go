package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/rest-notes/pkg/notesclient"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			notes, err := c.client.ListNotes(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tUPDATED")
			for _, n := range notes {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", n.ID, n.Title, n.UpdatedAt)
			}

			return tw.Flush()
		},
	}
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			note, err := c.client.GetNote(ctx, id)
			if err != nil {
				return err
			}

			c.printNote(note)

			return nil
		},
	}
}

func (c *cli) createCmd() *cobra.Command {
	var req notesclient.CreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			note, err := c.client.CreateNote(ctx, req)
			if err != nil {
				return err
			}

			slogx.Info(ctx, "note created", slogx.NoteID(note.ID))
			c.printNote(note)

			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&req.Content, "content", "c", "", "note content")

	return cmd
}

func (c *cli) updateCmd() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update the given fields of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req notesclient.UpdateRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("content") {
				req.Content = &content
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			note, err := c.client.UpdateNote(ctx, id, req)
			if err != nil {
				return err
			}

			slogx.Info(ctx, "note updated", slogx.NoteID(note.ID))
			c.printNote(note)

			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")

	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := c.client.DeleteNote(ctx, id); err != nil {
				return err
			}

			slogx.Info(ctx, "note deleted", slogx.NoteID(id))
			fmt.Fprintf(c.out, "Note deleted: %d\n", id)

			return nil
		},
	}
}

func (c *cli) printNote(n notesclient.Note) {
	fmt.Fprintf(c.out, "ID:      %d\nTitle:   %s\nCreated: %s\nUpdated: %s\n\n%s\n",
		n.ID, n.Title, n.CreatedAt, n.UpdatedAt, n.Content)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", s)
	}

	return id, nil
}
