package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gaze/archive"
)

func newArchiveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect the archive of published and archived threads",
	}

	var published, archived bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List archive entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if published && archived {
				return fmt.Errorf("--published and --archived are mutually exclusive")
			}
			store, err := opts.openArchive()
			if err != nil {
				return err
			}
			if store == nil {
				return errNoArchive
			}
			defer store.Close()

			filter := archive.FilterAll
			switch {
			case published:
				filter = archive.FilterPublished
			case archived:
				filter = archive.FilterArchived
			}

			entries, err := store.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					truncate(e.Item.ID, 8),
					e.Item.Type.Label(),
					truncate(e.Item.Title, 32),
					e.StoredAt.Format("2006-01-02 15:04"),
					entryFlags(e),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "TYPE", "TITLE", "STORED", "FLAGS"}, rows)
			return nil
		},
	}
	list.Flags().BoolVar(&published, "published", false, "only items published from a session")
	list.Flags().BoolVar(&archived, "archived", false, "only items archived from the thread view")

	cmd.AddCommand(list)
	return cmd
}

func entryFlags(e archive.Entry) string {
	switch {
	case e.Published && e.Archived:
		return "published,archived"
	case e.Published:
		return "published"
	case e.Archived:
		return "archived"
	}
	return ""
}
