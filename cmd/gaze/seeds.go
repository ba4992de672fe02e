package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gaze/content"
)

func newSeedsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seeds",
		Short: "List the content the constellation starts with",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openArchive()
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			items, err := opts.loadItems(cmd.Context(), store)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, it := range items {
				size := "text"
				if it.HasImage() {
					size = "image"
				}
				rows = append(rows, []string{
					it.ID,
					string(it.Type.Icon()) + " " + it.Type.Label(),
					truncate(it.Title, 32),
					truncate(it.Subtitle, 24),
					size,
					ratingCell(it.Rating),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "TYPE", "TITLE", "SUBTITLE", "SIZE", "RATING"}, rows)
			return nil
		},
	}
}

func ratingCell(rating int) string {
	if rating <= 0 {
		return "-"
	}
	return content.Stars(rating) + " " + strconv.Itoa(rating)
}
