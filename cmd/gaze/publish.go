package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gaze/archive"
	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/engine"
)

func newPublishCmd(opts *options) *cobra.Command {
	var item content.Item
	var typ string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a node to the archive, it appears in the next session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openArchive()
			if err != nil {
				return err
			}
			if store == nil {
				return errNoArchive
			}
			defer store.Close()

			item.Type = content.Type(typ)
			g := engine.New(engine.Options{
				Rand:     opts.rng(),
				Logger:   opts.logger,
				Listener: archive.NewRecorder(store, opts.logger),
			})
			_, published, err := g.Publish(item, engine.Viewport{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			brand.Fprint(out, "published")
			fmt.Fprintf(out, " %s %s %q\n", published.ID, published.Type.Label(), published.Title)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&typ, "type", "t", string(content.TypeThought), "REVIEW, MUSIC, THOUGHT, CINEMA or VOICE")
	f.StringVar(&item.Title, "title", "", "title (required)")
	f.StringVar(&item.Subtitle, "subtitle", "", "subtitle or author")
	f.StringVar(&item.Content, "content", "", "body text (required)")
	f.IntVar(&item.Rating, "rating", 0, "rating from 0 to 5")
	f.StringVar(&item.Link, "link", "", "source link")
	f.StringVar(&item.Image, "image", "", "image URL, selects the larger node size")
	return cmd
}
