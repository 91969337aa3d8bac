package cmd

import (
	"fmt"

	"genonaut/di"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Maintain the denormalised tag_ids projection",
}

var tagsReprojectCmd = &cobra.Command{
	Use:   "reproject",
	Short: "Rebuild tag_ids from the content_tags junction",
	Long: `Rebuild tag_ids from the content_tags junction.

With --id only that record is rebuilt; without it every record of --source is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		id, _ := cmd.Flags().GetInt64("id")

		cfg, err := loadConfig(false)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		usecase := di.NewApplicationComponents(pool, cfg).TagLinkUsecase
		if id != 0 {
			if err := usecase.Reproject(ctx, id, source); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reprojected %s/%d\n", source, id)
			return nil
		}

		updated, err := usecase.ReprojectSource(ctx, source)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reprojected %d %s records\n", updated, source)
		return nil
	},
}

func init() {
	tagsReprojectCmd.Flags().String("source", "", "source type: items or auto")
	tagsReprojectCmd.Flags().Int64("id", 0, "content id (default: every record of the source)")
	_ = tagsReprojectCmd.MarkFlagRequired("source")

	tagsCmd.AddCommand(tagsReprojectCmd)
}
