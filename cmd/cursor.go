package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"genonaut/domain"
	"genonaut/utils/cursor"

	"github.com/spf13/cobra"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Encode or decode pagination cursors",
}

var cursorEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build a cursor from a sort timestamp, id and source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawTS, _ := cmd.Flags().GetString("ts")
		id, _ := cmd.Flags().GetInt64("id")
		rawSource, _ := cmd.Flags().GetString("source")

		ts, err := cursor.ParseTimestamp(rawTS)
		if err != nil {
			return fmt.Errorf("invalid --ts %q: %w", rawTS, err)
		}
		src, ok := domain.ParseSourceType(rawSource)
		if !ok {
			return fmt.Errorf("invalid --source %q: want items or auto", rawSource)
		}

		token, err := cursor.Encode(ts, id, src)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var cursorDecodeCmd = &cobra.Command{
	Use:   "decode <cursor>",
	Short: "Print the contents of a cursor as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decoded, err := cursor.Decode(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"id":     decoded.ID,
			"source": decoded.SourceType,
			"ts":     decoded.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	},
}

func init() {
	cursorEncodeCmd.Flags().String("ts", "", "sort timestamp (RFC 3339)")
	cursorEncodeCmd.Flags().Int64("id", 0, "content id")
	cursorEncodeCmd.Flags().String("source", string(domain.SourceTypeItems), "source type: items or auto")
	_ = cursorEncodeCmd.MarkFlagRequired("ts")
	_ = cursorEncodeCmd.MarkFlagRequired("id")

	cursorCmd.AddCommand(cursorEncodeCmd, cursorDecodeCmd)
}
