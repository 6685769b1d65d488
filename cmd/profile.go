package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arunpublic/BLPP-LLVM/analytics"
	"github.com/arunpublic/BLPP-LLVM/runtimeprofile"
)

var profileCmd = &cobra.Command{
	Use:   "profile <profile-file>",
	Short: "Inspect a captured path profile",
	Long: `profile decodes a captured runtime profile (the header-table format
the instrumented binary's record_path_sum calls write) and either prints
the hottest paths per procedure or, with --query, runs an ad-hoc SQL
query against the path_counts table.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().String("query", "", "Run this SQL query against the path_counts table instead of printing top paths")
	profileCmd.Flags().Int("top", 10, "Number of hottest paths to print when --query is not given")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	path := args[0]
	query, _ := cmd.Flags().GetString("query")
	top, _ := cmd.Flags().GetInt("top")

	f, err := os.Open(path)
	if err != nil {
		analytics.ReportEvent(analytics.ProfileLoadFailed)
		return fmt.Errorf("profile: open %s: %w", path, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		fmt.Printf("profile %s: %s\n", path, humanize.Bytes(uint64(info.Size())))
	}

	p, err := runtimeprofile.Decode(f)
	if err != nil {
		analytics.ReportEvent(analytics.ProfileLoadFailed)
		return fmt.Errorf("profile: decode %s: %w", path, err)
	}
	analytics.ReportEvent(analytics.ProfileLoaded)

	ctx := cmd.Context()
	store, err := runtimeprofile.OpenStore(ctx, p)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	defer store.Close()

	if query != "" {
		analytics.ReportEvent(analytics.ProfileQueried)
		rows, err := store.Query(ctx, query)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		for rows.Next() {
			if err := rows.Scan(ptrs...); err != nil {
				return fmt.Errorf("profile: %w", err)
			}
			fmt.Println(vals...)
		}
		return rows.Err()
	}

	hottest, err := store.TopPaths(ctx, top)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	for _, row := range hottest {
		fmt.Printf("proc %d\tpath %d\tcount %s\n", row.ProcID, row.PathID, humanize.Comma(int64(row.ExecCount)))
	}
	return nil
}
