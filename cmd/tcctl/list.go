package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"traini8/internal/client"
	"traini8/internal/filter"
)

var listFilter filter.Criteria

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List training centers",
	Long:  `Fetches training centers once. Empty filters are not sent.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	f := listCmd.Flags()
	f.StringVar(&listFilter.City, filter.KeyCity, "", "Filter by city")
	f.StringVar(&listFilter.State, filter.KeyState, "", "Filter by state")
	f.StringVar(&listFilter.MinCapacity, "min-capacity", "", "Minimum student capacity")
	f.StringVar(&listFilter.Course, filter.KeyCourse, "", "Filter by offered course")
}

func runList(cmd *cobra.Command, args []string) error {
	centers, err := api.List(cmd.Context(), listFilter)
	if err != nil {
		return errors.New(client.Describe(err))
	}
	return printCenters(cmd.OutOrStdout(), centers)
}

// ── 输出 ──

func printCenters(w io.Writer, centers []client.TrainingCenter) error {
	if jsonOutput {
		return printJSON(w, centers)
	}
	if len(centers) == 0 {
		_, err := fmt.Fprintln(w, "No training centers found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCODE\tCITY\tSTATE\tCAPACITY\tCOURSES\tCREATED")
	for _, c := range centers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			c.ID, c.CenterName, c.CenterCode, c.Address.City, c.Address.State,
			c.StudentCapacity, strings.Join(c.CoursesOffered, ", "),
			time.UnixMilli(c.CreatedOn).Format("2006-01-02"),
		)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
