package main

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"traini8/internal/client"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactively filter training centers",
	Long: `Reads filter edits from stdin, one per line, as key=value
(keys: city, state, minCapacity, course; an empty value clears the filter).
Edits are debounced; the list is reprinted after each fetch. "dismiss" clears
the error banner. The final filter is fetched once more on EOF.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	list := client.NewListController(api, cfg.Client.Debounce, logger)

	var outMu sync.Mutex
	render := func() {
		outMu.Lock()
		defer outMu.Unlock()

		criteria := list.Criteria()
		fmt.Fprintf(out, "\n── filter: %q ──\n", criteria.Key())
		if banner := list.Banner(); banner != "" {
			fmt.Fprintf(out, "! %s\n", banner)
			return
		}
		if err := printCenters(out, list.Centers()); err != nil {
			logger.Warn("输出列表失败", zap.Error(err))
		}
	}
	list.OnChange = render
	list.Start()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "dismiss":
			list.DismissError()
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "expected key=value, got %q\n", line)
			continue
		}
		if err := list.SetField(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		list.Close()
		return fmt.Errorf("read stdin: %w", err)
	}

	// 输入结束：跳过静默期，按最终条件再取一次
	_ = list.Refresh(cmd.Context())
	list.Close()
	return nil
}
