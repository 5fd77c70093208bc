package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"traini8/internal/client"
	"traini8/internal/dto"
)

var draftFile string

var createCmd = &cobra.Command{
	Use:   "create -f draft.yaml",
	Short: "Create a training center from a YAML draft",
	Long: `Reads a training center draft from a YAML file ("-" for stdin), validates it
locally and submits it. Field errors are printed per field and nothing is sent.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&draftFile, "file", "f", "", "Draft YAML file, or - for stdin")
	_ = createCmd.MarkFlagRequired("file")
}

func runCreate(cmd *cobra.Command, args []string) error {
	draft, err := readDraft(cmd.InOrStdin(), draftFile)
	if err != nil {
		return err
	}

	form := client.NewFormController(api, logger)
	form.Update(func(d *client.Draft) { *d = draft })

	tc, err := form.Submit(cmd.Context())
	if err != nil {
		var ve *client.ValidationError
		if errors.As(err, &ve) {
			out := cmd.ErrOrStderr()
			for _, field := range ve.Fields.Fields() {
				fmt.Fprintf(out, "  %s: %s\n", field, ve.Fields[field])
			}
			return fmt.Errorf("draft has %d invalid field(s)", len(ve.Fields))
		}
		return errors.New(form.Banner())
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), tc)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created training center %s (id %d)\n", tc.CenterCode, tc.ID)
	return nil
}

// readDraft 解析 YAML 草稿；未出现的字段保持空值
func readDraft(stdin io.Reader, path string) (dto.TrainingCenterDraft, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return dto.TrainingCenterDraft{}, fmt.Errorf("open draft: %w", err)
		}
		defer f.Close()
		r = f
	}

	draft := dto.NewTrainingCenterDraft()
	if err := yaml.NewDecoder(r).Decode(&draft); err != nil && !errors.Is(err, io.EOF) {
		return dto.TrainingCenterDraft{}, fmt.Errorf("parse draft: %w", err)
	}
	return draft, nil
}
