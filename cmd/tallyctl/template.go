package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Tally/internal/matrix"
)

func templateCmd() *cobra.Command {
	var alternatives, criteria int
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a blank decision file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMatrix(cmd, output, matrix.New(alternatives, criteria))
		},
	}

	cmd.Flags().IntVar(&alternatives, "alternatives", 3, "number of alternatives")
	cmd.Flags().IntVar(&criteria, "criteria", 4, "number of criteria")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func resizeCmd() *cobra.Command {
	var file, output string
	var alternatives, criteria int

	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Change the number of alternatives or criteria of a decision file",
		Long: `Resize keeps every existing name, weight, type and value whose slot still
exists. New alternatives and criteria get generated names, zero values and
zero weights; new criteria are benefits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := matrix.Load(file)
			if err != nil {
				return err
			}
			n, m := prev.Size()
			if cmd.Flags().Changed("alternatives") {
				n = alternatives
			}
			if cmd.Flags().Changed("criteria") {
				m = criteria
			}
			return writeMatrix(cmd, output, matrix.Resize(prev, n, m))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "decision file to resize")
	cmd.Flags().IntVar(&alternatives, "alternatives", 0, "new number of alternatives")
	cmd.Flags().IntVar(&criteria, "criteria", 0, "new number of criteria")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func writeMatrix(cmd *cobra.Command, output string, m matrix.Matrix) error {
	if output != "" {
		if err := matrix.Save(output, m); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
		return nil
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode matrix: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
