package commands

import (
	"fmt"
	"io"

	"github.com/ngo-tools/grant-forge/pkg/services/generator"

	"github.com/spf13/cobra"
)

func NewTypesCmd(svc generator.Service, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported document types",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range svc.Types() {
				if _, err := fmt.Fprintf(out, "%-10s %s\n", t, t.DisplayName()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
