package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zhmistake/maker"
)

func makersCmd(opts Options) *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "makers",
		Short: "List the registered perturbation strategies",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			names := maker.Names()
			if all {
				names = append([]string{maker.NameNoChange}, names...)
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(opts.Stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&all, "all", false, "include the NoChange sentinel")
	return c
}
