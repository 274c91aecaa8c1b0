// planctl runs the planning pipeline from the terminal, without the HTTP
// server: `plan` prints the final plan, `stream` prints one event per line.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/dto"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/planner"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/schema"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/sources"
)

var (
	prompt   string
	srcList  []string
	chanList []string
	timezone string
)

func validatedInputs() (domain.PlanningInputs, error) {
	return schema.ValidateInputs(domain.PlanningInputs{
		Prompt:           prompt,
		SelectedSources:  srcList,
		SelectedChannels: chanList,
		Timezone:         timezone,
	})
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Run the pipeline and print the final campaign plan as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := validatedInputs()
			if err != nil {
				return err
			}

			p := planner.New(sources.NewStatic())
			plan, err := p.Assemble(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		},
	}
}

func newStreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stream",
		Short: "Run the pipeline and print one stream frame per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := validatedInputs()
			if err != nil {
				return err
			}

			p := planner.New(sources.NewStatic())
			emitter := p.Run(inputs)

			enc := json.NewEncoder(cmd.OutOrStdout())
			for {
				event, ok := emitter.Next(cmd.Context())
				if !ok {
					return nil
				}

				frame := dto.StreamFrame{}
				switch {
				case event.Stage != "":
					frame.Status = &dto.StreamStatus{Stage: string(event.Stage)}
				case event.Partial != nil:
					frame.Partial = event.Partial
				case event.Final != nil:
					frame.Final = event.Final
				case event.Err != nil:
					frame.Error = &dto.StreamError{Message: event.Err.Error()}
				}

				if err := enc.Encode(frame); err != nil {
					return err
				}
			}
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "planctl",
		Short: "Generate multi-channel campaign plans from the command line",
	}

	root.PersistentFlags().StringVarP(&prompt, "prompt", "p", "", "campaign prompt (required)")
	root.PersistentFlags().StringSliceVarP(&srcList, "sources", "s", nil, "data source ids")
	root.PersistentFlags().StringSliceVarP(&chanList, "channels", "c", nil, "delivery channel ids")
	root.PersistentFlags().StringVarP(&timezone, "timezone", "t", "", "IANA timezone (default "+schema.DefaultTimezone+")")

	root.AddCommand(newPlanCmd(), newStreamCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
