package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alwazzan/goldbook"
	"github.com/google/subcommands"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "fetch the current gold rate per gram in KWD" }
func (*rateCmd) Usage() string {
	return `gbk rate

  Fetches the day's gold quote and prints the rate per gram in KWD, suitable
  for the -rate flag of rec and gfv. Quotes are cached for the day.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := goldbook.LatestGoldRate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching gold rate: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s KWD/g\n", rate.StringFixed(3))
	return subcommands.ExitSuccess
}
