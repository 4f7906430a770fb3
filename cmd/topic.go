package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alwazzan/goldbook/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a page of the user manual" }
func (*topicCmd) Usage() string {
	return `gbk topic [<topic> ...]

  Prints the manual pages for the given topics. Without arguments it prints
  the table of contents; 'gbk topic "*"' prints the whole manual.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	manual, err := docs.Topics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(manual)

	return subcommands.ExitSuccess
}
