package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute builds the root command with a --verbose flag and runs it. The
// config file log level applies unless --verbose asks for debug output.
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	_, root := newRoot()
	return root.ExecuteContext(ctx)
}

func newRoot() (*CLI, *cobra.Command) {
	var verbose bool

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd, args); err != nil {
			return err
		}
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}
	return c, root
}
