// headerprobe fetches a URL and prints the typed response headers described
// by a schema file.
package main

import (
	"context"
	"os"
)

func main() {
	err := newRootCommand().ExecuteContext(context.Background())
	os.Exit(exitCodeFor(err))
}
