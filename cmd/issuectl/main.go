// Command issuectl creates, updates and queries GitHub issues.
//
// Usage:
//
//	issuectl create octo/hello --title "Crash on start" -l bug
//	issuectl update hello 12 --add-label triaged --remove-label needs-triage
//	issuectl list octo/hello --state all --since 7d -n 20
//
// Configuration comes from GITHUB_TOKEN, GITHUB_OWNER, GITHUB_API_URL and
// SLACK_WEBHOOK_URL, which may also be placed in a .env file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := newApp(os.Stdin, os.Stdout, os.Stderr).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
