package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunREPL drives one interactive session over in/out. The loop survives
// every turn failure and ends only on EOF or an exit word.
func RunREPL(ctx context.Context, svc Service, in io.Reader, out io.Writer) error {
	sessionID := uuid.New().String()
	logger := zap.L().Named("assistant.repl")

	fmt.Fprintln(out, "HR Assistant ready.")
	fmt.Fprintln(out, "Type 'exit' to quit.")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	// Pasted utterances routinely exceed the 64KiB scanner default.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprint(out, ">> ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nGoodbye!")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "quit", "bye":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		reply, err := svc.HandleUtterance(ctx, sessionID, line)
		if err != nil {
			logger.Error("turn failed", zap.Error(err))
			fmt.Fprintln(out, msgTryAgain)
			continue
		}
		fmt.Fprintln(out, reply)
	}
}
