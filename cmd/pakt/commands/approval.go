package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.pakt.dev/pakt/internal/app"
	"go.pakt.dev/pakt/internal/core/domain"
)

// promptApproval renders the resolved plan and asks for confirmation before
// any project is touched. With auto set the plan is printed and accepted
// without reading input.
func promptApproval(in io.Reader, out io.Writer, auto bool) app.ApprovalFunc {
	return func(batch *domain.ActionBatch) bool {
		printPlan(out, batch)
		if auto {
			return true
		}

		_, _ = fmt.Fprint(out, "Proceed? [y/N] ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func printPlan(out io.Writer, batch *domain.ActionBatch) {
	for _, op := range batch.Operations() {
		sign := "+"
		if op.Action == domain.ActionUninstall {
			sign = "-"
		}
		_, _ = fmt.Fprintf(out, "%s %s (%s)\n", sign, op.Package.Identity, op.TargetName)
	}
}
