package progression

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// Result reports what an engine operation did
type Result struct {
	LevelsGained   int
	SkillsUnlocked []string
	ClassChanged   bool
	NewClass       entities.Class

	// Log holds player facing lines in the order they happened
	Log []string

	// Warnings are non-fatal collaborator failures
	Warnings []string

	// Rejected is set when a validation rule refused the operation. The
	// character is unchanged and Message explains why.
	Rejected bool
	Message  string
}

func (r *Result) logf(format string, args ...any) {
	r.Log = append(r.Log, fmt.Sprintf(format, args...))
}

func (r *Result) warn(ctx context.Context, msg string) {
	slog.WarnContext(ctx, "progression warning", "warning", msg)
	r.Warnings = append(r.Warnings, msg)
}

func rejected(format string, args ...any) *Result {
	return &Result{Rejected: true, Message: fmt.Sprintf(format, args...)}
}
