package usecase

import "context"

const (
	PromptApplySchools = "This may reset scores. Do you want to apply school changes and regenerate schedules?"
	PromptRegenerate   = "This may reset scores. Do you want to regenerate schedule?"
	PromptReset        = "This will reset the tournament to the default schools and clear all scores. Continue?"
)

// Confirmer is the yes/no gate in front of destructive actions. The
// presentation layer supplies it; a nil Confirmer never confirms.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	if f == nil {
		return false
	}
	return f(ctx, prompt)
}

// Confirmed answers every prompt with the same fixed decision.
func Confirmed(decision bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return decision })
}

func confirmed(ctx context.Context, c Confirmer, prompt string) bool {
	if c == nil {
		return false
	}
	return c.Confirm(ctx, prompt)
}
