package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
)

// TransitionPolicy decides whether an opportunity may move between two stages.
type TransitionPolicy interface {
	Allow(from, to Stage) error
}

// PermissiveTransitions allows every move between valid stages, including
// leaving Closed or Lost.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allow(from, to Stage) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: unknown stage %q", apperrors.ErrValidation, to)
	}
	return nil
}

// TerminalTransitions forbids moving an opportunity out of Closed or Lost.
type TerminalTransitions struct{}

func (TerminalTransitions) Allow(from, to Stage) error {
	if err := (PermissiveTransitions{}).Allow(from, to); err != nil {
		return err
	}
	if from != to && (from == StageClosed || from == StageLost) {
		return fmt.Errorf("%w: stage %s is terminal", apperrors.ErrValidation, from)
	}
	return nil
}

// TransitionPolicyByName resolves the configured policy name. Unknown names
// fall back to the permissive policy.
func TransitionPolicyByName(name string) TransitionPolicy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "terminal":
		return TerminalTransitions{}
	default:
		return PermissiveTransitions{}
	}
}
