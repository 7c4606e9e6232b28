package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/suppd/internal/core"
	"github.com/sandevgo/suppd/pkg/log"
)

const noContextPlaceholder = "No previous interaction history available."

// formatContext renders the provenance-tagged items into the single
// context block handed to the model: customer history first, then
// knowledge base, each group enumerated and omitted entirely when
// empty. An identity footer is appended when a display name is known.
func formatContext(items []core.ContextItem, customerName, customerID string) string {
	var history, kb []core.ContextItem
	for _, item := range items {
		if item.Provenance == core.ProvenanceCustomerHistory {
			history = append(history, item)
		} else {
			kb = append(kb, item)
		}
	}

	var sb strings.Builder

	if len(history) > 0 {
		sb.WriteString("Previous interaction context:\n")
		for i, item := range history {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, item.Memory)
		}
	}

	if len(kb) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Relevant knowledge base information:\n")
		for i, item := range kb {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, item.Memory)
		}
	}

	if sb.Len() == 0 {
		sb.WriteString(noContextPlaceholder)
	}

	if customerName != "" {
		fmt.Fprintf(&sb, "\nCustomer name: %s (ID: %s)", customerName, customerID)
	}

	return sb.String()
}

// trimToBudget drops context items until the formatted block fits the
// token budget: trailing knowledge base items go first, then trailing
// history items.
func (a *Agent) trimToBudget(ctx context.Context, items []core.ContextItem) []core.ContextItem {
	if a.tokenBudget <= 0 {
		return items
	}

	trimmed := 0
	for len(items) > 0 {
		block := formatContext(items, "", "")
		if a.counter.Count(block) <= a.tokenBudget {
			break
		}
		if i := lastIndexByProvenance(items, core.ProvenanceKnowledgeBase); i >= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items = items[:len(items)-1]
		}
		trimmed++
	}

	if trimmed > 0 {
		log.FromCtx(ctx).Debug().
			Int("dropped", trimmed).
			Int("budget", a.tokenBudget).
			Msg("trimmed context block to token budget")
	}
	return items
}

func lastIndexByProvenance(items []core.ContextItem, p core.Provenance) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Provenance == p {
			return i
		}
	}
	return -1
}
