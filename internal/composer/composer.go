// Package composer renders user selections into the instruction pair sent to
// the generation provider. Composition is pure: same inputs, byte-identical
// output, no I/O.
package composer

import (
	"fmt"
	"strings"

	"specforge/internal/catalog"
	"specforge/internal/spec"
)

// Request is the composed instruction pair for one generation call.
type Request struct {
	System string
	User   string
}

const (
	// SentinelSubLabel replaces an empty sub-capability selection so a module
	// block never renders an empty list.
	SentinelSubLabel = "Core feature focus"

	// DefaultUserInstruction is sent when the user supplied no free-form text.
	DefaultUserInstruction = "Design the system based on selected modules."

	noneToken    = "None specified"
	defaultToken = "Default"

	moduleSeparator = "\n------------------\n"
)

const roleStatement = `You are a Principal Software Architect. Generate a high-fidelity implementation specification as a single JSON object.
Break the requirements into atomic, implementable tasks. Each task must carry detailed logic, a test strategy, and a priority.`

// Compose builds the system and user instruction strings from the four
// selection artifacts. Module order and source order are preserved as given.
func Compose(cfg spec.StackConfig, modules []spec.SelectedModule, sources []spec.ReferenceSource, freeText string) Request {
	var b strings.Builder
	b.WriteString(roleStatement)
	b.WriteString("\n\n")

	writeSources(&b, sources)
	writeModules(&b, modules)
	writeStack(&b, cfg)

	user := strings.TrimSpace(freeText)
	if user == "" {
		user = DefaultUserInstruction
	}
	return Request{System: strings.TrimRight(b.String(), "\n") + "\n", User: user}
}

func writeSources(b *strings.Builder, sources []spec.ReferenceSource) {
	if len(sources) == 0 {
		return
	}
	b.WriteString("PROJECT DOCUMENTS PROVIDED:\n")
	b.WriteString("Strictly adhere to the business logic, style guides, and constraints defined within them.\n")
	for _, src := range sources {
		fmt.Fprintf(b, "--- DOCUMENT: %s ---\n", src.Name)
		b.WriteString(src.Content)
		if !strings.HasSuffix(src.Content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("--- END DOCUMENT ---\n")
	}
	b.WriteString("\n")
}

func writeModules(b *strings.Builder, modules []spec.SelectedModule) {
	if len(modules) == 0 {
		b.WriteString("No specific blueprints selected.\n\n")
		return
	}
	b.WriteString("SELECTED ARCHITECTURAL MODULES (PRIMARY CONTEXT):\n")
	blocks := make([]string, 0, len(modules))
	for _, m := range modules {
		blocks = append(blocks, moduleBlock(m))
	}
	b.WriteString(strings.Join(blocks, moduleSeparator))
	b.WriteString("\n\n")
}

func moduleBlock(m spec.SelectedModule) string {
	var b strings.Builder
	bp, known := catalog.Lookup(m.BlueprintID)
	if known {
		fmt.Fprintf(&b, "MODULE: %s: %s\n", bp.Name, bp.Prompt)
	} else {
		// Blueprint no longer in the catalog: fall back to the stored copy.
		fmt.Fprintf(&b, "MODULE: %s\n", m.DisplayName)
	}
	b.WriteString("SUB-MODULES TO BE INCLUDED:\n")
	labels := m.ChosenSubLabels
	if len(labels) == 0 {
		labels = []string{SentinelSubLabel}
	}
	for _, label := range labels {
		if known {
			if sub, ok := bp.Sub(label); ok {
				fmt.Fprintf(&b, "  - %s: %s\n", sub.Label, sub.Description)
				continue
			}
		}
		fmt.Fprintf(&b, "  - %s\n", label)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeStack(b *strings.Builder, cfg spec.StackConfig) {
	b.WriteString("TECH STACK (MANDATORY):\n")
	fmt.Fprintf(b, "FRAMEWORK: %s\n", cfg.Framework)
	fmt.Fprintf(b, "STYLING: %s\n", cfg.Styling)
	fmt.Fprintf(b, "BACKEND: %s\n", cfg.Backend)
	fmt.Fprintf(b, "TOOLING: %s\n", joinOr(cfg.Tooling, defaultToken))
	fmt.Fprintf(b, "NOTIFICATIONS: %s\n", joinOr(cfg.NotificationProviders, noneToken))
	fmt.Fprintf(b, "PAYMENTS: %s\n", joinOr(cfg.PaymentProviders, defaultToken))
	custom := strings.TrimSpace(cfg.FreeText)
	if custom == "" {
		custom = "None"
	}
	fmt.Fprintf(b, "CUSTOM CONTEXT: %s\n", custom)
}

// joinOr joins a multi-valued field, substituting an explicit token for the
// empty set so the prompt never contains a dangling "KEY:" line.
func joinOr(values []string, empty string) string {
	if len(values) == 0 {
		return empty
	}
	return strings.Join(values, ", ")
}
