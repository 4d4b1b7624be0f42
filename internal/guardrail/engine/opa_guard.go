package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"

	"team-chat-platform/backend/internal/guardrail/repository"
)

const guardrailQuery = "data.teamchat.guardrail.allow"

// Default Rego module used when an org has no guardrail rules of its own.
const defaultRegoModule = `package teamchat.guardrail

default allow = true
`

// OPAGuard evaluates org guardrail rules using OPA Rego.
type OPAGuard struct {
	ruleRepo repository.Repository
}

// NewOPAGuard returns an OPA-based install guard.
func NewOPAGuard(ruleRepo repository.Repository) *OPAGuard {
	return &OPAGuard{ruleRepo: ruleRepo}
}

// HealthCheck verifies that the in-process OPA Rego engine can compile and
// evaluate the default module. Does not call the rule repo or database.
// Returns nil on success.
func (g *OPAGuard) HealthCheck(ctx context.Context) error {
	modules := map[string]string{"rule_0.rego": defaultRegoModule}
	compiler, err := ast.CompileModules(modules)
	if err != nil {
		return fmt.Errorf("compile default module: %w", err)
	}
	q := rego.New(
		rego.Query(guardrailQuery),
		rego.Compiler(compiler),
		rego.Input(minimalInput()),
	)
	rs, err := q.Eval(ctx)
	if err != nil {
		return fmt.Errorf("eval default module: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return fmt.Errorf("guardrail query returned no result")
	}
	return nil
}

// AllowInstall evaluates the org's enabled guardrail rules for the install.
// An org with no rules, or rules that fail to load or evaluate, allows:
// the guardrail is a deny overlay, not the authority on the operation.
func (g *OPAGuard) AllowInstall(ctx context.Context, orgID, actorID, kind, name string) (bool, error) {
	var sources []string
	rules, err := g.ruleRepo.GetEnabledRulesByOrg(ctx, orgID)
	if err != nil {
		log.Printf("guardrail: failed to load rules for org %s: %v", orgID, err)
	} else {
		for _, r := range rules {
			if r.Enabled && r.Rules != "" {
				sources = append(sources, r.Rules)
			}
		}
	}
	if len(sources) == 0 {
		sources = []string{defaultRegoModule}
	}

	input := map[string]interface{}{
		"org_id":   orgID,
		"actor_id": actorID,
		"kind":     kind,
		"name":     name,
	}

	allow, err := g.evaluate(ctx, sources, input)
	if err != nil {
		log.Printf("guardrail: evaluation failed for org %s: %v, allowing", orgID, err)
		return true, nil
	}
	return allow, nil
}

func (g *OPAGuard) evaluate(ctx context.Context, sources []string, input map[string]interface{}) (bool, error) {
	modules := make(map[string]string)
	for i, src := range sources {
		modules[fmt.Sprintf("rule_%d.rego", i)] = src
	}

	compiler, err := ast.CompileModules(modules)
	if err != nil {
		return false, fmt.Errorf("compile rules: %w", err)
	}

	q := rego.New(
		rego.Query(guardrailQuery),
		rego.Compiler(compiler),
		rego.Input(input),
	)
	rs, err := q.Eval(ctx)
	if err != nil {
		return false, fmt.Errorf("eval rules: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		// No rule defined allow at all; treat as no objection.
		return true, nil
	}
	v, ok := rs[0].Expressions[0].Value.(bool)
	if !ok {
		return false, fmt.Errorf("guardrail query returned non-boolean %T", rs[0].Expressions[0].Value)
	}
	return v, nil
}

func minimalInput() map[string]interface{} {
	return map[string]interface{}{
		"org_id":   "",
		"actor_id": "",
		"kind":     "",
		"name":     "",
	}
}
