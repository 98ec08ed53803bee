package service

import (
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/dtapi/booking-go/internal/domain/model"
)

// DefaultEligibilityExpression matches translators on the job's language pair
// and, when the job names a region, on region as well.
const DefaultEligibilityExpression = `translator.language_from == job.language_from ` +
	`&& translator.language_to == job.language_to ` +
	`&& (job.region == '' || translator.region == job.region)`

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// EligibilityPolicy decides which translators may see or receive a job.
// The matching rule is an injected JMESPath expression evaluated against a
// {"job": ..., "translator": ...} document, so deployments can swap the rule
// without code changes.
type EligibilityPolicy struct {
	expression string
	evaluator  JMESPathEvaluator
}

// NewEligibilityPolicy validates the expression and returns a policy.
// An empty expression falls back to DefaultEligibilityExpression.
func NewEligibilityPolicy(expression string, evaluator JMESPathEvaluator) (*EligibilityPolicy, error) {
	if strings.TrimSpace(expression) == "" {
		expression = DefaultEligibilityExpression
	}
	if evaluator == nil {
		evaluator = jmespathLibEvaluator{}
	}
	if err := evaluator.Validate(expression); err != nil {
		return nil, fmt.Errorf("invalid eligibility expression: %w", err)
	}
	return &EligibilityPolicy{expression: expression, evaluator: evaluator}, nil
}

// Eligible evaluates the policy for one job/translator pair. The inputs are
// generic documents (typically the JSON forms of the model types) so the
// expression can reference any of their fields.
func (p *EligibilityPolicy) Eligible(job, translator map[string]any) (bool, error) {
	result, err := p.evaluator.Evaluate(p.expression, map[string]any{
		"job":        job,
		"translator": translator,
	})
	if err != nil {
		return false, fmt.Errorf("evaluate eligibility: %w", err)
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("eligibility expression returned %T, want boolean", result)
	}
	return matched, nil
}

// EligibleTranslator evaluates the policy against typed model values.
func (p *EligibilityPolicy) EligibleTranslator(job *model.Job, translator *model.Translator) (bool, error) {
	return p.Eligible(jobDocument(job), translatorDocument(translator))
}

// jobDocument exposes the job fields the matching expression may reference.
func jobDocument(j *model.Job) map[string]any {
	return map[string]any{
		"id":            j.ID,
		"status":        string(j.Status),
		"customer_id":   j.CustomerID,
		"title":         j.Title,
		"language_from": j.LanguageFrom,
		"language_to":   j.LanguageTo,
		"region":        j.Region,
		"flagged":       j.Flagged,
	}
}

func translatorDocument(t *model.Translator) map[string]any {
	return map[string]any{
		"id":            t.ID,
		"name":          t.Name,
		"language_from": t.LanguageFrom,
		"language_to":   t.LanguageTo,
		"region":        t.Region,
		"active":        t.Active,
	}
}
