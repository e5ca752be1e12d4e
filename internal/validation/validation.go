// Package validation checks case input against the field rules in
// rules.cue before it reaches the calculator or storage.
package validation

import (
	_ "embed"
	"fmt"
	"math"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/mmynk/peticao/internal/models"
)

//go:embed rules.cue
var rulesSource string

// FieldError is one failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failed field.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages returns the failure messages in field order.
func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = f.Message
	}
	return out
}

// cue.Context is not safe for concurrent use.
var (
	mu      sync.Mutex
	once    sync.Once
	ctx     *cue.Context
	rules   cue.Value
	loadErr error
)

// load compiles the embedded rules once. A compile failure is returned on
// every call.
func load() error {
	once.Do(func() {
		ctx = cuecontext.New()
		rules = ctx.CompileString(rulesSource, cue.Filename("rules.cue"))
		if err := rules.Err(); err != nil {
			loadErr = fmt.Errorf("invalid validation rules: %s", cueerrors.Details(err, nil))
		}
	})
	return loadErr
}

type checker struct {
	section string
	errs    []FieldError
	err     error
}

// field runs the checks of rules.<section>.<name> against value and records
// the message of the first one that fails under label.
func (c *checker) field(name, label string, value any) {
	if c.err != nil {
		return
	}
	checks := rules.LookupPath(cue.ParsePath("rules." + c.section + "." + name))
	if !checks.Exists() {
		c.err = fmt.Errorf("no validation rule for %s.%s", c.section, name)
		return
	}

	encoded := ctx.Encode(value)
	iter, err := checks.List()
	if err != nil {
		c.err = fmt.Errorf("validation rule %s.%s is not a list: %w", c.section, name, err)
		return
	}
	for iter.Next() {
		rule := iter.Value()
		check := rule.LookupPath(cue.ParsePath("check"))
		if err := check.Unify(encoded).Validate(cue.Concrete(true)); err != nil {
			msg, _ := rule.LookupPath(cue.ParsePath("msg")).String()
			c.fail(label, msg)
			return
		}
	}
}

func (c *checker) fail(label, msg string) {
	c.errs = append(c.errs, FieldError{Field: label, Message: msg})
}

func (c *checker) result() error {
	if c.err != nil {
		return c.err
	}
	if len(c.errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.errs}
}

func run(section string, fn func(c *checker)) error {
	if err := load(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()

	c := &checker{section: section}
	fn(c)
	return c.result()
}

// ValidateQualification checks the party identification.
func ValidateQualification(q models.Qualification) error {
	return run("qualification", func(c *checker) {
		c.field("claimantName", "claimantName", strings.TrimSpace(q.ClaimantName))
		c.field("claimantCpf", "claimantCpf", strings.TrimSpace(q.ClaimantCPF))
		c.field("claimantAddress", "claimantAddress", strings.TrimSpace(q.ClaimantAddress))
		c.field("defendantName", "defendantName", strings.TrimSpace(q.DefendantName))
		c.field("defendantCnpj", "defendantCnpj", strings.TrimSpace(q.DefendantCNPJ))
		c.field("defendantAddress", "defendantAddress", strings.TrimSpace(q.DefendantAddress))
	})
}

// ValidateFacts checks the employment facts.
func ValidateFacts(f models.Facts) error {
	return run("facts", func(c *checker) {
		c.field("admissionDate", "admissionDate", f.AdmissionDate)
		c.field("terminationDate", "terminationDate", f.TerminationDate)
		c.field("position", "position", strings.TrimSpace(f.Position))
		if math.IsNaN(f.Salary) || math.IsInf(f.Salary, 0) {
			c.fail("salary", "Salário inválido")
		} else {
			c.field("salary", "salary", f.Salary)
		}
		c.field("workSchedule", "workSchedule", strings.TrimSpace(f.WorkSchedule))
		c.field("description", "description", strings.TrimSpace(f.Description))
	})
}

// ValidateClaims checks the claim selection.
func ValidateClaims(claims []models.ClaimSelection) error {
	return run("claims", func(c *checker) {
		types := make([]string, 0, len(claims))
		for _, cl := range claims {
			types = append(types, strings.TrimSpace(cl.Type))
		}
		c.field("items", "claims", types)
		for i, t := range types {
			c.field("claimType", fmt.Sprintf("claims[%d]", i), t)
		}
	})
}

// ValidateEvidence checks the attached proofs.
func ValidateEvidence(refs []models.EvidenceRef) error {
	return run("evidence", func(c *checker) {
		digests := make([]string, 0, len(refs))
		for _, r := range refs {
			digests = append(digests, r.Digest)
		}
		c.field("items", "evidence", digests)
		for i, r := range refs {
			prefix := fmt.Sprintf("evidence[%d].", i)
			c.field("name", prefix+"name", strings.TrimSpace(r.Name))
			c.field("size", prefix+"size", r.Size)
			c.field("description", prefix+"description", r.Description)
			c.field("digest", prefix+"digest", r.Digest)
		}
	})
}
