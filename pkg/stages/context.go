package stages

import (
	"github.com/fieldworks/farmgate/pkg/types"
)

// IntakeContext is the per-run annotation state. Annotating stages set the
// boolean flags; the terminal stage consumes the derived names. Flags are
// write-once-true within a run: no stage ever resets one.
type IntakeContext struct {
	Request types.Request

	HighPriority bool
	Weekend      bool
	NonRegular   bool
	NonActive    bool
}

// NewContext creates an intake context for one request.
func NewContext(req types.Request) *IntakeContext {
	return &IntakeContext{Request: req}
}

// ArticleName derives the decorated article name. Suffixes apply in fixed
// order: -NR, then -HP, then -weekend.
func (c *IntakeContext) ArticleName() string {
	name := c.Request.Article
	if c.NonRegular {
		name += "-NR"
	}
	if c.HighPriority {
		name += "-HP"
	}
	if c.Weekend {
		name += "-weekend"
	}
	return name
}

// FarmerName derives the decorated farmer name. Suffix order: -NR, -NA,
// -weekend.
func (c *IntakeContext) FarmerName() string {
	name := c.Request.Farmer
	if c.NonRegular {
		name += "-NR"
	}
	if c.NonActive {
		name += "-NA"
	}
	if c.Weekend {
		name += "-weekend"
	}
	return name
}

// Date derives the decorated date: -NR only.
func (c *IntakeContext) Date() string {
	d := c.Request.Date
	if c.NonRegular {
		d += "-NR"
	}
	return d
}

// Quantity passes the requested quantity through unmodified.
func (c *IntakeContext) Quantity() int {
	return c.Request.Quantity
}
