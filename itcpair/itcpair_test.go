package itcpair_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sandglass/treeclocks/itcpair"
)

func TestEventAndJoinScenario2(t *testing.T) {
	// Scenario S2.
	c := qt.New(t)
	p0 := itcpair.New()
	p1 := p0.Fork()
	p2 := p1.Fork()

	c.Assert(p0.Event(), qt.IsNil)
	c.Assert(p0.Event(), qt.IsNil)
	c.Assert(p2.Event(), qt.IsNil)
	p0.Join(p2)

	c.Assert(p0.String(), qt.Equals, "(1, (0, 1)) | (0, 2, (0, 0, 1))")
}

func TestNewSeed(t *testing.T) {
	c := qt.New(t)
	p := itcpair.New()
	c.Assert(p.ID.String(), qt.Equals, "1")
	c.Assert(p.Timestamp.String(), qt.Equals, "0")
}
