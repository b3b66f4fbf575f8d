package vcdgen

import (
	"io/ioutil"
	"testing"

	"github.com/efficientgo/tools/core/pkg/testutil"
	"github.com/go-kit/log"
)

func TestSpec_Validate(t *testing.T) {
	testutil.Ok(t, DefaultSpec(100*MiB).Validate())

	noMulti := DefaultSpec(MiB)
	noMulti.MultiBitSignals = 0
	noMulti.Widths = nil
	testutil.Ok(t, noMulti.Validate())

	for _, tcase := range []struct {
		name   string
		modify func(s *Spec)
	}{
		{name: "negative single-bit count", modify: func(s *Spec) { s.SingleBitSignals = -1 }},
		{name: "negative multi-bit count", modify: func(s *Spec) { s.MultiBitSignals = -1 }},
		{name: "no widths", modify: func(s *Spec) { s.Widths = nil }},
		{name: "odd width", modify: func(s *Spec) { s.Widths = []int{8, 12} }},
		{name: "no timescale", modify: func(s *Spec) { s.Timescale = "" }},
		{name: "zero time step", modify: func(s *Spec) { s.TimeStep = 0 }},
		{name: "negative budget", modify: func(s *Spec) { s.ToggleBudget = -1 }},
		{name: "zero report interval", modify: func(s *Spec) { s.ReportInterval = 0 }},
		{name: "unnamed root", modify: func(s *Spec) { s.Root = Scope{} }},
		{name: "dotted child", modify: func(s *Spec) { s.Root.Children[0].Name = "c.pu" }},
		{name: "keyword root", modify: func(s *Spec) { s.Root = Scope{Name: "$end"} }},
		{name: "keyword child", modify: func(s *Spec) { s.Root.Children[2].Name = "$upscope" }},
		{name: "duplicate siblings", modify: func(s *Spec) {
			s.Root = Scope{Name: "top", Children: []Scope{{Name: "u"}, {Name: "u"}}}
		}},
		{name: "duplicate nested siblings", modify: func(s *Spec) {
			s.Root.Children[0].Children = append(s.Root.Children[0].Children, Scope{Name: "alu"})
		}},
		{name: "child with space", modify: func(s *Spec) { s.Root.Children[1].Children[0].Name = "ca che" }},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			s := DefaultSpec(MiB)
			tcase.modify(&s)
			testutil.NotOk(t, s.Validate())

			_, err := Generate(log.NewNopLogger(), ioutil.Discard, s)
			testutil.NotOk(t, err)
		})
	}

	// Same name under different parents is fine: paths stay unique.
	cousins := DefaultSpec(MiB)
	cousins.Root = Scope{Name: "top", Children: []Scope{
		{Name: "a", Children: []Scope{{Name: "u"}}},
		{Name: "b", Children: []Scope{{Name: "u"}}},
	}}
	testutil.Ok(t, cousins.Validate())
}
