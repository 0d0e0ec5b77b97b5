//go:build purego

package biquad

import (
	"testing"

	archregistry "github.com/cwbudde/algo-galois/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestProcessBlockDispatch_PuregoUsesGeneric(t *testing.T) {
	entry := archregistry.Global.Lookup(cpu.Features{HasAVX2: true})
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "generic" {
		t.Fatalf("expected generic implementation in purego, got %q", entry.Name)
	}
}
