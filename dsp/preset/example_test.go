package preset_test

import (
	"os"

	"github.com/cwbudde/algo-galois/dsp/engine"
	"github.com/cwbudde/algo-galois/dsp/preset"
)

func ExamplePreset_Save() {
	p := preset.Preset{
		Name: "Folded",
		Params: map[engine.ParamID]float64{
			engine.ParamBaseWave: 16,
			engine.ParamFold:     0.5,
		},
	}

	_ = p.Save(os.Stdout)
	// Output:
	// name: Folded
	// params:
	//   wf_base_wave: 16
	//   wf_fold: 0.5
}
