package sheetops

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dmarkov/sheetops/pkg/sheetops/ops"
)

// Step is one declared operation in a pipeline file.
type Step struct {
	Op   string            `mapstructure:"op"`
	Args map[string]string `mapstructure:"args"`
}

// Pipeline is a declarative list of operations for one worksheet.
type Pipeline struct {
	// Sheet names the worksheet the steps apply to. Empty means the
	// first sheet.
	Sheet string `mapstructure:"sheet"`
	// Output is an optional save path; empty edits in place.
	Output string `mapstructure:"output"`
	// Steps are applied in declaration order.
	Steps []Step `mapstructure:"steps"`
}

// LoadPipeline reads a pipeline definition from path. The format (YAML,
// JSON, or TOML) is chosen by file extension.
func LoadPipeline(path string) (*Pipeline, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read pipeline %s: %w", path, err)
	}

	var p Pipeline
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("parse pipeline %s: %w", path, err)
	}
	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("pipeline %s declares no steps", path)
	}

	return &p, nil
}

// Ops resolves every step through the registry, in order.
func (p *Pipeline) Ops(reg *Registry) ([]ops.Op, error) {
	built := make([]ops.Op, 0, len(p.Steps))
	for i, step := range p.Steps {
		op, err := reg.Build(step.Op, step.Args)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		built = append(built, op)
	}
	return built, nil
}
