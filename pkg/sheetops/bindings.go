package sheetops

import (
	"fmt"

	"github.com/dmarkov/sheetops/pkg/sheetops/ops"
)

// DefaultRegistry returns a registry with every built-in operation
// bound to its name.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("merge", buildMerge)
	r.Register("remove", buildRemove)
	r.Register("copy", buildCopy)
	r.Register("add", buildAdd)
	r.Register("replace", buildReplace)
	r.Register("extract", buildExtract)
	return r
}

func buildMerge(args map[string]string) (ops.Op, error) {
	target, err := requireArg(args, "target")
	if err != nil {
		return nil, err
	}
	source, err := requireArg(args, "source")
	if err != nil {
		return nil, err
	}
	return ops.MergeColumns{Target: target, Source: source, Separator: args["separator"]}, nil
}

func buildRemove(args map[string]string) (ops.Op, error) {
	header, err := requireArg(args, "header")
	if err != nil {
		return nil, err
	}
	return ops.RemoveColumn{Header: header}, nil
}

func buildCopy(args map[string]string) (ops.Op, error) {
	source, err := requireArg(args, "source")
	if err != nil {
		return nil, err
	}
	target, err := requireArg(args, "target")
	if err != nil {
		return nil, err
	}
	return ops.CopyColumn{Source: source, Target: target}, nil
}

func buildAdd(args map[string]string) (ops.Op, error) {
	header, err := requireArg(args, "header")
	if err != nil {
		return nil, err
	}
	return ops.AddColumn{Header: header, Fill: args["fill"]}, nil
}

func buildReplace(args map[string]string) (ops.Op, error) {
	header, err := requireArg(args, "header")
	if err != nil {
		return nil, err
	}
	pattern, err := requireArg(args, "pattern")
	if err != nil {
		return nil, err
	}
	return ops.RegexReplace{Header: header, Pattern: pattern, Replacement: args["replacement"]}, nil
}

func buildExtract(args map[string]string) (ops.Op, error) {
	header, err := requireArg(args, "header")
	if err != nil {
		return nil, err
	}
	return ops.ExtractColumn{Header: header}, nil
}

func requireArg(args map[string]string, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == "" {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	return v, nil
}
