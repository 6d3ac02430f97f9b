// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Load reads a plan from a Starlark file. The file must define a 'plan'
// list of instruction strings; it may define a 'mode' string, which
// defaults to WALK. Loading does not validate the plan.
func Load(path string) (plan *Plan, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, path, nil, starlark.StringDict{})
	if err != nil {
		return
	}

	value, ok := globals["plan"]
	if !ok {
		err = ErrPlanMissing
		return
	}

	seq, ok := value.(starlark.Sequence)
	if !ok {
		err = ErrPlanList
		return
	}

	var lines []string

	elems := seq.Iterate()
	defer elems.Done()

	var elem starlark.Value
	for elems.Next(&elem) {
		line, ok := starlark.AsString(elem)
		if !ok {
			err = ErrPlanList
			return
		}
		lines = append(lines, line)
	}

	mode := MODE_WALK
	if value, ok = globals["mode"]; ok {
		mode, ok = starlark.AsString(value)
		if !ok {
			err = ErrModeString
			return
		}
	}

	plan = &Plan{
		Lines: lines,
		Mode:  mode,
	}

	return
}
