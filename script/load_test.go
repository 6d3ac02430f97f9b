// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doPlanFile(source string, t *testing.T) (path string) {
	assert := assert.New(t)

	path = filepath.Join(t.TempDir(), "plan.star")
	err := os.WriteFile(path, []byte(source), 0o644)
	assert.NoError(err)
	if err != nil {
		t.FailNow()
	}

	return
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := doPlanFile(`
plan = [
    "NOT A J",
    "OR T J",
]
mode = "RUN"
`, t)

	plan, err := Load(path)
	assert.NoError(err)
	assert.Equal([]string{"NOT A J", "OR T J"}, plan.Lines)
	assert.Equal(MODE_RUN, plan.Mode)
}

func TestLoad_DefaultMode(t *testing.T) {
	assert := assert.New(t)

	path := doPlanFile(`plan = ["NOT A J"]`, t)

	plan, err := Load(path)
	assert.NoError(err)
	assert.Equal(MODE_WALK, plan.Mode)
}

func TestLoad_Computed(t *testing.T) {
	assert := assert.New(t)

	path := doPlanFile(`plan = ["NOT %s J" % s for s in ["A", "B"]]`, t)

	plan, err := Load(path)
	assert.NoError(err)
	assert.Equal([]string{"NOT A J", "NOT B J"}, plan.Lines)
}

func TestLoad_MissingPlan(t *testing.T) {
	assert := assert.New(t)

	path := doPlanFile(`jump = ["NOT A J"]`, t)

	_, err := Load(path)
	assert.ErrorIs(err, ErrPlanMissing)
}

func TestLoad_NotAList(t *testing.T) {
	assert := assert.New(t)

	path := doPlanFile(`plan = 42`, t)

	_, err := Load(path)
	assert.ErrorIs(err, ErrPlanList)
}

func TestLoad_NotStrings(t *testing.T) {
	assert := assert.New(t)

	path := doPlanFile(`plan = [1, 2]`, t)

	_, err := Load(path)
	assert.ErrorIs(err, ErrPlanList)
}

func TestLoad_BadMode(t *testing.T) {
	assert := assert.New(t)

	path := doPlanFile(`
plan = []
mode = 3
`, t)

	_, err := Load(path)
	assert.ErrorIs(err, ErrModeString)
}

func TestLoad_SyntaxError(t *testing.T) {
	assert := assert.New(t)

	path := doPlanFile(`plan = [`, t)

	_, err := Load(path)
	assert.Error(err)
}

func TestLoad_NoFile(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.star"))
	assert.Error(err)
}
