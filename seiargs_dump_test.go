package seiargs

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpRecord(t *testing.T) {
	t.Setenv("SEIARGS_COLOR", "never")

	rec := NewRecord("testapp")
	rec.SetDescription("Test application")
	_, err := NewString("input").SetPositional(true).SetUsage("Input file path").Register(rec)
	assert.NoError(t, err)
	_, err = NewBool("force").SetShort("f").SetDefault(false).Register(rec)
	assert.NoError(t, err)

	out := Dump(rec, []string{"a.txt", "-f"})

	assert.Contains(t, out, "Seiargs Schema Dump")
	assert.Contains(t, out, `[0]: "a.txt"`)
	assert.Contains(t, out, `[1]: "-f"`)
	assert.Contains(t, out, "Record: testapp")
	assert.Contains(t, out, "Description: Test application")
	assert.Contains(t, out, "Positional Fields: 1")
	assert.Contains(t, out, "Named Fields: 1")
	assert.Contains(t, out, `[0] input type:string required usage:"Input file path"`)
	assert.Contains(t, out, "force (-f) type:bool default:false")
}

func TestDumpSubcmdsRecurses(t *testing.T) {
	t.Setenv("SEIARGS_COLOR", "never")

	root := NewSubcmds("testapp")
	hi := NewRecord("hi")
	_, err := NewInt("val").SetPositional(true).Register(hi)
	assert.NoError(t, err)
	_, err = root.Register("hi", hi)
	assert.NoError(t, err)
	_, err = root.Register("bye", NewLeaf("bye", IntParser).SetDefault(0))
	assert.NoError(t, err)

	out := Dump(root, nil)

	assert.Contains(t, out, "Subcommands: testapp")
	assert.Contains(t, out, "Variants: 2")
	assert.Contains(t, out, "Record: hi")
	assert.Contains(t, out, "Leaf: bye type:int default:0")
	assert.Contains(t, out, "<none>")
}

func TestParseOrExitSuccess(t *testing.T) {
	rec := NewRecord("testapp")
	x, err := NewInt("x").SetPositional(true).Register(rec)
	assert.NoError(t, err)

	rest := ParseOrExit(rec, []string{"3", "--", "tail"})
	assert.Equal(t, 3, *x)
	assert.Equal(t, []string{"tail"}, rest)
}

func TestParseOrExitFailure(t *testing.T) {
	t.Setenv("SEIARGS_COLOR", "never")

	rec := NewRecord("testapp")
	_, err := NewInt("x").SetPositional(true).Register(rec)
	assert.NoError(t, err)

	var stderr bytes.Buffer
	SetStderrWriter(&stderr)
	defer SetStderrWriter(os.Stderr)

	var exitCalled bool
	var exitCode int
	SetExitFunc(func(code int) {
		exitCalled = true
		exitCode = code
	})
	defer SetExitFunc(os.Exit)

	ParseOrExit(rec, []string{})

	assert.True(t, exitCalled)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "missing required arguments: [x]")
}
