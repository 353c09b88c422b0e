package seiargs

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildHiBye(t *testing.T) (*Subcmds, *bool, *bool, *int, *bool, *Leaf[int]) {
	t.Helper()

	root := NewSubcmds("testapp")

	hi := NewRecord("hi")
	val, err := NewInt("val").SetPositional(true).Register(hi)
	assert.NoError(t, err)
	other, err := NewBool("other").SetDefault(false).Register(hi)
	assert.NoError(t, err)
	hiUsed, err := root.Register("hi", hi)
	assert.NoError(t, err)

	bye := NewLeaf("bye", IntParser)
	byeUsed, err := root.Register("bye", bye)
	assert.NoError(t, err)

	return root, hiUsed, byeUsed, val, other, bye
}

func TestSubcmdDispatchRecord(t *testing.T) {
	root, hiUsed, byeUsed, val, other, _ := buildHiBye(t)

	rest, err := root.Parse([]string{"hi", "10", "--other"})
	assert.NoError(t, err)
	assert.Nil(t, rest)
	assert.True(t, *hiUsed)
	assert.False(t, *byeUsed)
	assert.Equal(t, "hi", root.Selected())
	assert.Equal(t, 10, *val)
	assert.True(t, *other)
}

func TestSubcmdDispatchLeaf(t *testing.T) {
	root, hiUsed, byeUsed, _, _, bye := buildHiBye(t)

	_, err := root.Parse([]string{"bye", "42"})
	assert.NoError(t, err)
	assert.True(t, *byeUsed)
	assert.False(t, *hiUsed)
	assert.Equal(t, "bye", root.Selected())
	assert.Equal(t, 42, bye.Get())
}

func TestSubcmdUnknown(t *testing.T) {
	root, _, _, _, _, _ := buildHiBye(t)

	_, err := root.Parse([]string{"zzz"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSubcmd))
}

func TestSubcmdNoneSpecified(t *testing.T) {
	root, _, _, _, _, _ := buildHiBye(t)

	_, err := root.Parse([]string{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSubcmdSpecified))
}

func TestSubcmdTerminatorAtSelector(t *testing.T) {
	root, _, _, _, _, _ := buildHiBye(t)

	// The terminator outranks the selector grammar, so no token is
	// available to pick a variant.
	_, err := root.Parse([]string{"--", "hi"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSubcmdSpecified))
}

func TestConcurrentParsesOnSharedSubcmds(t *testing.T) {
	root, _, _, val, _, _ := buildHiBye(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := root.Parse([]string{"hi", "10"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "hi", root.Selected())
	assert.Equal(t, 10, *val)
}

func TestSubcmdChildErrorForwardedUnchanged(t *testing.T) {
	root, _, _, _, _, _ := buildHiBye(t)

	_, err := root.Parse([]string{"hi", "10", "--nope"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownArgument))
}

func TestSubcmdTailForwarded(t *testing.T) {
	root, _, _, val, _, _ := buildHiBye(t)

	rest, err := root.Parse([]string{"hi", "10", "--", "x"})
	assert.NoError(t, err)
	assert.Equal(t, 10, *val)
	assert.Equal(t, []string{"x"}, rest)
}

func TestSubcmdDuplicateVariant(t *testing.T) {
	root := NewSubcmds("testapp")
	_, err := root.Register("run", NewRecord("run"))
	assert.NoError(t, err)
	_, err = root.Register("run", NewRecord("run"))
	assert.Error(t, err)

	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestNestedSubcmds(t *testing.T) {
	root := NewSubcmds("testapp")

	remote := NewSubcmds("remote")
	add := NewRecord("add")
	name, err := NewString("name").SetPositional(true).Register(add)
	assert.NoError(t, err)
	_, err = remote.Register("add", add)
	assert.NoError(t, err)

	remoteUsed, err := root.Register("remote", remote)
	assert.NoError(t, err)

	_, err = root.Parse([]string{"remote", "add", "origin"})
	assert.NoError(t, err)
	assert.True(t, *remoteUsed)
	assert.Equal(t, "add", remote.Selected())
	assert.Equal(t, "origin", *name)
}

func TestSubcmdMarkersResetBetweenParses(t *testing.T) {
	root, hiUsed, byeUsed, _, _, _ := buildHiBye(t)

	_, err := root.Parse([]string{"hi", "1"})
	assert.NoError(t, err)
	assert.True(t, *hiUsed)

	_, err = root.Parse([]string{"bye", "2"})
	assert.NoError(t, err)
	assert.False(t, *hiUsed)
	assert.True(t, *byeUsed)
}
