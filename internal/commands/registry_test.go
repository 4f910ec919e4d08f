package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/pkg/calctypes"
)

type recordedCall struct {
	args  map[string]string
	input string
}

// recordingCommand records every call and optionally fails.
type recordingCommand struct {
	name  string
	mode  calctypes.ParseMode
	err   error
	calls []recordedCall
}

func (c *recordingCommand) Name() string                   { return c.name }
func (c *recordingCommand) ParseMode() calctypes.ParseMode { return c.mode }
func (c *recordingCommand) Description() string            { return "records calls" }
func (c *recordingCommand) Usage() string                  { return "\\" + c.name }
func (c *recordingCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{Command: c.name, Description: c.Description(), Usage: c.Usage(), ParseMode: c.mode}
}

func (c *recordingCommand) Execute(args map[string]string, input string) error {
	c.calls = append(c.calls, recordedCall{args: args, input: input})
	return c.err
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	cmd := &recordingCommand{name: "open"}
	require.NoError(t, r.Register(cmd))

	got, ok := r.Get("open")
	require.True(t, ok)
	assert.Same(t, cmd, got)
	assert.True(t, r.IsValidCommand("open"))
	assert.False(t, r.IsValidCommand("close"))

	err := r.Register(&recordingCommand{name: "open"})
	assert.EqualError(t, err, "command open already registered")

	err = r.Register(&recordingCommand{})
	assert.EqualError(t, err, "command name cannot be empty")

	r.Unregister("open")
	assert.False(t, r.IsValidCommand("open"))
}

func TestRegistry_GetAllSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"todo", "calc", "key"} {
		require.NoError(t, r.Register(&recordingCommand{name: name}))
	}
	assert.Equal(t, []string{"calc", "key", "todo"}, r.CommandNames())

	info, ok := r.HelpInfo("key")
	require.True(t, ok)
	assert.Equal(t, "key", info.Command)
	_, ok = r.HelpInfo("missing")
	assert.False(t, ok)
}

func TestRegistry_ParseModeDefault(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&recordingCommand{name: "copy", mode: calctypes.ParseModeRaw}))
	assert.Equal(t, calctypes.ParseModeRaw, r.GetParseMode("copy"))
	assert.Equal(t, calctypes.ParseModeKeyValue, r.GetParseMode("missing"))
}

func TestRegistry_ExecuteLine(t *testing.T) {
	r := NewRegistry()
	input := &recordingCommand{name: "input"}
	key := &recordingCommand{name: "key", mode: calctypes.ParseModeRaw}
	require.NoError(t, r.Register(input))
	require.NoError(t, r.Register(key))

	require.NoError(t, r.ExecuteLine("\\input[n1=3, op=add] ignored"))
	require.Len(t, input.calls, 1)
	assert.Equal(t, map[string]string{"n1": "3", "op": "add"}, input.calls[0].args)
	assert.Equal(t, "ignored", input.calls[0].input)

	require.NoError(t, r.ExecuteLine("7 + 3 ="))
	require.NoError(t, r.ExecuteLine("\\key[x] 2"))
	require.Len(t, key.calls, 2)
	assert.Equal(t, "7 + 3 =", key.calls[0].input)
	assert.Empty(t, key.calls[0].args)
	assert.Equal(t, "[x] 2", key.calls[1].input)
	assert.Empty(t, key.calls[1].args)

	require.NoError(t, r.ExecuteLine(""))
	require.NoError(t, r.ExecuteLine("   "))
	require.NoError(t, r.ExecuteLine("%% comment"))
	assert.Len(t, key.calls, 2)

	err := r.ExecuteLine("\\missing")
	assert.EqualError(t, err, "unknown command: missing")
}

func TestRegistry_RunScript(t *testing.T) {
	r := NewRegistry()
	key := &recordingCommand{name: "key", mode: calctypes.ParseModeRaw}
	require.NoError(t, r.Register(key))
	require.NoError(t, r.Register(&recordingCommand{name: "boom", err: errors.New("kaput")}))
	require.NoError(t, r.Register(&recordingCommand{name: "exit", err: ErrExit}))

	require.NoError(t, r.RunScript("%% header\n1 + 1 =\n\n2 × 2 =\n"))
	assert.Len(t, key.calls, 2)

	err := r.RunScript("1\n\\boom\n2\n")
	assert.EqualError(t, err, "line 2: kaput")
	assert.Len(t, key.calls, 3)

	require.NoError(t, r.RunScript("3\n\\exit\n4\n"))
	assert.Len(t, key.calls, 4)
}
