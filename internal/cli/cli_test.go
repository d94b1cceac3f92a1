package cli

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandSilencesCobraOutput(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	// main prints the error itself via errors.UserMessage, so cobra
	// must not print it a second time.
	assert.True(t, root.SilenceErrors)
	assert.True(t, root.SilenceUsage)
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"generate", "check", "preview", "completion"} {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
