package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "ganzhi", cmd.Name())
	assert.Contains(t, cmd.Long, "Dayun")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"analyze", "predict", "relation", "validate"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestAnalyzeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	analyzeCmd, _, err := cmd.Find([]string{"analyze"})
	require.NoError(t, err)

	chartFlag := analyzeCmd.Flags().Lookup("chart")
	require.NotNil(t, chartFlag)
	assert.Equal(t, "", chartFlag.DefValue)

	yearFlag := analyzeCmd.Flags().Lookup("year")
	require.NotNil(t, yearFlag)
	assert.Equal(t, "0", yearFlag.DefValue)
}

func TestPredictCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	predictCmd, _, err := cmd.Find([]string{"predict"})
	require.NoError(t, err)

	yearsFlag := predictCmd.Flags().Lookup("years")
	require.NotNil(t, yearsFlag)
	assert.Equal(t, "10", yearsFlag.DefValue)

	nowFlag := predictCmd.Flags().Lookup("now")
	require.NotNil(t, nowFlag)
}

func TestInvalidFormatRejected(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"relation", "甲子", "己丑", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

// runCLI executes one invocation of the root command and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
