package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/rex/pkg/commands"
	"github.com/wuxler/rex/pkg/errdefs"
)

func runCommand(t *testing.T, cmd *cli.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.Writer = buf
	err := cmd.Run(context.Background(), append([]string{cmd.Name}, args...))
	return buf.String(), err
}

func TestComplementCommand(t *testing.T) {
	out, err := runCommand(t, commands.NewComplementCommand().ToCLI(), "[abc]")
	require.NoError(t, err)
	assert.Equal(t, "[^abc]\n", out)

	out, err = runCommand(t, commands.NewComplementCommand().ToCLI(), "[[ab]&&[bc]]")
	require.NoError(t, err)
	assert.Equal(t, "[[^ab][^bc]]\n", out)

	_, err = runCommand(t, commands.NewComplementCommand().ToCLI(), "[a-z")
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrMalformedExpression)
}

func TestComplementCommandJSONFormat(t *testing.T) {
	out, err := runCommand(t, commands.NewComplementCommand().ToCLI(), "--format", "json", "[abc]")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"input\": \"[abc]\",\n  \"output\": \"[^abc]\"\n}\n", out)
}

func TestEscapeCommand(t *testing.T) {
	out, err := runCommand(t, commands.NewEscapeCommand().ToCLI(), "1.5+2")
	require.NoError(t, err)
	assert.Equal(t, `1\.5\+2`+"\n", out)

	out, err = runCommand(t, commands.NewEscapeCommand().ToCLI(), "--codepoint", "0x41")
	require.NoError(t, err)
	assert.Equal(t, `\x{41}`+"\n", out)

	_, err = runCommand(t, commands.NewEscapeCommand().ToCLI(), "--codepoint", "xyz")
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)
}

func TestMatchCommand(t *testing.T) {
	out, err := runCommand(t, commands.NewMatchCommand().ToCLI(), `\d+`, "a1b22c333")
	require.NoError(t, err)
	assert.Equal(t, "1:1\n3:22\n6:333\n", out)

	out, err = runCommand(t, commands.NewMatchCommand().ToCLI(), "--ignore-case", "cat", "Cat", "dog")
	require.NoError(t, err)
	assert.Equal(t, "0:Cat\n", out)

	_, err = runCommand(t, commands.NewMatchCommand().ToCLI(), "(", "input")
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrMalformedExpression)
}
