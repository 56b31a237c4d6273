package cmdhelper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/rex/pkg/cmdhelper"
)

func runWithArgs(t *testing.T, fn cmdhelper.ActionFunc, args ...string) error {
	t.Helper()
	var actionErr error
	cmd := &cli.Command{
		Name: "test",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			actionErr = fn(ctx, cmd)
			return nil
		},
	}
	err := cmd.Run(context.Background(), append([]string{"test"}, args...))
	require.NoError(t, err)
	return actionErr
}

func TestArgsValidators(t *testing.T) {
	testcases := map[string]struct {
		fn      cmdhelper.ActionFunc
		args    []string
		wantErr bool
	}{
		"no args ok":            {fn: cmdhelper.NoArgs(), args: nil, wantErr: false},
		"no args rejected":      {fn: cmdhelper.NoArgs(), args: []string{"a"}, wantErr: true},
		"exact ok":              {fn: cmdhelper.ExactArgs(2), args: []string{"a", "b"}, wantErr: false},
		"exact too few":         {fn: cmdhelper.ExactArgs(2), args: []string{"a"}, wantErr: true},
		"minimum ok":            {fn: cmdhelper.MinimumNArgs(1), args: []string{"a", "b"}, wantErr: false},
		"minimum too few":       {fn: cmdhelper.MinimumNArgs(1), args: nil, wantErr: true},
		"maximum ok":            {fn: cmdhelper.MaximumNArgs(1), args: []string{"a"}, wantErr: false},
		"maximum too many":      {fn: cmdhelper.MaximumNArgs(1), args: []string{"a", "b"}, wantErr: true},
		"chain stops on error":  {fn: cmdhelper.ActionFuncChain(cmdhelper.MinimumNArgs(1), cmdhelper.MaximumNArgs(1)), args: []string{"a", "b"}, wantErr: true},
		"chain passes through":  {fn: cmdhelper.ActionFuncChain(cmdhelper.MinimumNArgs(1), cmdhelper.MaximumNArgs(2)), args: []string{"a", "b"}, wantErr: false},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			err := runWithArgs(t, tc.fn, tc.args...)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrettifyJSON(t *testing.T) {
	got, err := cmdhelper.PrettifyJSON(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(got))

	got, err = cmdhelper.PrettifyJSON(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(got))

	_, err = cmdhelper.PrettifyJSON("not json")
	assert.Error(t, err)
}
