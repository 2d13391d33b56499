// Package main provides integration tests for the gjf CLI.
package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumekit/gjf/internal/app"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"gjf": func() {
			ctx := context.Background()
			if err := app.Run(ctx, os.Args, os.Stdout, os.Stderr, nil); err != nil {
				os.Exit(app.ExitStatus(err))
			}
		},
	})
}

func TestScripts(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}

// mockEnv keeps Run away from the real environment and filesystem probes.
type mockEnv map[string]string

func (m mockEnv) Get(key string) string { return m[key] }

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := app.Run(context.Background(), []string{"gjf"}, &stdout, &stderr, mockEnv{})
	require.Error(t, err)
	assert.Equal(t, 1, app.ExitStatus(err))
	assert.Contains(t, stderr.String(), "expects 1 or more filenames")
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := app.Run(context.Background(), []string{"gjf", "version"}, &stdout, &stderr, mockEnv{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), app.Version)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := app.Run(context.Background(), []string{"gjf", "help"}, &stdout, &stderr, mockEnv{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "google-java-format")
}

func TestRun_BadConfig(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	env := mockEnv{"GJF_CONFIG": "/no/such/.gjf.yml"}
	err := app.Run(context.Background(), []string{"gjf", "version"}, &stdout, &stderr, env)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "config file not found")
}
