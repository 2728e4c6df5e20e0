package main

import (
	"bytes"
	"strings"
	"testing"

	"shipfive/pkg/config"
	"shipfive/pkg/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { config.SetShipDir("") })

	c := newCLI()
	c.isTerminal = func() bool { return false }
	cmd := newRootCmd(c)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--state-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func seed(t *testing.T, dir, backend string, r progress.Record) {
	t.Helper()
	store, err := progress.OpenStore(backend, dir, nil)
	require.NoError(t, err)
	progress.NewAdapter(store, config.DefaultStateKey, nil).Save(r)
	require.NoError(t, store.Close())
}

func TestStatusOnFreshStore(t *testing.T) {
	out, err := run(t, t.TempDir(), "status")
	require.NoError(t, err)

	assert.Contains(t, out, "Onboarding: not started")
	assert.Contains(t, out, "0/4 defined")
	assert.Contains(t, out, "[ ] Choose your template category (category)")
}

func TestStatusJSON(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, config.BackendFile, progress.Record{OnboardingComplete: true, Checklist: progress.Checklist{Typography: true}})

	out, err := run(t, dir, "status", "--json")
	require.NoError(t, err)

	got, err := progress.Decode([]byte(out))
	require.NoError(t, err)
	assert.True(t, got.OnboardingComplete)
	assert.True(t, got.Checklist.Typography)
}

func TestCheckRequiresOnboarding(t *testing.T) {
	_, err := run(t, t.TempDir(), "check", "category")
	assert.ErrorContains(t, err, "finish onboarding")
}

func TestCheckRejectsUnknownItem(t *testing.T) {
	_, err := run(t, t.TempDir(), "check", "deadline")
	assert.ErrorContains(t, err, "unknown item")
}

func TestCheckCompleteAndReset(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, config.BackendBadger, progress.Record{OnboardingComplete: true})

	out, err := run(t, dir, "--backend", "badger", "check", "heroSketch")
	require.NoError(t, err)
	assert.Contains(t, out, "heroSketch checked (1/4 defined)")

	_, err = run(t, dir, "--backend", "badger", "complete")
	require.NoError(t, err)

	out, err = run(t, dir, "--backend", "badger", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 1:      complete (4/4 defined)")

	_, err = run(t, dir, "--backend", "badger", "reset")
	require.NoError(t, err)

	out, err = run(t, dir, "--backend", "badger", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Onboarding: not started")
}

func TestBadBackendFlag(t *testing.T) {
	_, err := run(t, t.TempDir(), "--backend", "sqlite", "status")
	assert.Error(t, err)
}

func TestRootRefusesWithoutTerminal(t *testing.T) {
	_, err := run(t, t.TempDir())
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "dev"), out)
}
