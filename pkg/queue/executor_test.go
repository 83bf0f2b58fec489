package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/pkg/council"
)

func TestDecodeRoles(t *testing.T) {
	snapshot := []map[string]interface{}{
		{"name": "analyst", "model": "test/model-a", "system_prompt": "Be careful.", "weight": 2.0},
		{"name": "skeptic", "model": "test/model-b"},
	}

	roles, err := decodeRoles(snapshot)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "analyst", roles[0].Name)
	assert.Equal(t, "test/model-a", roles[0].Model)
	assert.Equal(t, "Be careful.", roles[0].SystemPrompt)
	assert.Equal(t, 2.0, roles[0].Weight)
	assert.Equal(t, "skeptic", roles[1].Name)
}

func TestDecodeRoles_Invalid(t *testing.T) {
	snapshot := []map[string]interface{}{
		{"name": 42, "model": "test/model-a"},
	}
	_, err := decodeRoles(snapshot)
	assert.Error(t, err)
}

func TestDecodeOptions(t *testing.T) {
	snapshot := map[string]interface{}{
		"output_mode":    "both",
		"anonymize":      true,
		"review":         true,
		"aggregation":    "borda",
		"chairman_model": "test/chairman",
		"reviewers":      []interface{}{"analyst"},
	}

	opts, err := decodeOptions(snapshot)
	require.NoError(t, err)
	assert.Equal(t, council.OutputModeBoth, opts.OutputMode)
	assert.True(t, opts.Anonymize)
	assert.True(t, opts.Review)
	assert.Equal(t, "borda", opts.Aggregation)
	assert.Equal(t, "test/chairman", opts.ChairmanModel)
	assert.Equal(t, []string{"analyst"}, opts.Reviewers)
}

func TestDecodeOptions_PreservesExplicitFalse(t *testing.T) {
	snapshot := map[string]interface{}{
		"output_mode": "perspectives",
		"anonymize":   false,
		"review":      false,
	}

	opts, err := decodeOptions(snapshot)
	require.NoError(t, err)
	assert.Equal(t, council.OutputModePerspectives, opts.OutputMode)
	assert.False(t, opts.Anonymize)
	assert.False(t, opts.Review)
}

func TestEventObserver_NilPublisher(t *testing.T) {
	roles := []council.Role{
		{Name: "analyst", Model: "test/model-a"},
		{Name: "skeptic", Model: "test/model-b"},
	}
	obs := newEventObserver(nil, "del_1", roles, "test/chairman")

	// None of the callbacks should panic without a publisher.
	obs.GenerationStarted(2)
	obs.GenerationCompleted(council.Answer{Role: "analyst", Model: "test/model-a", Success: true})
	obs.ReviewProgress(1, 2)
	obs.SynthesisCompleted("done")
	obs.publishSynthesisOutcome(council.DefaultOptions(), &council.Output{})
}

func TestEventObserver_RoleIndexLookup(t *testing.T) {
	roles := []council.Role{
		{Name: "analyst", Model: "test/model-a"},
		{Name: "skeptic", Model: "test/model-b"},
	}
	obs := newEventObserver(nil, "del_1", roles, "")
	assert.Equal(t, 0, obs.roleIndex["analyst"])
	assert.Equal(t, 1, obs.roleIndex["skeptic"])
}

func TestResolveProvider_FallsBackWithoutKey(t *testing.T) {
	provider := &stubProvider{}
	exec := NewRealDeliberationExecutor(testAppConfig(), provider, nil, nil, NewAPIKeyStash())

	got, release := exec.resolveProvider("del_no_key")
	defer release()
	assert.Equal(t, provider, got)
}

func TestResolveProvider_NilStash(t *testing.T) {
	provider := &stubProvider{}
	exec := NewRealDeliberationExecutor(testAppConfig(), provider, nil, nil, nil)

	got, release := exec.resolveProvider("del_1")
	defer release()
	assert.Equal(t, provider, got)
}

func TestResolveProvider_KeyOverride(t *testing.T) {
	provider := &stubProvider{}
	stash := NewAPIKeyStash()
	stash.Put("del_1", "sk-caller")
	exec := NewRealDeliberationExecutor(testAppConfig(), provider, nil, nil, stash)

	got, release := exec.resolveProvider("del_1")
	defer release()
	// A dedicated provider authenticated with the caller's key, not the
	// shared one.
	assert.NotSame(t, provider, got)
}
