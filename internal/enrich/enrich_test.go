package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaszy/jirareport/pkg/models"
)

// recordingSummarizer is a Summarizer test double that records its inputs.
type recordingSummarizer struct {
	calls  []string
	failOn string
	prefix string
}

func (r *recordingSummarizer) Summarize(_ context.Context, text string) (string, error) {
	r.calls = append(r.calls, text)
	if r.failOn != "" && text == r.failOn {
		return "", errors.New("completion unavailable")
	}
	return r.prefix + text, nil
}

// newTestEnricher returns an Enricher whose pauses are recorded instead of slept.
func newTestEnricher(s Summarizer, delay time.Duration) (*Enricher, *[]time.Duration) {
	var pauses []time.Duration
	e := New(s, delay)
	e.sleep = func(_ context.Context, d time.Duration) error {
		pauses = append(pauses, d)
		return nil
	}
	return e, &pauses
}

func TestCleanSummary(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Leading and embedded tags", input: "[WEB-API] Fix [WEB] login bug", expected: "Fix login bug"},
		{name: "Web prefix", input: "[WEB] Summary1", expected: "Summary1"},
		{name: "Web prefix with several spaces", input: "[WEB]    Summary1", expected: "Summary1"},
		{name: "Repeated tags", input: "[WEB-API][WEB-API] Sync [WEB] [WEB] jobs", expected: "Sync jobs"},
		{name: "No tags", input: "Summary2", expected: "Summary2"},
		{name: "Other tags are kept", input: "[API] Summary3", expected: "[API] Summary3"},
		{name: "Tags are case sensitive", input: "[web] Summary4", expected: "[web] Summary4"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanSummary(tc.input))
		})
	}
}

func TestEnrichPassThrough(t *testing.T) {
	enricher, pauses := newTestEnricher(PassThrough{}, time.Second)

	issues := []models.RawIssue{
		{Key: "A-1", Summary: "[WEB] Summary1", Description: "desc1"},
		{Key: "A-2", Summary: "Summary2", Description: ""},
	}

	records, err := enricher.Enrich(context.Background(), issues)
	require.NoError(t, err)

	assert.Equal(t, []models.Record{
		{ID: "A-1", Summary: "Summary1", Description: "desc1"},
		{ID: "A-2", Summary: "Summary2", Description: ""},
	}, records)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, *pauses)
}

func TestEnrichUsesSummarizer(t *testing.T) {
	summarizer := &recordingSummarizer{prefix: "summary of "}
	enricher, pauses := newTestEnricher(summarizer, 10*time.Millisecond)

	issues := []models.RawIssue{
		{Key: "B-1", Summary: "[WEB-API] First", Description: "one"},
		{Key: "B-2", Summary: "Second", Description: ""},
		{Key: "B-3", Summary: "Third", Description: "three"},
	}

	records, err := enricher.Enrich(context.Background(), issues)
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "", "three"}, summarizer.calls)
	require.Len(t, records, 3)
	assert.Equal(t, "B-1", records[0].ID)
	assert.Equal(t, "First", records[0].Summary)
	assert.Equal(t, "summary of one", records[0].Description)
	assert.Equal(t, "B-3", records[2].ID)
	assert.Len(t, *pauses, 3)
}

func TestEnrichAbortsOnSummarizerError(t *testing.T) {
	summarizer := &recordingSummarizer{failOn: "two"}
	enricher, pauses := newTestEnricher(summarizer, time.Second)

	issues := []models.RawIssue{
		{Key: "C-1", Description: "one"},
		{Key: "C-2", Description: "two"},
		{Key: "C-3", Description: "three"},
	}

	records, err := enricher.Enrich(context.Background(), issues)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C-2")
	assert.Nil(t, records)
	assert.Equal(t, []string{"one", "two"}, summarizer.calls)
	assert.Len(t, *pauses, 1)
}

func TestEnrichEmpty(t *testing.T) {
	enricher, pauses := newTestEnricher(nil, time.Second)

	records, err := enricher.Enrich(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, *pauses)
}

func TestEnrichStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	enricher := New(PassThrough{}, time.Hour)
	records, err := enricher.Enrich(ctx, []models.RawIssue{{Key: "D-1"}, {Key: "D-2"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, records)
}

func TestSleepContext(t *testing.T) {
	start := time.Now()
	require.NoError(t, sleepContext(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	require.NoError(t, sleepContext(context.Background(), 0))
}
