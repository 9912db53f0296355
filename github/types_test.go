package github

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateIssueOptions_Payload(t *testing.T) {
	t.Parallel()

	title := "t"
	milestone := 2
	labels := []string(nil)

	opts := UpdateIssueOptions{Title: &title, Milestone: &milestone, Labels: &labels}
	data, err := json.Marshal(opts.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","milestone":2,"labels":[]}`, string(data))

	opts.ClearMilestone = true
	data, err = json.Marshal(opts.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","milestone":null,"labels":[]}`, string(data))

	assert.Empty(t, UpdateIssueOptions{}.Payload())
}
