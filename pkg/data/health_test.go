package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPodView(t *testing.T) {
	tests := []struct {
		name          string
		phase         string
		expectedPhase string
		expected      Health
	}{
		{name: "running pod is healthy", phase: "Running", expectedPhase: "Running", expected: Healthy},
		{name: "pending pod is unhealthy", phase: "Pending", expectedPhase: "Pending", expected: Unhealthy},
		{name: "failed pod is unhealthy", phase: "Failed", expectedPhase: "Failed", expected: Unhealthy},
		{name: "succeeded pod is unhealthy", phase: "Succeeded", expectedPhase: "Succeeded", expected: Unhealthy},
		{name: "missing phase defaults to Unknown", phase: "", expectedPhase: UnknownPhase, expected: Unhealthy},
		{name: "phase match is case sensitive", phase: "running", expectedPhase: "running", expected: Unhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pod := NewPodView("web-0", "default", tt.phase)
			assert.Equal(t, tt.expectedPhase, pod.Phase)
			assert.Equal(t, tt.expected, pod.Health)
		})
	}
}

func TestNewNodeView(t *testing.T) {
	assert.Equal(t, Healthy, NewNodeView("node-a", true).Health)
	assert.Equal(t, Unhealthy, NewNodeView("node-b", false).Health)
}

func TestSummaries(t *testing.T) {
	nodes := []NodeView{
		NewNodeView("node-a", true),
		NewNodeView("node-b", true),
		NewNodeView("node-c", false),
	}
	summary := SummarizeNodes(nodes...)
	assert.Equal(t, Summary{Healthy: 2, Unhealthy: 1}, summary)
	assert.Equal(t, len(nodes), summary.Total())

	pods := []PodView{
		NewPodView("a", "ns", "Running"),
		NewPodView("b", "ns", ""),
		NewPodView("c", "ns", "CrashLoopBackOff"),
		NewPodView("d", "ns", "Pending"),
	}
	summary = SummarizePods(pods...)
	assert.Equal(t, Summary{Healthy: 1, Unhealthy: 3}, summary)
	assert.Equal(t, len(pods), summary.Total())

	assert.Equal(t, 0, SummarizePods().Total())
}
