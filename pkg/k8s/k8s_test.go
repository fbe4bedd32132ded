package k8s

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pet2cattle/kubeai-doctor/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func node(name string, conditions ...corev1.NodeCondition) *corev1.Node {
	return &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Status:     corev1.NodeStatus{Conditions: conditions},
	}
}

func pod(namespace, name string, phase corev1.PodPhase) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Status:     corev1.PodStatus{Phase: phase},
	}
}

func failingList(resource string) *fake.Clientset {
	clientset := fake.NewSimpleClientset()
	clientset.PrependReactor("list", resource, func(action k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("forbidden")
	})
	return clientset
}

func TestIsNodeReady(t *testing.T) {
	tests := []struct {
		name     string
		node     *corev1.Node
		expected bool
	}{
		{
			name:     "ready condition true",
			node:     node("a", corev1.NodeCondition{Type: corev1.NodeReady, Status: corev1.ConditionTrue}),
			expected: true,
		},
		{
			name:     "ready condition false",
			node:     node("b", corev1.NodeCondition{Type: corev1.NodeReady, Status: corev1.ConditionFalse}),
			expected: false,
		},
		{
			name:     "ready condition unknown",
			node:     node("c", corev1.NodeCondition{Type: corev1.NodeReady, Status: corev1.ConditionUnknown}),
			expected: false,
		},
		{
			name:     "no conditions",
			node:     node("d"),
			expected: false,
		},
		{
			name:     "no status block",
			node:     &corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: "e"}},
			expected: false,
		},
		{
			name: "only other conditions true",
			node: node("f",
				corev1.NodeCondition{Type: corev1.NodeMemoryPressure, Status: corev1.ConditionTrue},
				corev1.NodeCondition{Type: corev1.NodeDiskPressure, Status: corev1.ConditionTrue},
			),
			expected: false,
		},
		{
			name: "ready among other conditions",
			node: node("g",
				corev1.NodeCondition{Type: corev1.NodeMemoryPressure, Status: corev1.ConditionFalse},
				corev1.NodeCondition{Type: corev1.NodeReady, Status: corev1.ConditionTrue},
			),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNodeReady(tt.node))
		})
	}
}

func TestGetNodes(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		node("node-a", corev1.NodeCondition{Type: corev1.NodeReady, Status: corev1.ConditionTrue}),
		node("node-b", corev1.NodeCondition{Type: corev1.NodeReady, Status: corev1.ConditionTrue}),
		node("node-c", corev1.NodeCondition{Type: corev1.NodeReady, Status: corev1.ConditionFalse}),
	)

	nodes, err := GetNodes(context.Background(), clientset)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	summary := data.SummarizeNodes(nodes...)
	assert.Equal(t, 2, summary.Healthy)
	assert.Equal(t, 1, summary.Unhealthy)

	for _, n := range nodes {
		assert.Equal(t, n.Name != "node-c", n.Ready, n.Name)
	}
}

func TestGetNodesListError(t *testing.T) {
	nodes, err := GetNodes(context.Background(), failingList("nodes"))
	assert.Nil(t, nodes)
	assert.ErrorContains(t, err, "failed to list nodes")
}

func TestGetPods(t *testing.T) {
	objects := []runtime.Object{
		pod("default", "web-0", corev1.PodRunning),
		pod("default", "web-1", corev1.PodPending),
		pod("kube-system", "coredns", corev1.PodRunning),
		pod("kube-system", "no-phase", ""),
	}

	tests := []struct {
		name      string
		namespace string
		expected  []string
	}{
		{name: "all namespaces", namespace: "", expected: []string{"web-0", "web-1", "coredns", "no-phase"}},
		{name: "single namespace", namespace: "default", expected: []string{"web-0", "web-1"}},
		{name: "empty namespace", namespace: "monitoring", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientset := fake.NewSimpleClientset(objects...)

			pods, err := GetPods(context.Background(), clientset, tt.namespace)
			require.NoError(t, err)

			names := []string{}
			for _, p := range pods {
				names = append(names, p.Name)
				if tt.namespace != "" {
					assert.Equal(t, tt.namespace, p.Namespace)
				}
			}
			assert.ElementsMatch(t, tt.expected, names)
		})
	}
}

func TestGetPodsMissingPhase(t *testing.T) {
	clientset := fake.NewSimpleClientset(&corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "orphan", Namespace: "default"},
	})

	pods, err := GetPods(context.Background(), clientset, "")
	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, data.UnknownPhase, pods[0].Phase)
	assert.Equal(t, data.Unhealthy, pods[0].Health)
}

func TestGetPodsListError(t *testing.T) {
	_, err := GetPods(context.Background(), failingList("pods"), "default")
	assert.ErrorContains(t, err, "failed to list pods")
}

func TestGetServices(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Service{
			ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "default"},
			Spec:       corev1.ServiceSpec{Type: corev1.ServiceTypeClusterIP},
		},
		&corev1.Service{
			ObjectMeta: metav1.ObjectMeta{Name: "kube-dns", Namespace: "kube-system"},
			Spec:       corev1.ServiceSpec{Type: corev1.ServiceTypeClusterIP},
		},
	)

	services, err := GetServices(context.Background(), clientset, "kube-system")
	require.NoError(t, err)
	assert.Equal(t, []data.ServiceView{{Name: "kube-dns", Namespace: "kube-system", Type: "ClusterIP"}}, services)

	services, err = GetServices(context.Background(), clientset, "")
	require.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestGetServicesListError(t *testing.T) {
	_, err := GetServices(context.Background(), failingList("services"), "")
	assert.ErrorContains(t, err, "failed to list services")
}

func TestGetEvents(t *testing.T) {
	lastSeen := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clientset := fake.NewSimpleClientset(
		&corev1.Event{
			ObjectMeta:     metav1.ObjectMeta{Name: "web-0.1", Namespace: "default"},
			InvolvedObject: corev1.ObjectReference{Kind: "Pod", Name: "web-0"},
			Type:           corev1.EventTypeWarning,
			Reason:         "BackOff",
			Message:        "Back-off restarting failed container",
			LastTimestamp:  metav1.NewTime(lastSeen),
		},
		&corev1.Event{
			ObjectMeta: metav1.ObjectMeta{Name: "silent.1", Namespace: "default"},
			EventTime:  metav1.NewMicroTime(lastSeen),
		},
		&corev1.Event{
			ObjectMeta: metav1.ObjectMeta{Name: "other.1", Namespace: "kube-system"},
			Message:    "Scheduled",
		},
	)

	events, err := GetEvents(context.Background(), clientset, "default")
	require.NoError(t, err)
	require.Len(t, events, 2)

	byName := map[string]data.EventView{}
	for _, e := range events {
		byName[e.Name] = e
	}

	assert.Equal(t, "Back-off restarting failed container", byName["web-0.1"].Message)
	assert.Equal(t, "Pod/web-0", byName["web-0.1"].Object)
	assert.True(t, lastSeen.Equal(byName["web-0.1"].LastSeen))

	assert.Equal(t, data.NoMessage, byName["silent.1"].Message)
	assert.Equal(t, "", byName["silent.1"].Object)
	assert.True(t, lastSeen.Equal(byName["silent.1"].LastSeen))

	events, err = GetEvents(context.Background(), clientset, "")
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestGetEventsListError(t *testing.T) {
	_, err := GetEvents(context.Background(), failingList("events"), "")
	assert.ErrorContains(t, err, "failed to list events")
}
