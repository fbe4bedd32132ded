package k8s

import (
	"context"
	"fmt"

	"github.com/pet2cattle/kubeai-doctor/pkg/data"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// GetNodes lists every node in the cluster and classifies its readiness
func GetNodes(ctx context.Context, clientset kubernetes.Interface) ([]data.NodeView, error) {
	nodes, err := clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	nodeList := make([]data.NodeView, 0, len(nodes.Items))
	for _, node := range nodes.Items {
		nodeList = append(nodeList, data.NewNodeView(node.Name, IsNodeReady(&node)))
	}

	return nodeList, nil
}

// IsNodeReady reports whether the node has a Ready condition set to "True".
// Nodes without a status or without conditions are not ready.
func IsNodeReady(node *corev1.Node) bool {
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady && cond.Status == corev1.ConditionTrue {
			return true
		}
	}
	return false
}
