package k8s

import (
	"context"
	"fmt"

	"github.com/pet2cattle/kubeai-doctor/pkg/data"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// GetPods lists pods in namespace, or in all namespaces when namespace is empty
func GetPods(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]data.PodView, error) {
	pods, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}

	podList := make([]data.PodView, 0, len(pods.Items))
	for _, pod := range pods.Items {
		podList = append(podList, data.NewPodView(pod.Name, pod.Namespace, string(pod.Status.Phase)))
	}

	return podList, nil
}
