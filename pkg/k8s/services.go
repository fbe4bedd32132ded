package k8s

import (
	"context"
	"fmt"

	"github.com/pet2cattle/kubeai-doctor/pkg/data"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

func GetServices(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]data.ServiceView, error) {
	services, err := clientset.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	serviceList := make([]data.ServiceView, 0, len(services.Items))
	for _, svc := range services.Items {
		serviceList = append(serviceList, data.ServiceView{
			Name:      svc.Name,
			Namespace: svc.Namespace,
			Type:      string(svc.Spec.Type),
		})
	}

	return serviceList, nil
}
