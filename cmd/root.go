package cmd

import (
	"os"
	"strings"

	"github.com/pet2cattle/kubeai-doctor/pkg/doctor"
	"github.com/pet2cattle/kubeai-doctor/pkg/k8s"
	"github.com/pet2cattle/kubeai-doctor/pkg/printutils"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"k8s.io/client-go/kubernetes"
)

var KubernetesConfigFlags *genericclioptions.ConfigFlags

var rootCmd = &cobra.Command{
	Use:   "kubeai-doctor",
	Short: "AI-powered Kubernetes troubleshooting tool",
	Long: `Run a health check on a specific Kubernetes resource.

Nodes are healthy when their Ready condition is True, pods when they are
Running. Services and events are listed without classification.`,
	Example: `  # Check every node in the cluster
  kubeai-doctor --check nodes

  # Check pods in a single namespace
  kubeai-doctor -c pods -n kube-system

  # Show recent events as a table
  kubeai-doctor -c events -o table`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		check, _ := cmd.Flags().GetString("check")
		output, _ := cmd.Flags().GetString("output")
		noHeaders, _ := cmd.Flags().GetBool("no-headers")
		noColor, _ := cmd.Flags().GetBool("no-color")

		format, err := printutils.ParseFormat(output)
		if err != nil {
			return err
		}

		if noColor {
			printutils.DisableColor()
		}

		// an omitted namespace means all namespaces, not the context namespace
		namespace := ""
		if KubernetesConfigFlags.Namespace != nil {
			namespace = *KubernetesConfigFlags.Namespace
		}

		d := doctor.New(func() (kubernetes.Interface, error) {
			return k8s.NewClientset(KubernetesConfigFlags)
		}, printutils.NewPrinter(cmd.OutOrStdout(), format, noHeaders))

		if format == printutils.FormatText {
			d.Progress = func(message string, fn func() error) error {
				return printutils.WithSpinner(os.Stderr, message, fn)
			}
		}

		return d.Run(cmd.Context(), doctor.Options{Check: check, Namespace: namespace})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		printutils.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	resources := make([]string, 0, len(doctor.Resources))
	for _, r := range doctor.Resources {
		resources = append(resources, r.String())
	}

	rootCmd.Flags().StringP("check", "c", "", "Run a health check on a specific Kubernetes resource (e.g., "+strings.Join(resources, ", ")+")")
	rootCmd.Flags().StringP("output", "o", string(printutils.FormatText), "Output format: text, table, yaml or json")
	rootCmd.Flags().Bool("no-headers", false, "Do not print table headers")
	rootCmd.Flags().Bool("no-color", false, "Disable colored output")
	_ = rootCmd.MarkFlagRequired("check")

	KubernetesConfigFlags = genericclioptions.NewConfigFlags(true)
	KubernetesConfigFlags.AddFlags(rootCmd.PersistentFlags())
}
