package main

import (
	"github.com/pet2cattle/kubeai-doctor/cmd"
)

func main() {
	cmd.Execute()
}
