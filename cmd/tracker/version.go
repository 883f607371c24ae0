package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/product-tracker/models"
)

func versionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoEngine: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", buildInfo.BuildCommit())
		},
	}
}
