// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/product-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newCLI(buildInfo).Execute(); err != nil {
		printError(os.Stderr, err)
		memguard.Purge()
		os.Exit(1)
	}
}
