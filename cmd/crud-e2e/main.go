/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/nscaledev/uni-crud-e2e/pkg/client"
	"github.com/nscaledev/uni-crud-e2e/pkg/config"
	"github.com/nscaledev/uni-crud-e2e/pkg/constants"
	"github.com/nscaledev/uni-crud-e2e/pkg/reporter"
	"github.com/nscaledev/uni-crud-e2e/pkg/runner"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	var options config.Options

	options.AddFlags(pflag.CommandLine)

	zapOptions := &zap.Options{}

	goflags := flag.NewFlagSet("", flag.ExitOnError)
	zapOptions.BindFlags(goflags)
	pflag.CommandLine.AddGoFlagSet(goflags)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(zapOptions)))

	if err := options.Complete(pflag.CommandLine); err != nil {
		fmt.Println(err)
		return 1
	}

	out := reporter.New(os.Stdout, &options.Reporter)

	if err := options.Validate(); err != nil {
		out.Error("Fatal error: %v", err)
		return 1
	}

	logger := log.Log.WithName("crud-e2e")
	logger.Info("runner starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := logr.NewContext(cr.SetupSignalHandler(), logger)

	api, err := client.NewAPI(options.BaseURL, &options.Client)
	if err != nil {
		out.Error("Fatal error: %v", err)
		return 1
	}

	out.Banner("Starting E2E tests against " + options.BaseURL)

	summary := runner.New(client.New(api), out).Run(ctx)

	out.Summary(summary.Passed(), summary.Failed(), summary.Interrupted)

	if !summary.Succeeded() {
		return 1
	}

	return 0
}
