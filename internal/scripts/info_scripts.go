// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"os"
	"runtime"
	"time"
)

// InfoScripts reports facts about the host process.
type InfoScripts struct {
	ScriptMethods
	started time.Time
}

// NewInfoScripts returns an InfoScripts whose uptime starts now.
func NewInfoScripts() *InfoScripts {
	return &InfoScripts{started: time.Now()}
}

// EnvMachineName returns the host name.
func (i *InfoScripts) EnvMachineName() (string, error) { return os.Hostname() }

// EnvProcessorCount returns the number of logical CPUs.
func (i *InfoScripts) EnvProcessorCount() int { return runtime.NumCPU() }

// EnvOSName returns the operating system, as in GOOS.
func (i *InfoScripts) EnvOSName() string { return runtime.GOOS }

// EnvArch returns the architecture, as in GOARCH.
func (i *InfoScripts) EnvArch() string { return runtime.GOARCH }

// EnvGoVersion returns the Go runtime version.
func (i *InfoScripts) EnvGoVersion() string { return runtime.Version() }

// EnvCurrentDirectory returns the working directory of the process.
func (i *InfoScripts) EnvCurrentDirectory() (string, error) { return os.Getwd() }

// EnvVariable returns the value of an environment variable, or "" if unset.
func (i *InfoScripts) EnvVariable(name string) string { return os.Getenv(name) }

// Uptime is zero for an InfoScripts not built by NewInfoScripts.
func (i *InfoScripts) Uptime() time.Duration {
	if i.started.IsZero() {
		return 0
	}
	return time.Since(i.started)
}
