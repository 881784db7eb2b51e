// Copyright 2022-2026 The lessvm-go Authors
// This file is part of the lessvm-go library.
//
// The lessvm-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lessvm-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lessvm-go library. If not, see <http://www.gnu.org/licenses/>.

// Package params holds the module's version identity and opcode-table
// revision, injected through build flags the same way the teacher
// injects its own (see GitCommit/GitBranch/GitTag below).
package params

import "fmt"

var (
	// GitCommit, GitBranch, GitTag are injected through build flags.
	GitCommit string
	GitBranch string
	GitTag    string
)

// Version format: Major.Minor.Build.
const (
	VersionMajor    = 0
	VersionMinor    = 1
	VersionBuild    = 0
	VersionModifier = ""
)

// OpcodeTableRevision identifies the exact opcode byte/gas-cost table a
// bytecode artifact was assembled against (spec §4.4), so a host driver
// can reject bytecode built for an incompatible revision.
const OpcodeTableRevision = 1

func isStable() bool { return VersionModifier == "stable" }

func withModifier(vsn string) string {
	if !isStable() && VersionModifier != "" {
		vsn += "-" + VersionModifier
	}
	return vsn
}

// Version holds the textual version string.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionBuild)

// VersionWithMeta holds Version plus any modifier suffix.
var VersionWithMeta = withModifier(Version)

// VersionWithCommit appends the first 8 characters of gitCommit, if
// present, to VersionWithMeta.
func VersionWithCommit(gitCommit string) string {
	vsn := VersionWithMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	return vsn
}
