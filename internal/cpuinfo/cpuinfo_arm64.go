// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

func detectLevel() Level {
	// ASIMD is part of the ARMv8-A base architecture, so the scalar branch
	// should never be taken in practice.
	switch {
	case cpu.ARM64.HasSVE:
		return LevelSVE
	case cpu.ARM64.HasASIMD:
		return LevelNEON
	default:
		return LevelScalar
	}
}

func features() []Feature {
	return []Feature{
		{Name: "HasASIMD", Present: cpu.ARM64.HasASIMD, Note: "NEON baseline"},
		{Name: "HasFP", Present: cpu.ARM64.HasFP},
		{Name: "HasFPHP", Present: cpu.ARM64.HasFPHP, Note: "FP16 scalar"},
		{Name: "HasASIMDHP", Present: cpu.ARM64.HasASIMDHP, Note: "FP16 NEON"},
		{Name: "HasASIMDFHM", Present: cpu.ARM64.HasASIMDFHM, Note: "FP16 FMA"},
		{Name: "HasSVE", Present: cpu.ARM64.HasSVE},
		{Name: "HasSVE2", Present: cpu.ARM64.HasSVE2},
		{Name: "HasATOMICS", Present: cpu.ARM64.HasATOMICS, Note: "Large System Extensions"},
	}
}
