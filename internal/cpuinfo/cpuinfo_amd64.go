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

//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

func detectLevel() Level {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL:
		return LevelAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		return LevelAVX2
	case cpu.X86.HasSSE2:
		return LevelSSE2
	default:
		return LevelScalar
	}
}

func features() []Feature {
	return []Feature{
		{Name: "HasSSE2", Present: cpu.X86.HasSSE2},
		{Name: "HasSSE41", Present: cpu.X86.HasSSE41},
		{Name: "HasSSE42", Present: cpu.X86.HasSSE42},
		{Name: "HasAVX", Present: cpu.X86.HasAVX},
		{Name: "HasAVX2", Present: cpu.X86.HasAVX2},
		{Name: "HasFMA", Present: cpu.X86.HasFMA},
		{Name: "HasAVX512F", Present: cpu.X86.HasAVX512F},
		{Name: "HasAVX512BW", Present: cpu.X86.HasAVX512BW},
		{Name: "HasAVX512VL", Present: cpu.X86.HasAVX512VL},
	}
}
