// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"github.com/c9s/goprocinfo/linux"
)

const (
	// DefaultMemoryReaderLocation is the default location for meminfo
	// under Linux
	DefaultMemoryReaderLocation string = "/proc/meminfo"
)

// Memory is the host memory summary included in the /health response, in kilobytes
type Memory struct {
	TotalKB     uint64 `json:"totalKB"`
	FreeKB      uint64 `json:"freeKB"`
	AvailableKB uint64 `json:"availableKB"`
}

// MemInfoReader handles extracting the linux memory information from
// the enclosing environment.
type MemInfoReader struct {
	Location string
}

// Read parses the configured Location as if it were a linux meminfo file.
func (reader *MemInfoReader) Read() (*linux.MemInfo, error) {
	location := reader.Location
	if len(location) == 0 {
		location = DefaultMemoryReaderLocation
	}

	return linux.ReadMemInfo(location)
}

// Memory reads the meminfo file and summarizes it.  On non-Linux hosts this returns an error.
func (reader *MemInfoReader) Memory() (*Memory, error) {
	memInfo, err := reader.Read()
	if err != nil {
		return nil, err
	}

	return &Memory{
		TotalKB:     memInfo.MemTotal,
		FreeKB:      memInfo.MemFree,
		AvailableKB: memInfo.MemAvailable,
	}, nil
}
