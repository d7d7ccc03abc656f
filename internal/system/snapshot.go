// Package system provides host resource information for startup diagnostics
package system

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot represents host resource information captured at a point in time
type Snapshot struct {
	CPUCount    int
	MemTotalMB  uint64
	MemPercent  float64
	DiskPercent float64
}

// GetSnapshot retrieves current host resource information
func GetSnapshot() (*Snapshot, error) {
	cpuCount, err := cpu.Counts(true)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU count: %w", err)
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory usage: %w", err)
	}

	diskStat, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("failed to get disk usage: %w", err)
	}

	return &Snapshot{
		CPUCount:    cpuCount,
		MemTotalMB:  memStat.Total / 1024 / 1024,
		MemPercent:  memStat.UsedPercent,
		DiskPercent: diskStat.UsedPercent,
	}, nil
}

// String returns a single-line summary suitable for a startup log
func (s *Snapshot) String() string {
	return fmt.Sprintf("cpus=%d mem=%dMB (%.1f%% used) disk=%.1f%% used",
		s.CPUCount, s.MemTotalMB, s.MemPercent, s.DiskPercent)
}
