package monitoring

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/process"
)

// ResourceUsage is the CPU and memory use of the current process.
type ResourceUsage struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

// ResourceReporter reads the resource usage of the current process.
type ResourceReporter struct {
	logger *log.Logger
	proc   *process.Process
}

// NewResourceReporter creates a reporter that writes to the given logger.
func NewResourceReporter(logger *log.Logger) (*ResourceReporter, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("monitoring: inspect process: %w", err)
	}

	return &ResourceReporter{logger: logger, proc: proc}, nil
}

// Usage samples the current resource usage.
func (r *ResourceReporter) Usage() (ResourceUsage, error) {
	cpuPercent, err := r.proc.CPUPercent()
	if err != nil {
		return ResourceUsage{}, fmt.Errorf("monitoring: read cpu: %w", err)
	}

	memInfo, err := r.proc.MemoryInfo()
	if err != nil {
		return ResourceUsage{}, fmt.Errorf("monitoring: read memory: %w", err)
	}

	return ResourceUsage{
		CPUPercent: cpuPercent,
		MemorySize: memInfo.RSS,
	}, nil
}

// Report logs the current resource usage. Errors are logged, not returned,
// so Report can be registered as an exit handler.
func (r *ResourceReporter) Report() {
	usage, err := r.Usage()
	if err != nil {
		r.logger.Printf("resource usage unavailable: %v", err)
		return
	}

	r.logger.Printf("cpu %.1f%%, memory %s",
		usage.CPUPercent, humanize.IBytes(usage.MemorySize))
}
