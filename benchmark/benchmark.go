// benchmark.go
// A reusable benchmarking module for hydroplot
// Measures execution time and memory usage for any wrapped tool run

package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// Result captures the resource usage of one wrapped run.
type Result struct {
	Label        string
	Elapsed      time.Duration
	AllocBytes   uint64
	TotalAlloc   uint64
	PeakHeap     uint64
	GCCycles     uint32
	CPUCores     int
	GoroutineEnd int
}

// Run wraps any function, measures its runtime and memory usage, and
// prints a report.
func Run(label string, f func()) Result {
	fmt.Printf("[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Println("[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Println("[Benchmark] Hostname:", host)
	}
	fmt.Println("[Benchmark] Go Version:", runtime.Version())
	fmt.Printf("[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	res := Result{
		Label:        label,
		Elapsed:      elapsed,
		AllocBytes:   memEnd.Alloc - memStart.Alloc,
		TotalAlloc:   memEnd.TotalAlloc - memStart.TotalAlloc,
		PeakHeap:     memEnd.HeapAlloc,
		GCCycles:     memEnd.NumGC - memStart.NumGC,
		CPUCores:     runtime.NumCPU(),
		GoroutineEnd: runtime.NumGoroutine(),
	}

	fmt.Printf("[Benchmark] Time Elapsed: %v\n", res.Elapsed)
	fmt.Printf("[Benchmark] Memory Used: %.2f MB\n", float64(res.AllocBytes)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Total Allocated: %.2f MB\n", float64(res.TotalAlloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Peak Heap: %.2f MB\n", float64(res.PeakHeap)/1024.0/1024.0)
	fmt.Printf("[Benchmark] GC Cycles: %d\n", res.GCCycles)
	fmt.Printf("[Benchmark] CPU Cores: %d\n", res.CPUCores)
	fmt.Println("[Benchmark] ----------------------------------------")

	return res
}
