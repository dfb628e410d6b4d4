package adminapi

import (
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/printarts/printrec/internal/app"
	"github.com/printarts/printrec/internal/webserver"
	"github.com/printarts/printrec/pkg/metrics"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

func registerSystemRoutes() {
	webserver.ApiGET("/system/info", getSystemInfo)
}

// getSystemInfo samples host and process resource usage on demand and
// records the readings as gauges.
func getSystemInfo(c echo.Context) error {
	info := map[string]interface{}{
		"title":      app.GApp().GetSettingsStringValue("system", "title"),
		"go_version": runtime.Version(),
		"goroutines": runtime.NumGoroutine(),
		"time":       time.Now(),
	}

	cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(cpuuse) > 0 {
		info["system_cpu_percent"] = cpuuse[0]
		metrics.SetGauge("system_cpuuse", int64(cpuuse[0]*100))
	}

	meminfo, err := mem.VirtualMemory()
	if err == nil {
		info["system_mem_used_mb"] = meminfo.Used / 1024 / 1024
		info["system_mem_percent"] = meminfo.UsedPercent
		metrics.SetGauge("system_memuse", int64(meminfo.Used/1024/1024)) //nolint:gosec // G115: memory MB value fits in int64
	}

	p, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec // G115: PID is always within int32 range
	if err == nil {
		if pcpu, err := p.CPUPercent(); err == nil {
			info["process_cpu_percent"] = pcpu
			metrics.SetGauge("printrec_cpuuse", int64(pcpu*100))
		}
		if pmem, err := p.MemoryInfo(); err == nil {
			info["process_mem_rss_mb"] = pmem.RSS / 1024 / 1024
			metrics.SetGauge("printrec_memuse", int64(pmem.RSS/1024/1024)) //nolint:gosec // G115: memory MB value fits in int64
		}
	}

	return ok(c, info)
}
