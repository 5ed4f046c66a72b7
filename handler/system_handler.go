package handler

import (
	"log"
	"os"
	"runtime"

	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemInfo handles GET /system-info: a host snapshot plus the contents of
// an optional operator-maintained info file (INFO_FILE).
func SystemInfo(c *gin.Context) {
	info, err := host.Info()
	if err != nil {
		log.Printf("error retrieving host info: %v", err)
		utils.InternalError(c, "error retrieving system info")
		return
	}

	cpuCount, err := cpu.Counts(true)
	if err != nil {
		cpuCount = runtime.NumCPU()
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("error retrieving memory info: %v", err)
		utils.InternalError(c, "error retrieving system info")
		return
	}

	var fileData string
	if path := os.Getenv("INFO_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("error reading info file: %v", err)
		} else {
			fileData = string(data)
		}
	}

	utils.Success(c, gin.H{
		"file_data": fileData,
		"system_info": gin.H{
			"hostname":     info.Hostname,
			"platform":     info.Platform,
			"architecture": info.KernelArch,
			"cpu_count":    cpuCount,
			"free_memory":  vm.Available,
			"total_memory": vm.Total,
		},
	})
}

// Health handles GET /health with a store round-trip.
func Health(c *gin.Context) {
	if err := utils.PingMongo(c.Request.Context()); err != nil {
		utils.InternalError(c, "database unreachable")
		return
	}
	utils.Success(c, gin.H{"status": "ok"})
}
