package utils

import (
	"log"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// CheckSystemResources logs available CPU and memory before a Chromium
// instance is launched, and warns when memory is tight. A headless browser
// can easily eat several hundred megabytes.
func CheckSystemResources() {
	cores, err := cpu.Counts(true)
	if err != nil {
		log.Printf("WARN: Could not detect CPU cores: %v", err)
	} else {
		log.Printf("System has %d logical cores.", cores)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("WARN: Could not read memory stats: %v", err)
		return
	}

	availableMB := vm.Available / (1024 * 1024)
	log.Printf("Available memory: %d MB (%.1f%% used).", availableMB, vm.UsedPercent)
	if availableMB < 512 {
		log.Printf("WARN: Less than 512 MB available. The browser may be unstable.")
	}
}
