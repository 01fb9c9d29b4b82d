package simulator

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mgirardot/partpilot/core/model"
)

// C-MAPSS column indexes and scaling used to map turbofan telemetry onto
// the service's sensor ranges: column 8 maps to temperature (300-450),
// column 15 to vibration (0.1-0.8), column 5 to RPM.
const (
	colUnit        = 0
	colCycle       = 1
	colRPM         = 5
	colTemperature = 8
	colVibration   = 15
	minColumns     = 16
)

func scaleTemperature(raw float64) float64 { return 320 + (raw-1300)*15 }
func scaleVibration(raw float64) float64   { return math.Abs((raw - 47) / 1.5) }

// LoadDataset reads a whitespace-separated NASA C-MAPSS file and returns
// the readings of one engine unit, in cycle order.
func LoadDataset(path string, engineID int) ([]model.SensorReading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ParseDataset(f, engineID)
}

// ParseDataset decodes C-MAPSS rows from r, keeping only the given engine.
func ParseDataset(r io.Reader, engineID int) ([]model.SensorReading, error) {
	var readings []model.SensorReading
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < minColumns {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, minColumns, len(fields))
		}
		cols := make([]float64, minColumns)
		for i := range cols {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, i, err)
			}
			cols[i] = v
		}
		if int(cols[colUnit]) != engineID {
			continue
		}
		readings = append(readings, model.SensorReading{
			VehicleID:   fmt.Sprintf("NASA-ENG-%d", engineID),
			RPM:         cols[colRPM],
			Vibration:   scaleVibration(cols[colVibration]),
			Temperature: scaleTemperature(cols[colTemperature]),
			Timestamp:   fmt.Sprintf("cycle-%d", int(cols[colCycle])),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(readings) == 0 {
		return nil, fmt.Errorf("engine %d not found in dataset", engineID)
	}
	return readings, nil
}
