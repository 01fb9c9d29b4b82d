package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgirardot/partpilot/core/model"
)

var (
	inspectTarget  string
	inspectVehicle string
	inspectRPM     float64
	inspectVib     float64
	inspectTemp    float64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Submit a single reading and print the decision",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectTarget, "target", "http://localhost:8000", "service base URL")
	inspectCmd.Flags().StringVar(&inspectVehicle, "vehicle", "CLI-001", "vehicle identifier")
	inspectCmd.Flags().Float64Var(&inspectRPM, "rpm", 6000, "engine RPM")
	inspectCmd.Flags().Float64Var(&inspectVib, "vibration", 0.05, "vibration level")
	inspectCmd.Flags().Float64Var(&inspectTemp, "temperature", 350, "temperature")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	reading := model.SensorReading{
		VehicleID:   inspectVehicle,
		RPM:         inspectRPM,
		Vibration:   inspectVib,
		Temperature: inspectTemp,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	body, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(inspectTarget+"/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("predict returned %s: %s", resp.Status, pretty.String())
	}
	fmt.Println(pretty.String())
	return nil
}
