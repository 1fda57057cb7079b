// Package config handles loading and validating simulator configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields and the device list
//   - Default value handling
//
// Security Considerations:
//   - Sensitive values (MQTT password, InfluxDB token) should be set via
//     environment variables
//
// Usage:
//
//	cfg, err := config.Load("configs/simulator.yaml")
//	if err != nil {
//	    return err
//	}
//	for _, d := range cfg.DeviceList() {
//	    fmt.Println(d.Name, d.Type)
//	}
package config
