// Package influxdb records device setting history in InfluxDB v2.
//
// It wraps influxdb-client-go with connection checks and the non-blocking
// batched write API. Each successful device transition becomes one
// device_metrics point tagged with device_id and kind.
//
// Usage:
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteDeviceState("main-thermostat", "thermostat",
//	    map[string]any{"on": true, "temperature": 22})
//
// Set the token through GRAYLOGIC_SIM_INFLUXDB_TOKEN rather than the file.
package influxdb
