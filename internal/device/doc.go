// Package device provides the simulated devices and the Device Registry for
// the Gray Logic simulator.
//
// A Device is a named appliance with an on/off axis and, for some kinds, one
// bounded integer setting. The set of kinds is closed:
//
//	┌────────────────┬──────────────────┬──────────┬─────────────────────────┐
//	│ Kind           │ Setting          │ Range    │ Precondition            │
//	├────────────────┼──────────────────┼──────────┼─────────────────────────┤
//	│ light          │ brightness (%)   │ 0..100   │ must be on (else warn)  │
//	│ thermostat     │ temperature (°C) │ 0..40    │ none                    │
//	│ security_camera│ none             │ -        │ always unsupported      │
//	└────────────────┴──────────────────┴──────────┴─────────────────────────┘
//
// Turning a light on resets brightness to 100; turning it off resets it to 0.
// Repeating a transition is not an error and re-applies its effect.
//
// # Usage
//
//	registry := device.NewRegistry()
//	registry.SetLogger(log)
//
//	if err := registry.Add(device.NewLight("Living Room Light")); err != nil {
//	    return err
//	}
//
//	dev, err := registry.FindByName("Living Room Light")
//	if err != nil {
//	    return err // wraps ErrDeviceNotFound
//	}
//	dev.TurnOn()
//	if err := dev.AdjustSetting(75); err != nil {
//	    // ErrOutOfRange, ErrUnsupported, or a *Warning
//	}
//
// # Thread Safety
//
// Devices and the Registry are owned by a single session and are not safe
// for concurrent mutation.
package device
