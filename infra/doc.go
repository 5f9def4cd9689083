// Package infra contains technical adapters such as file exporters, metric
// sinks and the MQTT publisher. These packages should depend only on the
// types defined in the core packages.
package infra
