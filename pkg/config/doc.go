// Package config loads client configuration from YAML.
//
// Example:
//
//	broker:
//	  host: broker.example.com
//	  port: 8883
//	tls:
//	  enabled: true
//	  ca_file: /etc/mqttlink/ca.pem
//	session:
//	  client_id: meter-7
//	  keep_alive: 60s
//	  persistent: true
//	  state_file: /var/lib/mqttlink/state.json
//	handshake_timeout: 5s
//	reconnect:
//	  initial: 1s
//	  max: 60s
//	log:
//	  level: info
//
// Missing fields take the values of Defaults. An empty client id is
// replaced with a random UUID, which the state file (if any) then pins.
package config
