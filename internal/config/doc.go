// Package config loads slotkit configuration using Viper.
//
// Configuration comes from, in increasing precedence: built-in defaults,
// a slotkit.yaml file, and SLOTKIT_* environment variables
// (SLOTKIT_SERVER_PORT overrides server.port). Command-line flags are
// applied by the CLI on top of the loaded Config.
//
//	server:
//	  host: localhost
//	  port: 3000
//	layout:
//	  policy: warn        # permissive | warn | strict
//	  required: [body]
//	render:
//	  pretty: false
//	metrics:
//	  enabled: true
//	  path: /metrics
//	publish:
//	  bucket: my-site
//	  prefix: pages/
package config
