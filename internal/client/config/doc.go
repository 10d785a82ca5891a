// Package config holds the global options of the wellness CLI.
//
// Values come from, in increasing precedence: built-in defaults, WELLNESS_*
// environment variables, a JSON file (DefaultConfigPath, or the one named by
// -c/--config), then command-line flags. The JSON keys are the flag
// names in snake_case:
//
//	{
//	  "server": "wellness.example.com:50051",
//	  "data_dir": "~/.wellness",
//	  "time_zone": "Europe/Riga",
//	  "debug": false
//	}
package config
