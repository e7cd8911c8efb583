// Package config manages user-level settings stored at ~/.mkapp/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template root override used when the tool runs from a development
// checkout rather than an installed release.
package config
