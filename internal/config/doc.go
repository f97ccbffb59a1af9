// Package config manages user-level settings stored at ~/.ade/config.yaml.
// Values can also come from ADE_* environment variables, including ones
// declared in a .env file in the working directory. Command-line flags take
// precedence over everything read here.
package config
