// Package config manages prship configuration.
//
// It handles:
//   - Repository-specific configuration stored inside .git
//   - Global user configuration under the user's config directory
package config
