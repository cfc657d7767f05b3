// Package config loads application configuration from the environment.
//
// Configuration is declared as nested structs with mapstructure and default
// tags. Defaults are registered in Viper by reflecting over the tags, then
// environment variables override them using underscore-joined keys
// (SEARCH_STABLE_API_VERSION -> search.stable_api_version). A local .env
// file, if present, is loaded first via godotenv.
package config
